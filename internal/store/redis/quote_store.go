package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/feequote/internal/domain"
	"github.com/davidbz/feequote/internal/observability"
)

const quoteKeyPrefix = "quote:"

// QuoteStore keeps issued fee estimates in Redis until they expire or are consumed.
type QuoteStore struct {
	client *redis.Client
}

// NewQuoteStore creates a new Redis quote store.
func NewQuoteStore(client *redis.Client) *QuoteStore {
	return &QuoteStore{client: client}
}

// Save stores the quote as JSON with a TTL matching its validity.
func (s *QuoteStore) Save(ctx context.Context, quote *domain.StoredQuote, ttl time.Duration) error {
	if quote == nil || quote.Estimate == nil {
		return errors.New("quote cannot be nil")
	}
	if ttl <= 0 {
		return fmt.Errorf("quote %s already expired", quote.Estimate.FeeEstimateID)
	}

	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	key := quoteKey(quote.Estimate.FeeEstimateID)
	logger := observability.FromContext(ctx)
	logger.Debug("storing quote",
		observability.String("key", key),
		observability.Duration("ttl", ttl),
		observability.Int("data_size", len(data)))

	if setErr := s.client.Set(ctx, key, data, ttl).Err(); setErr != nil {
		logger.Error("quote store failed", observability.Error(setErr))
		return fmt.Errorf("failed to store quote: %w", setErr)
	}

	return nil
}

// Get loads a quote without consuming it.
func (s *QuoteStore) Get(ctx context.Context, estimateID string) (*domain.StoredQuote, error) {
	data, err := s.client.Get(ctx, quoteKey(estimateID)).Bytes()
	return decodeQuote(estimateID, data, err)
}

// Consume loads and deletes a quote in a single GETDEL so only one caller can redeem it.
func (s *QuoteStore) Consume(ctx context.Context, estimateID string) (*domain.StoredQuote, error) {
	data, err := s.client.GetDel(ctx, quoteKey(estimateID)).Bytes()
	return decodeQuote(estimateID, data, err)
}

func decodeQuote(estimateID string, data []byte, err error) (*domain.StoredQuote, error) {
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuoteNotFound, estimateID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}

	var quote domain.StoredQuote
	if unmarshalErr := json.Unmarshal(data, &quote); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal quote: %w", unmarshalErr)
	}
	if quote.Estimate == nil {
		return nil, fmt.Errorf("%w: %s has no estimate", domain.ErrQuoteNotFound, estimateID)
	}

	return &quote, nil
}

func quoteKey(estimateID string) string {
	return quoteKeyPrefix + estimateID
}
