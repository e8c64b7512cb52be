package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

type memoryQuote struct {
	quote     *StoredQuote
	expiresAt time.Time
}

// InMemoryQuoteStore keeps issued quotes in process memory.
type InMemoryQuoteStore struct {
	mu     sync.Mutex
	quotes map[string]memoryQuote
	clock  Clock
}

// NewInMemoryQuoteStore creates a quote store; a nil clock uses the wall clock.
func NewInMemoryQuoteStore(clock Clock) *InMemoryQuoteStore {
	if clock == nil {
		clock = SystemClock{}
	}
	return &InMemoryQuoteStore{
		mu:     sync.Mutex{},
		quotes: make(map[string]memoryQuote),
		clock:  clock,
	}
}

// Save stores the quote until ttl elapses.
func (s *InMemoryQuoteStore) Save(_ context.Context, quote *StoredQuote, ttl time.Duration) error {
	if quote == nil || quote.Estimate == nil {
		return errors.New("quote cannot be nil")
	}
	if ttl <= 0 {
		return fmt.Errorf("quote %s already expired", quote.Estimate.FeeEstimateID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	s.quotes[quote.Estimate.FeeEstimateID] = memoryQuote{
		quote:     quote,
		expiresAt: s.clock.Now().Add(ttl),
	}
	return nil
}

// Get returns the quote without consuming it.
func (s *InMemoryQuoteStore) Get(_ context.Context, estimateID string) (*StoredQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.lookup(estimateID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, estimateID)
	}
	return entry.quote, nil
}

// Consume removes and returns the quote.
func (s *InMemoryQuoteStore) Consume(_ context.Context, estimateID string) (*StoredQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.lookup(estimateID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, estimateID)
	}
	delete(s.quotes, estimateID)
	return entry.quote, nil
}

// lookup must be called with mu held.
func (s *InMemoryQuoteStore) lookup(estimateID string) (memoryQuote, bool) {
	entry, ok := s.quotes[estimateID]
	if !ok {
		return memoryQuote{}, false
	}
	if !s.clock.Now().Before(entry.expiresAt) {
		delete(s.quotes, estimateID)
		return memoryQuote{}, false
	}
	return entry, true
}

func (s *InMemoryQuoteStore) evictExpired() {
	now := s.clock.Now()
	for id, entry := range s.quotes {
		if !now.Before(entry.expiresAt) {
			delete(s.quotes, id)
		}
	}
}
