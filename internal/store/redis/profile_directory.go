package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/davidbz/feequote/internal/domain"
	"github.com/davidbz/feequote/internal/observability"
)

const (
	profileKeyPrefix = "profile:"

	fieldReputation = "reputation_score"
	fieldSpend      = "cumulative_spend"
	fieldUpdatedAt  = "updated_at"
)

// ProfileDirectory stores requester profiles as Redis hashes.
type ProfileDirectory struct {
	client *redis.Client
}

// NewProfileDirectory creates a new Redis profile directory.
func NewProfileDirectory(client *redis.Client) *ProfileDirectory {
	return &ProfileDirectory{client: client}
}

// GetProfile reads the requester's hash.
func (d *ProfileDirectory) GetProfile(ctx context.Context, requesterID string) (domain.RequesterProfile, error) {
	fields, err := d.client.HGetAll(ctx, profileKey(requesterID)).Result()
	if err != nil {
		return domain.RequesterProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if len(fields) == 0 {
		return domain.RequesterProfile{}, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, requesterID)
	}

	// A hash without the priced fields is corrupt, never a zero-spend requester.
	reputation, err := parseAmount(fields, fieldReputation)
	if err != nil {
		return domain.RequesterProfile{}, err
	}
	spend, err := parseAmount(fields, fieldSpend)
	if err != nil {
		return domain.RequesterProfile{}, err
	}

	return domain.RequesterProfile{
		ReputationScore: reputation,
		CumulativeSpend: spend,
	}, nil
}

// PutProfile overwrites the requester's hash.
func (d *ProfileDirectory) PutProfile(ctx context.Context, requesterID string, profile domain.RequesterProfile) error {
	if requesterID == "" {
		return errors.New("requester id cannot be empty")
	}

	key := profileKey(requesterID)
	pipe := d.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		fieldReputation, profile.ReputationScore.String(),
		fieldSpend, profile.CumulativeSpend.String(),
		fieldUpdatedAt, time.Now().Unix(),
	)

	if _, execErr := pipe.Exec(ctx); execErr != nil {
		observability.FromContext(ctx).Error("profile store failed",
			observability.Error(execErr),
			observability.String("key", key))
		return fmt.Errorf("failed to store profile: %w", execErr)
	}

	return nil
}

func parseAmount(fields map[string]string, name string) (decimal.Decimal, error) {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return decimal.Zero, fmt.Errorf("profile hash is missing %s", name)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q in profile: %w", name, raw, err)
	}
	return value, nil
}

func profileKey(requesterID string) string {
	return profileKeyPrefix + requesterID
}
