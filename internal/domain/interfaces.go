package domain

import (
	"context"
	"time"
)

// Clock supplies the issuance time of quotes.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies unique estimate identifiers.
type IDGenerator interface {
	NewID() string
}

// ProfileDirectory resolves a requester's reputation and spend profile.
type ProfileDirectory interface {
	// GetProfile returns ErrProfileNotFound for unknown requesters.
	GetProfile(ctx context.Context, requesterID string) (RequesterProfile, error)

	// PutProfile creates or replaces a requester's profile.
	PutProfile(ctx context.Context, requesterID string, profile RequesterProfile) error
}

// QuoteStore keeps issued fee estimates until they are redeemed or expire.
type QuoteStore interface {
	// Save stores the quote for at most ttl.
	Save(ctx context.Context, quote *StoredQuote, ttl time.Duration) error

	// Get returns ErrQuoteNotFound when the quote is unknown or gone.
	Get(ctx context.Context, estimateID string) (*StoredQuote, error)

	// Consume atomically removes the quote; only one caller ever gets it back.
	Consume(ctx context.Context, estimateID string) (*StoredQuote, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
