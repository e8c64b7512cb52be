package domain

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/davidbz/feequote/internal/observability"
)

// ExpiredQuoteRetention is how long a quote is kept in storage past its validUntil.
const ExpiredQuoteRetention = 10 * time.Minute

// QuoteService issues fee estimates to requesters and redeems them at campaign creation.
type QuoteService struct {
	calculator *FeeCalculator
	signer     *QuoteSigner
	profiles   ProfileDirectory
	quotes     QuoteStore
	events     EventPublisher
	clock      Clock
}

// NewQuoteService creates a new quote service (DI constructor).
func NewQuoteService(
	calculator *FeeCalculator,
	signer *QuoteSigner,
	profiles ProfileDirectory,
	quotes QuoteStore,
	events EventPublisher,
	clock Clock,
) *QuoteService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &QuoteService{
		calculator: calculator,
		signer:     signer,
		profiles:   profiles,
		quotes:     quotes,
		events:     events,
		clock:      clock,
	}
}

// Estimate prices a campaign for the requester and keeps the quote until it expires.
func (q *QuoteService) Estimate(
	ctx context.Context,
	requesterID string,
	req *FeeEstimateRequest,
) (*FeeEstimate, error) {
	if requesterID == "" {
		return nil, invalidInput("requesterId", "is required")
	}
	if req == nil {
		return nil, invalidInput("request", "cannot be nil")
	}

	ctx = observability.WithRequesterID(ctx, requesterID)
	logger := observability.FromContext(ctx)

	profile, err := q.profiles.GetProfile(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve requester profile: %w", err)
	}

	estimate, err := q.calculator.Estimate(req, profile)
	if err != nil {
		logger.Info("fee estimate rejected", observability.Error(err))
		return nil, err
	}

	ctx = observability.WithEstimateID(ctx, estimate.FeeEstimateID)
	logger = observability.FromContext(ctx)

	// Expired quotes stay readable a while so late redemptions report expiry instead of not found.
	ttl := estimate.ValidUntil.Sub(q.clock.Now()) + ExpiredQuoteRetention
	if saveErr := q.quotes.Save(ctx, &StoredQuote{RequesterID: requesterID, Estimate: estimate}, ttl); saveErr != nil {
		logger.Error("failed to store fee estimate", observability.Error(saveErr))
		return nil, fmt.Errorf("failed to store fee estimate: %w", saveErr)
	}

	logger.Info("fee estimate issued",
		observability.Stringer("budget", estimate.CampaignBudget),
		observability.Stringer("total_fees", estimate.TotalFees),
		observability.Stringer("escrow_total", estimate.EscrowRequirement.TotalRequired),
		observability.String("spend_tier", estimate.CalculationSnapshot.SpendTier),
		observability.Time("valid_until", estimate.ValidUntil),
	)

	q.publish(ctx, "fee_estimate.issued", map[string]interface{}{
		"estimate_id":  estimate.FeeEstimateID,
		"requester_id": requesterID,
		"total_fees":   estimate.TotalFees.String(),
		"valid_until":  estimate.ValidUntil,
	})

	return estimate, nil
}

// Redeem verifies and consumes a quote. A quote can be redeemed once, by the requester it was
// issued to, before it expires, with the signature it was issued with.
func (q *QuoteService) Redeem(
	ctx context.Context,
	requesterID string,
	estimateID string,
	signature string,
) (*FeeEstimate, error) {
	if requesterID == "" {
		return nil, invalidInput("requesterId", "is required")
	}
	if estimateID == "" {
		return nil, invalidInput("feeEstimateId", "is required")
	}
	if signature == "" {
		return nil, invalidInput("signature", "is required")
	}

	ctx = observability.WithEstimateID(observability.WithRequesterID(ctx, requesterID), estimateID)
	logger := observability.FromContext(ctx)

	stored, err := q.quotes.Get(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fee estimate: %w", err)
	}

	if stored.RequesterID != requesterID {
		logger.Warn("fee estimate redeemed by another requester",
			observability.String("owner_id", stored.RequesterID))
		return nil, ErrQuoteRequesterMismatch
	}

	if subtle.ConstantTimeCompare([]byte(signature), []byte(stored.Estimate.Signature)) != 1 {
		logger.Warn("fee estimate presented with a foreign signature")
		return nil, ErrQuoteTampered
	}

	if verifyErr := q.signer.Verify(stored.Estimate, q.clock.Now()); verifyErr != nil {
		logger.Warn("fee estimate failed verification", observability.Error(verifyErr))
		return nil, verifyErr
	}

	consumed, err := q.quotes.Consume(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("failed to consume fee estimate: %w", err)
	}

	logger.Info("fee estimate redeemed",
		observability.Stringer("escrow_total", consumed.Estimate.EscrowRequirement.TotalRequired))

	q.publish(ctx, "fee_estimate.redeemed", map[string]interface{}{
		"estimate_id":  estimateID,
		"requester_id": requesterID,
		"escrow_total": consumed.Estimate.EscrowRequirement.TotalRequired.String(),
	})

	return consumed.Estimate, nil
}

// UpsertProfile records a requester's reputation and spend as reported by the user service.
func (q *QuoteService) UpsertProfile(ctx context.Context, requesterID string, profile RequesterProfile) error {
	if requesterID == "" {
		return invalidInput("requesterId", "is required")
	}
	if err := ValidateProfile(profile); err != nil {
		return err
	}

	if err := q.profiles.PutProfile(ctx, requesterID, profile); err != nil {
		return fmt.Errorf("failed to store requester profile: %w", err)
	}

	observability.FromContext(observability.WithRequesterID(ctx, requesterID)).Info("requester profile updated",
		observability.Stringer("cumulative_spend", profile.CumulativeSpend),
		observability.Stringer("reputation_score", profile.ReputationScore))
	return nil
}

// Schedule returns the fee schedule quotes are priced with.
func (q *QuoteService) Schedule() FeeSchedule {
	return q.calculator.Schedule()
}

func (q *QuoteService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if q.events == nil {
		return
	}
	q.events.Publish(ctx, eventType, data)
}
