package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/feequote/internal/domain"
	"github.com/davidbz/feequote/internal/mocks"
)

type serviceFixture struct {
	service  *domain.QuoteService
	clock    *fixedClock
	profiles *mocks.MockProfileDirectory
	quotes   *mocks.MockQuoteStore
	events   *mocks.MockEventPublisher
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	signer := testSigner(t)

	clock := &fixedClock{now: issuedAt}
	calculator, err := domain.NewFeeCalculator(domain.DefaultFeeSchedule(), signer, clock, &sequenceIDs{})
	require.NoError(t, err)

	f := &serviceFixture{
		clock:    clock,
		profiles: mocks.NewMockProfileDirectory(t),
		quotes:   mocks.NewMockQuoteStore(t),
		events:   mocks.NewMockEventPublisher(t),
	}
	f.service = domain.NewQuoteService(calculator, signer, f.profiles, f.quotes, f.events, clock)
	return f
}

// issue runs a successful estimate through the service and returns what was stored.
func (f *serviceFixture) issue(t *testing.T, requesterID string) *domain.StoredQuote {
	t.Helper()

	var stored *domain.StoredQuote
	f.profiles.EXPECT().GetProfile(mock.Anything, requesterID).Return(bronze(), nil).Once()
	f.quotes.EXPECT().Save(mock.Anything, mock.Anything, 15*time.Minute+domain.ExpiredQuoteRetention).
		Run(func(_ context.Context, quote *domain.StoredQuote, _ time.Duration) { stored = quote }).
		Return(nil).Once()
	f.events.EXPECT().Publish(mock.Anything, "fee_estimate.issued", mock.Anything).Return().Once()

	_, err := f.service.Estimate(context.Background(), requesterID, standardRequest("10000"))
	require.NoError(t, err)
	require.NotNil(t, stored)
	return stored
}

func TestQuoteService_Estimate(t *testing.T) {
	t.Run("should issue and store a signed estimate", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := f.issue(t, "sponsor-1")

		require.Equal(t, "sponsor-1", stored.RequesterID)
		require.Equal(t, "est-0001", stored.Estimate.FeeEstimateID)
		require.True(t, dec("870").Equal(stored.Estimate.TotalFees))
		require.NoError(t, testSigner(t).Verify(stored.Estimate, f.clock.Now()))
	})

	t.Run("should publish the issued event with estimate details", func(t *testing.T) {
		f := newServiceFixture(t)

		f.profiles.EXPECT().GetProfile(mock.Anything, "sponsor-1").Return(bronze(), nil)
		f.quotes.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.events.EXPECT().
			Publish(mock.Anything, "fee_estimate.issued", mock.MatchedBy(func(data map[string]interface{}) bool {
				return data["estimate_id"] == "est-0001" &&
					data["requester_id"] == "sponsor-1" &&
					data["total_fees"] == "870"
			})).
			Return()

		estimate, err := f.service.Estimate(context.Background(), "sponsor-1", standardRequest("10000"))
		require.NoError(t, err)
		require.Equal(t, "est-0001", estimate.FeeEstimateID)
	})

	t.Run("should return error when requester id is empty", func(t *testing.T) {
		f := newServiceFixture(t)

		estimate, err := f.service.Estimate(context.Background(), "", standardRequest("10000"))
		require.Nil(t, estimate)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("should return error when request is nil", func(t *testing.T) {
		f := newServiceFixture(t)

		estimate, err := f.service.Estimate(context.Background(), "sponsor-1", nil)
		require.Nil(t, estimate)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("should return not found for unknown requesters", func(t *testing.T) {
		f := newServiceFixture(t)

		f.profiles.EXPECT().GetProfile(mock.Anything, "ghost").
			Return(domain.RequesterProfile{}, domain.ErrProfileNotFound)

		estimate, err := f.service.Estimate(context.Background(), "ghost", standardRequest("10000"))
		require.Nil(t, estimate)
		require.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("should not store rejected requests", func(t *testing.T) {
		f := newServiceFixture(t)

		f.profiles.EXPECT().GetProfile(mock.Anything, "sponsor-1").Return(bronze(), nil)

		req := standardRequest("10000")
		req.Complexity = "ultra"

		estimate, err := f.service.Estimate(context.Background(), "sponsor-1", req)
		require.Nil(t, estimate)

		var invalid *domain.InvalidInputError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, "complexity", invalid.Field)
	})

	t.Run("should fail when the quote cannot be stored", func(t *testing.T) {
		f := newServiceFixture(t)

		f.profiles.EXPECT().GetProfile(mock.Anything, "sponsor-1").Return(bronze(), nil)
		f.quotes.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		estimate, err := f.service.Estimate(context.Background(), "sponsor-1", standardRequest("10000"))
		require.Nil(t, estimate)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to store fee estimate")
	})
}

func TestQuoteService_Redeem(t *testing.T) {
	t.Run("should redeem a valid estimate once", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := f.issue(t, "sponsor-1")
		id := stored.Estimate.FeeEstimateID

		f.clock.Advance(5 * time.Minute)

		f.quotes.EXPECT().Get(mock.Anything, id).Return(stored, nil).Once()
		f.quotes.EXPECT().Consume(mock.Anything, id).Return(stored, nil).Once()
		f.events.EXPECT().Publish(mock.Anything, "fee_estimate.redeemed", mock.Anything).Return().Once()

		estimate, err := f.service.Redeem(context.Background(), "sponsor-1", id, stored.Estimate.Signature)
		require.NoError(t, err)
		require.True(t, dec("11957").Equal(estimate.EscrowRequirement.TotalRequired))
	})

	t.Run("should reject missing arguments", func(t *testing.T) {
		f := newServiceFixture(t)

		tests := []struct {
			requesterID, estimateID, signature, field string
		}{
			{"", "est-1", "0xab", "requesterId"},
			{"sponsor-1", "", "0xab", "feeEstimateId"},
			{"sponsor-1", "est-1", "", "signature"},
		}

		for _, tt := range tests {
			_, err := f.service.Redeem(context.Background(), tt.requesterID, tt.estimateID, tt.signature)

			var invalid *domain.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, tt.field, invalid.Field)
		}
	})

	t.Run("should return not found for unknown estimates", func(t *testing.T) {
		f := newServiceFixture(t)

		f.quotes.EXPECT().Get(mock.Anything, "est-missing").Return(nil, domain.ErrQuoteNotFound)

		_, err := f.service.Redeem(context.Background(), "sponsor-1", "est-missing", "0xab")
		require.ErrorIs(t, err, domain.ErrQuoteNotFound)
	})

	t.Run("should reject estimates issued to another requester", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := f.issue(t, "sponsor-1")
		id := stored.Estimate.FeeEstimateID

		f.quotes.EXPECT().Get(mock.Anything, id).Return(stored, nil)

		_, err := f.service.Redeem(context.Background(), "sponsor-2", id, stored.Estimate.Signature)
		require.ErrorIs(t, err, domain.ErrQuoteRequesterMismatch)
	})

	t.Run("should reject a foreign signature", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := f.issue(t, "sponsor-1")
		id := stored.Estimate.FeeEstimateID

		f.quotes.EXPECT().Get(mock.Anything, id).Return(stored, nil)

		_, err := f.service.Redeem(context.Background(), "sponsor-1", id, "0xdeadbeef")
		require.ErrorIs(t, err, domain.ErrQuoteTampered)
	})

	t.Run("should reject a stored estimate whose figures changed", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := f.issue(t, "sponsor-1")
		id := stored.Estimate.FeeEstimateID

		stored.Estimate.FeeBreakdown.FinalServiceFee = dec("1")

		f.quotes.EXPECT().Get(mock.Anything, id).Return(stored, nil)

		_, err := f.service.Redeem(context.Background(), "sponsor-1", id, stored.Estimate.Signature)
		require.ErrorIs(t, err, domain.ErrQuoteTampered)
	})

	t.Run("should reject expired estimates", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := f.issue(t, "sponsor-1")
		id := stored.Estimate.FeeEstimateID

		f.clock.Advance(16 * time.Minute)

		f.quotes.EXPECT().Get(mock.Anything, id).Return(stored, nil)

		_, err := f.service.Redeem(context.Background(), "sponsor-1", id, stored.Estimate.Signature)
		require.ErrorIs(t, err, domain.ErrQuoteExpired)
	})

	t.Run("should return not found when another redeem consumed it first", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := f.issue(t, "sponsor-1")
		id := stored.Estimate.FeeEstimateID

		f.quotes.EXPECT().Get(mock.Anything, id).Return(stored, nil)
		f.quotes.EXPECT().Consume(mock.Anything, id).Return(nil, domain.ErrQuoteNotFound)

		_, err := f.service.Redeem(context.Background(), "sponsor-1", id, stored.Estimate.Signature)
		require.ErrorIs(t, err, domain.ErrQuoteNotFound)
	})
}

func TestQuoteService_EndToEndWithMemoryStores(t *testing.T) {
	signer, err := domain.NewQuoteSigner("test-secret")
	require.NoError(t, err)

	clock := &fixedClock{now: issuedAt}
	calculator, err := domain.NewFeeCalculator(domain.DefaultFeeSchedule(), signer, clock, nil)
	require.NoError(t, err)

	service := domain.NewQuoteService(
		calculator,
		signer,
		domain.NewInMemoryProfileDirectory(),
		domain.NewInMemoryQuoteStore(clock),
		nil,
		clock,
	)
	ctx := context.Background()

	require.NoError(t, service.UpsertProfile(ctx, "sponsor-1", domain.RequesterProfile{
		ReputationScore: dec("850"), CumulativeSpend: dec("60000"),
	}))

	req := standardRequest("10000")
	req.Complexity = "complex"
	req.UseAW3Token = true

	estimate, err := service.Estimate(ctx, "sponsor-1", req)
	require.NoError(t, err)
	require.True(t, dec("816").Equal(estimate.FeeBreakdown.FinalServiceFee))

	redeemed, err := service.Redeem(ctx, "sponsor-1", estimate.FeeEstimateID, estimate.Signature)
	require.NoError(t, err)
	require.Equal(t, estimate.FeeEstimateID, redeemed.FeeEstimateID)

	_, err = service.Redeem(ctx, "sponsor-1", estimate.FeeEstimateID, estimate.Signature)
	require.ErrorIs(t, err, domain.ErrQuoteNotFound)
}

func TestQuoteService_UpsertProfile(t *testing.T) {
	t.Run("should store valid profiles", func(t *testing.T) {
		f := newServiceFixture(t)
		profile := domain.RequesterProfile{ReputationScore: dec("500"), CumulativeSpend: dec("12000")}

		f.profiles.EXPECT().PutProfile(mock.Anything, "sponsor-1", profile).Return(nil)

		require.NoError(t, f.service.UpsertProfile(context.Background(), "sponsor-1", profile))
	})

	t.Run("should reject negative spend", func(t *testing.T) {
		f := newServiceFixture(t)

		err := f.service.UpsertProfile(context.Background(), "sponsor-1", domain.RequesterProfile{
			ReputationScore: dec("500"), CumulativeSpend: dec("-1"),
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("should reject empty requester id", func(t *testing.T) {
		f := newServiceFixture(t)

		err := f.service.UpsertProfile(context.Background(), "", bronze())
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
