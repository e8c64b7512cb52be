package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	estimateIDPrefix = "est-"
	moneyPlaces      = 2
)

// Calculation holds every monetary figure of a quote; it is identical for identical inputs.
type Calculation struct {
	CampaignBudget    decimal.Decimal
	FeeBreakdown      FeeBreakdown
	TotalFees         decimal.Decimal
	EscrowRequirement EscrowRequirement
	Snapshot          CalculationSnapshot
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator issues random UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// FeeCalculator prices campaigns against a fixed fee schedule.
type FeeCalculator struct {
	schedule FeeSchedule
	version  string
	signer   *QuoteSigner
	clock    Clock
	ids      IDGenerator
}

// NewFeeCalculator creates a calculator. A nil clock or id generator falls back to the system ones.
func NewFeeCalculator(schedule FeeSchedule, signer *QuoteSigner, clock Clock, ids IDGenerator) (*FeeCalculator, error) {
	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fee schedule: %w", err)
	}
	if signer == nil {
		return nil, errors.New("quote signer is required")
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if ids == nil {
		ids = UUIDGenerator{}
	}

	return &FeeCalculator{
		schedule: schedule.clone(),
		version:  schedule.Version(),
		signer:   signer,
		clock:    clock,
		ids:      ids,
	}, nil
}

// Schedule returns a copy of the schedule in use.
func (c *FeeCalculator) Schedule() FeeSchedule {
	return c.schedule.clone()
}

// Estimate prices the campaign and issues a signed quote valid for the schedule's validity window.
func (c *FeeCalculator) Estimate(req *FeeEstimateRequest, profile RequesterProfile) (*FeeEstimate, error) {
	calc, err := c.Calculate(req, profile)
	if err != nil {
		return nil, err
	}

	issuedAt := c.clock.Now().UTC().Truncate(time.Second)
	estimate := &FeeEstimate{
		FeeEstimateID:       estimateIDPrefix + c.ids.NewID(),
		CampaignBudget:      calc.CampaignBudget,
		FeeBreakdown:        calc.FeeBreakdown,
		TotalFees:           calc.TotalFees,
		EscrowRequirement:   calc.EscrowRequirement,
		IssuedAt:            issuedAt,
		ValidUntil:          issuedAt.Add(c.schedule.QuoteValidity),
		Signature:           "",
		CalculationSnapshot: calc.Snapshot,
	}
	estimate.Signature = c.signer.Sign(estimate)

	return estimate, nil
}

// Calculate computes every monetary figure of a quote without issuing it.
func (c *FeeCalculator) Calculate(req *FeeEstimateRequest, profile RequesterProfile) (*Calculation, error) {
	if req == nil {
		return nil, invalidInput("request", "cannot be nil")
	}

	complexity, err := validate(req, profile)
	if err != nil {
		return nil, err
	}

	s := c.schedule
	budget := req.CampaignBudget

	// Service fee: one bracket rate for the whole budget, then complexity, spend tier, token.
	baseRate := s.BaseRate(budget)
	baseFee := money(budget.Mul(baseRate))

	multiplier := s.Multiplier(complexity)
	adjustedFee := money(baseFee.Mul(multiplier))

	tier := s.SpendTierFor(profile.CumulativeSpend)
	discountAmount := money(adjustedFee.Mul(tier.Rate))
	beforeToken := money(adjustedFee.Sub(discountAmount))

	tokenRate := decimal.Zero
	if req.UseAW3Token {
		tokenRate = s.TokenDiscountRate
	}
	tokenAmount := money(beforeToken.Mul(tokenRate))
	finalServiceFee := money(beforeToken.Sub(tokenAmount))

	kpiCount := effectiveKPICount(req)
	oracle := c.oracleFee(kpiCount, multiplier)
	oracleFee := money(oracle.BaseFee.Add(oracle.KPIFee).Add(oracle.ComplexityPremium))

	totalFees := finalServiceFee.Add(oracleFee)

	buffer := money(budget.Add(totalFees).Mul(s.BufferRate))
	totalRequired := money(budget.Add(totalFees).Add(buffer))

	return &Calculation{
		CampaignBudget: budget,
		FeeBreakdown: FeeBreakdown{
			BaseRate:              baseRate,
			BaseFee:               baseFee,
			ComplexityMultiplier:  multiplier,
			ComplexityAdjustedFee: adjustedFee,
			ReputationDiscount:    tier.Rate,
			DiscountAmount:        discountAmount,
			ServiceFeeBeforeToken: beforeToken,
			AW3TokenDiscount:      tokenRate,
			AW3DiscountAmount:     tokenAmount,
			FinalServiceFee:       finalServiceFee,
			OracleFee:             oracleFee,
			OracleFeeBreakdown:    oracle,
		},
		TotalFees: totalFees,
		EscrowRequirement: EscrowRequirement{
			CampaignBudget:   budget,
			ServiceFee:       finalServiceFee,
			OracleFee:        oracleFee,
			Buffer:           buffer,
			TotalRequired:    totalRequired,
			BufferPercentage: s.BufferPercentage(),
		},
		Snapshot: CalculationSnapshot{
			ScheduleVersion:      c.version,
			Category:             req.Category,
			Complexity:           complexity,
			BudgetAmount:         budget,
			ReputationScore:      profile.ReputationScore,
			CumulativeSpend:      profile.CumulativeSpend,
			SpendTier:            tier.Name,
			RequestedCreators:    req.RequestedCreators,
			EstimatedDuration:    req.EstimatedDuration,
			KPICount:             kpiCount,
			IncludedKPIs:         s.OracleIncludedKPIs,
			UseAW3Token:          req.UseAW3Token,
			BaseRate:             baseRate,
			ComplexityMultiplier: multiplier,
			DiscountRate:         tier.Rate,
			TokenDiscountRate:    tokenRate,
			OraclePremiumRate:    s.OraclePremiumRate,
			BufferRate:           s.BufferRate,
		},
	}, nil
}

// oracleFee charges a flat base, a fee per KPI beyond the included ones and a complexity premium.
// The premium scales with the service fee multiplier but discounts never touch the oracle fee.
func (c *FeeCalculator) oracleFee(kpiCount int, multiplier decimal.Decimal) OracleFeeBreakdown {
	s := c.schedule

	additional := kpiCount - s.OracleIncludedKPIs
	if additional < 0 {
		additional = 0
	}

	kpiFee := money(s.OraclePerKPIFee.Mul(decimal.NewFromInt(int64(additional))))
	premium := money(s.OracleBaseFee.Add(kpiFee).Mul(s.OraclePremiumRate).Mul(multiplier))

	return OracleFeeBreakdown{
		BaseFee:           money(s.OracleBaseFee),
		AdditionalKPIs:    additional,
		KPIFee:            kpiFee,
		ComplexityPremium: premium,
	}
}

func validate(req *FeeEstimateRequest, profile RequesterProfile) (Complexity, error) {
	if !req.CampaignBudget.IsPositive() {
		return "", invalidInput("campaignBudget", "must be positive")
	}
	if !req.CampaignBudget.Equal(money(req.CampaignBudget)) {
		return "", invalidInput("campaignBudget", "cannot have more than 2 decimal places")
	}

	complexity, err := ParseComplexity(req.Complexity)
	if err != nil {
		return "", err
	}

	if req.RequestedCreators != nil && *req.RequestedCreators <= 0 {
		return "", invalidInput("requestedCreators", "must be positive")
	}
	if req.KPICount != nil && *req.KPICount < 0 {
		return "", invalidInput("kpiCount", "cannot be negative")
	}
	if req.EstimatedDuration != nil && *req.EstimatedDuration < 0 {
		return "", invalidInput("estimatedDuration", "cannot be negative")
	}

	for i, m := range req.KPIMetrics {
		if m.Target.IsNegative() {
			return "", invalidInput(fmt.Sprintf("kpiMetrics[%d].target", i), "cannot be negative")
		}
		if m.Weight.IsNegative() {
			return "", invalidInput(fmt.Sprintf("kpiMetrics[%d].weight", i), "cannot be negative")
		}
	}

	if err := ValidateProfile(profile); err != nil {
		return "", err
	}

	return complexity, nil
}

// ValidateProfile rejects negative reputation or spend.
func ValidateProfile(profile RequesterProfile) error {
	if profile.ReputationScore.IsNegative() {
		return invalidInput("reputationScore", "cannot be negative")
	}
	if profile.CumulativeSpend.IsNegative() {
		return invalidInput("cumulativeSpend", "cannot be negative")
	}
	return nil
}

// effectiveKPICount prefers the metric list and falls back to the declared count.
func effectiveKPICount(req *FeeEstimateRequest) int {
	if len(req.KPIMetrics) > 0 {
		return len(req.KPIMetrics)
	}
	if req.KPICount != nil {
		return *req.KPICount
	}
	return 0
}

func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}
