package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultQuoteValidity is how long an issued fee estimate can be redeemed.
const DefaultQuoteValidity = 15 * time.Minute

// RateBracket applies Rate to any budget up to and including UpTo.
type RateBracket struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

// SpendTier grants Rate as a discount once cumulative spend reaches MinSpend.
type SpendTier struct {
	Name     string
	MinSpend decimal.Decimal
	Rate     decimal.Decimal
}

// FeeSchedule holds every tunable of the fee calculation. Built once at startup.
type FeeSchedule struct {
	// Brackets are evaluated in ascending order; budgets above the last bound use UncappedRate.
	Brackets     []RateBracket
	UncappedRate decimal.Decimal

	SimpleMultiplier   decimal.Decimal
	StandardMultiplier decimal.Decimal
	ComplexMultiplier  decimal.Decimal
	// EnterpriseMultiplier falls back to ComplexMultiplier when zero.
	EnterpriseMultiplier decimal.Decimal

	// SpendTiers are ordered by ascending MinSpend.
	SpendTiers      []SpendTier
	MaxDiscountRate decimal.Decimal

	TokenDiscountRate decimal.Decimal

	OracleBaseFee      decimal.Decimal
	OraclePerKPIFee    decimal.Decimal
	OracleIncludedKPIs int
	OraclePremiumRate  decimal.Decimal

	BufferRate    decimal.Decimal
	QuoteValidity time.Duration
}

// ScheduleItem is one named, documented option of the schedule.
type ScheduleItem struct {
	Key         string          `json:"key"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
}

// DefaultFeeSchedule returns the platform's standard economic model.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		Brackets: []RateBracket{
			{UpTo: decimal.NewFromInt(5000), Rate: decimal.RequireFromString("0.10")},
			{UpTo: decimal.NewFromInt(20000), Rate: decimal.RequireFromString("0.08")},
			{UpTo: decimal.NewFromInt(50000), Rate: decimal.RequireFromString("0.06")},
		},
		UncappedRate:         decimal.RequireFromString("0.04"),
		SimpleMultiplier:     decimal.RequireFromString("0.8"),
		StandardMultiplier:   decimal.RequireFromString("1.0"),
		ComplexMultiplier:    decimal.RequireFromString("1.5"),
		EnterpriseMultiplier: decimal.Zero,
		SpendTiers: []SpendTier{
			{Name: "bronze", MinSpend: decimal.Zero, Rate: decimal.Zero},
			{Name: "silver", MinSpend: decimal.NewFromInt(10000), Rate: decimal.RequireFromString("0.05")},
			{Name: "gold", MinSpend: decimal.NewFromInt(50000), Rate: decimal.RequireFromString("0.15")},
			{Name: "platinum", MinSpend: decimal.NewFromInt(100000), Rate: decimal.RequireFromString("0.25")},
		},
		MaxDiscountRate:    decimal.RequireFromString("0.40"),
		TokenDiscountRate:  decimal.RequireFromString("0.20"),
		OracleBaseFee:      decimal.NewFromInt(50),
		OraclePerKPIFee:    decimal.NewFromInt(10),
		OracleIncludedKPIs: 3,
		OraclePremiumRate:  decimal.RequireFromString("0.40"),
		BufferRate:         decimal.RequireFromString("0.10"),
		QuoteValidity:      DefaultQuoteValidity,
	}
}

// Validate rejects schedules that would produce nonsensical quotes.
func (s FeeSchedule) Validate() error {
	one := decimal.NewFromInt(1)

	if len(s.Brackets) == 0 {
		return errors.New("fee schedule needs at least one bounded rate bracket")
	}
	prev := decimal.Zero
	for i, b := range s.Brackets {
		if !b.UpTo.GreaterThan(prev) {
			return fmt.Errorf("bracket %d bound %s must be greater than %s", i+1, b.UpTo, prev)
		}
		if !inUnitRange(b.Rate) {
			return fmt.Errorf("bracket %d rate %s must be within [0, 1]", i+1, b.Rate)
		}
		prev = b.UpTo
	}
	if !inUnitRange(s.UncappedRate) {
		return fmt.Errorf("uncapped rate %s must be within [0, 1]", s.UncappedRate)
	}

	for name, m := range map[string]decimal.Decimal{
		"simple":   s.SimpleMultiplier,
		"standard": s.StandardMultiplier,
		"complex":  s.ComplexMultiplier,
	} {
		if !m.IsPositive() {
			return fmt.Errorf("%s complexity multiplier must be positive", name)
		}
	}
	if s.EnterpriseMultiplier.IsNegative() {
		return errors.New("enterprise complexity multiplier cannot be negative")
	}

	prev = decimal.NewFromInt(-1)
	for _, t := range s.SpendTiers {
		if !t.MinSpend.GreaterThan(prev) {
			return fmt.Errorf("spend tier %q must start above the previous tier", t.Name)
		}
		if !inUnitRange(t.Rate) {
			return fmt.Errorf("spend tier %q rate %s must be within [0, 1]", t.Name, t.Rate)
		}
		prev = t.MinSpend
	}

	switch {
	case !inUnitRange(s.MaxDiscountRate):
		return errors.New("max discount rate must be within [0, 1]")
	case !inUnitRange(s.TokenDiscountRate):
		return errors.New("token discount rate must be within [0, 1]")
	case s.OracleBaseFee.IsNegative(), s.OraclePerKPIFee.IsNegative():
		return errors.New("oracle fees cannot be negative")
	case s.OracleIncludedKPIs < 0:
		return errors.New("included KPI count cannot be negative")
	case s.OraclePremiumRate.IsNegative():
		return errors.New("oracle premium rate cannot be negative")
	case s.BufferRate.IsNegative() || s.BufferRate.GreaterThan(one):
		return errors.New("buffer rate must be within [0, 1]")
	case s.QuoteValidity <= 0:
		return errors.New("quote validity must be positive")
	}

	return nil
}

// BaseRate returns the rate of the first bracket whose bound is >= budget.
func (s FeeSchedule) BaseRate(budget decimal.Decimal) decimal.Decimal {
	for _, b := range s.Brackets {
		if budget.LessThanOrEqual(b.UpTo) {
			return b.Rate
		}
	}
	return s.UncappedRate
}

// Multiplier returns the service fee multiplier for a complexity level.
func (s FeeSchedule) Multiplier(c Complexity) decimal.Decimal {
	switch c {
	case ComplexitySimple:
		return s.SimpleMultiplier
	case ComplexityComplex:
		return s.ComplexMultiplier
	case ComplexityEnterprise:
		if s.EnterpriseMultiplier.IsPositive() {
			return s.EnterpriseMultiplier
		}
		return s.ComplexMultiplier
	default:
		return s.StandardMultiplier
	}
}

// SpendTierFor returns the highest tier whose threshold the spend has reached.
func (s FeeSchedule) SpendTierFor(spend decimal.Decimal) SpendTier {
	tier := SpendTier{Name: "none", MinSpend: decimal.Zero, Rate: decimal.Zero}
	for _, t := range s.SpendTiers {
		if spend.GreaterThanOrEqual(t.MinSpend) {
			tier = t
		}
	}
	if tier.Rate.GreaterThan(s.MaxDiscountRate) {
		tier.Rate = s.MaxDiscountRate
	}
	return tier
}

// BufferPercentage is the buffer rate expressed in percent.
func (s FeeSchedule) BufferPercentage() decimal.Decimal {
	return s.BufferRate.Mul(decimal.NewFromInt(100))
}

// Items lists the schedule as named options.
func (s FeeSchedule) Items() []ScheduleItem {
	items := make([]ScheduleItem, 0, 2*len(s.Brackets)+2*len(s.SpendTiers)+12)

	for i, b := range s.Brackets {
		n := i + 1
		items = append(items,
			ScheduleItem{Key: fmt.Sprintf("tier%dMax", n), Value: b.UpTo,
				Description: fmt.Sprintf("Upper budget bound of tier %d (inclusive)", n)},
			ScheduleItem{Key: fmt.Sprintf("tier%dRate", n), Value: b.Rate,
				Description: fmt.Sprintf("Base service fee rate of tier %d", n)},
		)
	}
	items = append(items,
		ScheduleItem{Key: fmt.Sprintf("tier%dRate", len(s.Brackets)+1), Value: s.UncappedRate,
			Description: "Base service fee rate above the last tier bound"},
		ScheduleItem{Key: "complexitySimple", Value: s.SimpleMultiplier, Description: "Simple campaign multiplier"},
		ScheduleItem{Key: "complexityStandard", Value: s.StandardMultiplier, Description: "Standard campaign multiplier"},
		ScheduleItem{Key: "complexityComplex", Value: s.ComplexMultiplier, Description: "Complex campaign multiplier"},
		ScheduleItem{Key: "complexityEnterprise", Value: s.Multiplier(ComplexityEnterprise),
			Description: "Enterprise campaign multiplier"},
	)
	for _, t := range s.SpendTiers {
		items = append(items,
			ScheduleItem{Key: t.Name + "MinSpend", Value: t.MinSpend,
				Description: fmt.Sprintf("Cumulative spend reaching the %s tier", t.Name)},
			ScheduleItem{Key: t.Name + "DiscountRate", Value: t.Rate,
				Description: fmt.Sprintf("Service fee discount of the %s tier", t.Name)},
		)
	}
	items = append(items,
		ScheduleItem{Key: "maxDiscountRate", Value: s.MaxDiscountRate, Description: "Cap on the spend tier discount"},
		ScheduleItem{Key: "tokenDiscountRate", Value: s.TokenDiscountRate,
			Description: "Discount for paying service fees in the platform token"},
		ScheduleItem{Key: "oracleBaseFee", Value: s.OracleBaseFee, Description: "Flat oracle verification fee"},
		ScheduleItem{Key: "oraclePerKpiFee", Value: s.OraclePerKPIFee,
			Description: "Oracle fee per KPI beyond the included ones"},
		ScheduleItem{Key: "oracleIncludedKpis", Value: decimal.NewFromInt(int64(s.OracleIncludedKPIs)),
			Description: "KPIs covered by the flat oracle fee"},
		ScheduleItem{Key: "oraclePremiumRate", Value: s.OraclePremiumRate,
			Description: "Oracle complexity premium before the complexity multiplier"},
		ScheduleItem{Key: "bufferPercentage", Value: s.BufferPercentage(), Description: "Escrow safety buffer in percent"},
		ScheduleItem{Key: "quoteValiditySeconds", Value: decimal.NewFromFloat(s.QuoteValidity.Seconds()),
			Description: "Lifetime of an issued fee estimate"},
	)

	return items
}

// Version fingerprints the schedule so quotes can be traced back to the options that produced them.
func (s FeeSchedule) Version() string {
	parts := make([]string, 0, len(s.Items()))
	for _, item := range s.Items() {
		parts = append(parts, item.Key+"="+item.Value.String())
	}
	hash := sha256.Sum256([]byte(strings.Join(parts, ";")))
	return "v-" + hex.EncodeToString(hash[:4])
}

func (s FeeSchedule) clone() FeeSchedule {
	c := s
	c.Brackets = append([]RateBracket(nil), s.Brackets...)
	c.SpendTiers = append([]SpendTier(nil), s.SpendTiers...)
	return c
}

func inUnitRange(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}
