package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeEstimateRequest describes the campaign a sponsor wants priced.
type FeeEstimateRequest struct {
	CampaignBudget    decimal.Decimal `json:"campaignBudget"`
	Category          string          `json:"category"`
	Complexity        string          `json:"complexity"`
	EstimatedDuration *int            `json:"estimatedDuration,omitempty"` // days
	KPICount          *int            `json:"kpiCount,omitempty"`
	RequestedCreators *int            `json:"requestedCreators,omitempty"`
	UseAW3Token       bool            `json:"useAW3Token"`
	KPIMetrics        []KPIMetric     `json:"kpiMetrics,omitempty"`
}

// KPIMetric is one oracle-verified campaign goal.
type KPIMetric struct {
	Metric string          `json:"metric"`
	Source string          `json:"source"` // TWITTER, DISCORD, ONCHAIN, ...
	Target decimal.Decimal `json:"target"`
	Weight decimal.Decimal `json:"weight"`
}

// RequesterProfile is the sponsor's standing as known to the user service.
type RequesterProfile struct {
	ReputationScore decimal.Decimal `json:"reputationScore"`
	CumulativeSpend decimal.Decimal `json:"cumulativeSpend"`
}

// FeeEstimate is a signed, time-boxed fee quote.
type FeeEstimate struct {
	FeeEstimateID       string              `json:"feeEstimateId"`
	CampaignBudget      decimal.Decimal     `json:"campaignBudget"`
	FeeBreakdown        FeeBreakdown        `json:"feeBreakdown"`
	TotalFees           decimal.Decimal     `json:"totalFees"`
	EscrowRequirement   EscrowRequirement   `json:"escrowRequirement"`
	IssuedAt            time.Time           `json:"issuedAt"`
	ValidUntil          time.Time           `json:"validUntil"`
	Signature           string              `json:"signature"`
	CalculationSnapshot CalculationSnapshot `json:"calculationSnapshot"`
}

// FeeBreakdown itemizes how the service and oracle fees were reached.
type FeeBreakdown struct {
	BaseRate              decimal.Decimal    `json:"baseRate"`
	BaseFee               decimal.Decimal    `json:"baseFee"`
	ComplexityMultiplier  decimal.Decimal    `json:"complexityMultiplier"`
	ComplexityAdjustedFee decimal.Decimal    `json:"complexityAdjustedFee"`
	ReputationDiscount    decimal.Decimal    `json:"reputationDiscount"`
	DiscountAmount        decimal.Decimal    `json:"discountAmount"`
	ServiceFeeBeforeToken decimal.Decimal    `json:"serviceFeeBeforeToken"`
	AW3TokenDiscount      decimal.Decimal    `json:"aw3TokenDiscount"`
	AW3DiscountAmount     decimal.Decimal    `json:"aw3DiscountAmount"`
	FinalServiceFee       decimal.Decimal    `json:"finalServiceFee"`
	OracleFee             decimal.Decimal    `json:"oracleFee"`
	OracleFeeBreakdown    OracleFeeBreakdown `json:"oracleFeeBreakdown"`
}

// OracleFeeBreakdown itemizes the verification fee.
type OracleFeeBreakdown struct {
	BaseFee           decimal.Decimal `json:"baseFee"`
	AdditionalKPIs    int             `json:"additionalKPIs"`
	KPIFee            decimal.Decimal `json:"kpiFee"`
	ComplexityPremium decimal.Decimal `json:"complexityPremium"`
}

// EscrowRequirement is what must be locked before the campaign goes live.
type EscrowRequirement struct {
	CampaignBudget   decimal.Decimal `json:"campaignBudget"`
	ServiceFee       decimal.Decimal `json:"serviceFee"`
	OracleFee        decimal.Decimal `json:"oracleFee"`
	Buffer           decimal.Decimal `json:"buffer"`
	TotalRequired    decimal.Decimal `json:"totalRequired"`
	BufferPercentage decimal.Decimal `json:"bufferPercentage"`
}

// CalculationSnapshot records every input and intermediate value for audit replay.
type CalculationSnapshot struct {
	ScheduleVersion      string          `json:"scheduleVersion"`
	Category             string          `json:"category"`
	Complexity           Complexity      `json:"complexity"`
	BudgetAmount         decimal.Decimal `json:"budgetAmount"`
	ReputationScore      decimal.Decimal `json:"projectReputationScore"`
	CumulativeSpend      decimal.Decimal `json:"projectCumulativeSpend"`
	SpendTier            string          `json:"spendTier"`
	RequestedCreators    *int            `json:"numberOfKOLs,omitempty"`
	EstimatedDuration    *int            `json:"estimatedDuration,omitempty"`
	KPICount             int             `json:"kpiCount"`
	IncludedKPIs         int             `json:"includedKpis"`
	UseAW3Token          bool            `json:"useAW3Token"`
	BaseRate             decimal.Decimal `json:"baseRate"`
	ComplexityMultiplier decimal.Decimal `json:"complexityMultiplier"`
	DiscountRate         decimal.Decimal `json:"discountRate"`
	TokenDiscountRate    decimal.Decimal `json:"tokenDiscountRate"`
	OraclePremiumRate    decimal.Decimal `json:"oraclePremiumRate"`
	BufferRate           decimal.Decimal `json:"bufferRate"`
}

// StoredQuote is an issued estimate bound to the requester it was issued to.
type StoredQuote struct {
	RequesterID string       `json:"requesterId"`
	Estimate    *FeeEstimate `json:"estimate"`
}
