package domain

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

const signaturePrefix = "0x"

// QuoteSigner binds a fee estimate's figures, ID and expiry with an HMAC-SHA256 keyed hash.
type QuoteSigner struct {
	secret []byte
}

// NewQuoteSigner creates a signer for the given server secret.
func NewQuoteSigner(secret string) (*QuoteSigner, error) {
	if secret == "" {
		return nil, errors.New("quote signing secret cannot be empty")
	}
	return &QuoteSigner{secret: []byte(secret)}, nil
}

// Sign returns the hex signature of the estimate. The Signature field itself is not covered.
func (s *QuoteSigner) Sign(est *FeeEstimate) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(canonicalPayload(est)))
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify checks that the estimate is unexpired at now and that its signature matches its contents.
func (s *QuoteSigner) Verify(est *FeeEstimate, now time.Time) error {
	if est == nil {
		return ErrQuoteTampered
	}

	got, err := hex.DecodeString(strings.TrimPrefix(est.Signature, signaturePrefix))
	if err != nil {
		return ErrQuoteTampered
	}
	want, _ := hex.DecodeString(strings.TrimPrefix(s.Sign(est), signaturePrefix))
	if !hmac.Equal(got, want) {
		return ErrQuoteTampered
	}

	if now.After(est.ValidUntil) {
		return ErrQuoteExpired
	}

	return nil
}

// canonicalPayload joins every monetary field plus the ID and expiry in a fixed order.
func canonicalPayload(est *FeeEstimate) string {
	b := est.FeeBreakdown
	o := b.OracleFeeBreakdown
	e := est.EscrowRequirement

	return strings.Join([]string{
		est.FeeEstimateID,
		est.CampaignBudget.String(),
		b.BaseRate.String(),
		b.BaseFee.String(),
		b.ComplexityMultiplier.String(),
		b.ComplexityAdjustedFee.String(),
		b.ReputationDiscount.String(),
		b.DiscountAmount.String(),
		b.ServiceFeeBeforeToken.String(),
		b.AW3TokenDiscount.String(),
		b.AW3DiscountAmount.String(),
		b.FinalServiceFee.String(),
		b.OracleFee.String(),
		o.BaseFee.String(),
		strconv.Itoa(o.AdditionalKPIs),
		o.KPIFee.String(),
		o.ComplexityPremium.String(),
		est.TotalFees.String(),
		e.CampaignBudget.String(),
		e.ServiceFee.String(),
		e.OracleFee.String(),
		e.Buffer.String(),
		e.TotalRequired.String(),
		e.BufferPercentage.String(),
		strconv.FormatInt(est.ValidUntil.Unix(), 10),
	}, "|")
}
