package shipping

import "github.com/shopspring/decimal"

// PromotionalFreeOverThreshold ships for free when the order value reaches
// the threshold. Below it the Economy tariff applies; the fallback is fixed
// and not configurable.
type PromotionalFreeOverThreshold struct {
	threshold decimal.Decimal
}

func NewPromotionalFreeOverThreshold(threshold decimal.Decimal) PromotionalFreeOverThreshold {
	return PromotionalFreeOverThreshold{threshold: threshold}
}

// Calculate returns zero when priceBeforeShipping >= threshold (the boundary
// itself is free), otherwise the Economy cost for the same inputs.
func (p PromotionalFreeOverThreshold) Calculate(
	weightKg, distanceKm, priceBeforeShipping decimal.Decimal,
) decimal.Decimal {
	if priceBeforeShipping.GreaterThanOrEqual(p.threshold) {
		return decimal.Zero
	}
	return economyTariff.apply(weightKg, distanceKm, priceBeforeShipping)
}

func (PromotionalFreeOverThreshold) Name() string {
	return "Promotion: free shipping over threshold"
}

func (PromotionalFreeOverThreshold) Kind() Kind {
	return KindPromotional
}

// Threshold returns the order value from which shipping is free.
func (p PromotionalFreeOverThreshold) Threshold() decimal.Decimal {
	return p.threshold
}
