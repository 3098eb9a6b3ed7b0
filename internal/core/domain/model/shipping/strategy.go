// Package shipping defines the pricing strategy contract used to compute the
// shipping cost of an order, and its interchangeable variants.
//
// Every variant is an immutable value: Calculate is a pure function of its
// inputs and the variant's own parameters, so a single instance can be shared
// between any number of orders and goroutines.
//
//	promo := shipping.NewPromotionalFreeOverThreshold(kernel.Money("300"))
//	cost := promo.Calculate(weight, distance, price)
package shipping

import (
	"reflect"

	"shippingcost/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Strategy computes the shipping cost for an order's weight, distance and
// pre-shipping price. Results are always rounded to kernel.MoneyPlaces.
//
// Inputs are not validated: negative values yield whatever the formula yields.
type Strategy interface {
	Calculate(weightKg, distanceKm, priceBeforeShipping decimal.Decimal) decimal.Decimal
	Name() string
	Kind() Kind
}

// IsMissing reports whether s is nil, including a nil pointer stored in the
// interface (var s *Fast). Such a value cannot price anything.
func IsMissing(s Strategy) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// New rebuilds a strategy from its kind. threshold is only used by KindPromotional.
func New(kind Kind, threshold decimal.Decimal) (Strategy, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	//nolint:exhaustive // KindUnknown is rejected by Validate above
	switch kind {
	case KindFast:
		return NewFast(), nil
	case KindEconomy:
		return NewEconomy(), nil
	case KindPickup:
		return NewPickup(), nil
	default:
		return NewPromotionalFreeOverThreshold(threshold), nil
	}
}

// All returns one instance of every variant, ordered like Kinds.
func All(promotionalThreshold decimal.Decimal) []Strategy {
	return []Strategy{
		NewFast(),
		NewEconomy(),
		NewPickup(),
		NewPromotionalFreeOverThreshold(promotionalThreshold),
	}
}

// linearTariff is base + perKg*weight + perKm*distance + priceRate*price.
type linearTariff struct {
	base      decimal.Decimal
	perKg     decimal.Decimal
	perKm     decimal.Decimal
	priceRate decimal.Decimal
}

func (t linearTariff) apply(weightKg, distanceKm, priceBeforeShipping decimal.Decimal) decimal.Decimal {
	cost := t.base.
		Add(t.perKg.Mul(weightKg)).
		Add(t.perKm.Mul(distanceKm)).
		Add(t.priceRate.Mul(priceBeforeShipping))
	return kernel.RoundMoney(cost)
}
