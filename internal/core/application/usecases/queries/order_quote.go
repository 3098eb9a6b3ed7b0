// Package queries contains read-only use cases. Derived values (shipping
// cost, total, method name) are always computed by the order aggregate
// itself, never recomputed in SQL.
package queries

import (
	"context"

	"shippingcost/internal/core/domain/model/kernel"
	"shippingcost/internal/core/domain/model/order"
	"shippingcost/internal/core/domain/model/shipping"

	"github.com/shopspring/decimal"
)

// OrderReader is the read side of ports.OrderRepository.
type OrderReader interface {
	Get(ctx context.Context, id string) (*order.Order, error)
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// OrderQuote is an order together with the price its current strategy yields.
type OrderQuote struct {
	ID                  string
	PriceBeforeShipping decimal.Decimal
	WeightKg            decimal.Decimal
	DistanceKm          decimal.Decimal
	Kind                shipping.Kind
	ShippingMethod      string
	ShippingCost        decimal.Decimal
	Total               decimal.Decimal
}

func newOrderQuote(o *order.Order) OrderQuote {
	// read the strategy once so every derived field uses the same one
	strategy := o.Strategy()
	cost := strategy.Calculate(o.WeightKg(), o.DistanceKm(), o.PriceBeforeShipping())

	return OrderQuote{
		ID:                  o.ID(),
		PriceBeforeShipping: o.PriceBeforeShipping(),
		WeightKg:            o.WeightKg(),
		DistanceKm:          o.DistanceKm(),
		Kind:                strategy.Kind(),
		ShippingMethod:      strategy.Name(),
		ShippingCost:        cost,
		Total:               kernel.RoundMoney(o.PriceBeforeShipping().Add(cost)),
	}
}
