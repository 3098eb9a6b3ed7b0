package http

import (
	"shippingcost/internal/core/application/usecases/queries"
	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StrategyRequest selects a strategy by kind. Threshold is only read for
// "promotional"; when absent the server's default threshold applies.
type StrategyRequest struct {
	Kind      string           `json:"kind" example:"promotional"`
	Threshold *decimal.Decimal `json:"threshold,omitempty" swaggertype:"string" example:"300.00"`
}

// NewOrder is the body of POST /api/v1/orders. An empty ID is generated by the server.
type NewOrder struct {
	ID                  string          `json:"id,omitempty" example:"PED001"`
	PriceBeforeShipping decimal.Decimal `json:"priceBeforeShipping" swaggertype:"string" example:"120.50"`
	WeightKg            decimal.Decimal `json:"weightKg" swaggertype:"string" example:"2.2"`
	DistanceKm          decimal.Decimal `json:"distanceKm" swaggertype:"string" example:"150"`
	Strategy            StrategyRequest `json:"strategy"`
}

type Order struct {
	ID                  string          `json:"id"`
	PriceBeforeShipping decimal.Decimal `json:"priceBeforeShipping" swaggertype:"string"`
	WeightKg            decimal.Decimal `json:"weightKg" swaggertype:"string"`
	DistanceKm          decimal.Decimal `json:"distanceKm" swaggertype:"string"`
	Strategy            string          `json:"strategy"`
	ShippingMethod      string          `json:"shippingMethod"`
	ShippingCost        decimal.Decimal `json:"shippingCost" swaggertype:"string"`
	Total               decimal.Decimal `json:"total" swaggertype:"string"`
}

type Quote struct {
	Strategy     string          `json:"strategy"`
	Name         string          `json:"name"`
	ShippingCost decimal.Decimal `json:"shippingCost" swaggertype:"string"`
	Total        decimal.Decimal `json:"total" swaggertype:"string"`
}

type Strategy struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

func toOrder(q queries.OrderQuote) Order {
	return Order{
		ID:                  q.ID,
		PriceBeforeShipping: q.PriceBeforeShipping,
		WeightKg:            q.WeightKg,
		DistanceKm:          q.DistanceKm,
		Strategy:            q.Kind.String(),
		ShippingMethod:      q.ShippingMethod,
		ShippingCost:        q.ShippingCost,
		Total:               q.Total,
	}
}

func toQuote(q services.Quote) Quote {
	return Quote{
		Strategy:     q.Kind.String(),
		Name:         q.Name,
		ShippingCost: q.ShippingCost,
		Total:        q.Total,
	}
}

func toStrategy(s shipping.Strategy) Strategy {
	return Strategy{Kind: s.Kind().String(), Name: s.Name()}
}
