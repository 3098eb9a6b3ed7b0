// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"shippingcost/internal/core/domain/model/order"
	"shippingcost/internal/core/domain/model/shipping"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Amounts use unscaled numeric columns so no input precision is lost between
// a save and a reload.
type OrderDTO struct {
	ID                  string          `gorm:"primaryKey"`
	PriceBeforeShipping decimal.Decimal `gorm:"type:numeric;not null"`
	WeightKg            decimal.Decimal `gorm:"type:numeric;not null"`
	DistanceKm          decimal.Decimal `gorm:"type:numeric;not null"`
	Strategy            StrategyDTO     `gorm:"embedded;embeddedPrefix:strategy_"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// StrategyDTO is the embedded (kind, threshold) pair a strategy is rebuilt from.
type StrategyDTO struct {
	Kind      int             `gorm:"type:smallint;not null;index"`
	Threshold decimal.Decimal `gorm:"type:numeric;not null"`
}

// thresholder is implemented by strategies carrying a promotional threshold.
type thresholder interface {
	Threshold() decimal.Decimal
}

func fromDomain(aggregate *order.Order) OrderDTO {
	strategy := aggregate.Strategy()

	threshold := decimal.Zero
	if t, ok := strategy.(thresholder); ok {
		threshold = t.Threshold()
	}

	return OrderDTO{
		ID:                  aggregate.ID(),
		PriceBeforeShipping: aggregate.PriceBeforeShipping(),
		WeightKg:            aggregate.WeightKg(),
		DistanceKm:          aggregate.DistanceKm(),
		Strategy: StrategyDTO{
			Kind:      int(strategy.Kind()),
			Threshold: threshold,
		},
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	strategy, err := shipping.New(shipping.Kind(dto.Strategy.Kind), dto.Strategy.Threshold)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(dto.ID, dto.PriceBeforeShipping, dto.WeightKg, dto.DistanceKm, strategy)
}
