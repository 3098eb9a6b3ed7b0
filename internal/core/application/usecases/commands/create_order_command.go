package commands

import (
	"errors"

	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register an order with its initial
// shipping strategy. An empty order ID is replaced by a generated UUID.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("PED001", kernel.Money("120.50"), kernel.Money("2.2"),
//	    kernel.Money("150"), shipping.KindEconomy, decimal.Zero)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             string
	priceBeforeShipping decimal.Decimal
	weightKg            decimal.Decimal
	distanceKm          decimal.Decimal
	strategyKind        shipping.Kind
	threshold           decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request: amounts must not be negative and
// the strategy kind must be known. threshold only matters for KindPromotional.
func NewCreateOrderCommand(
	orderID string,
	priceBeforeShipping, weightKg, distanceKm decimal.Decimal,
	strategyKind shipping.Kind,
	threshold decimal.Decimal,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderID:             orderID,
		priceBeforeShipping: priceBeforeShipping,
		weightKg:            weightKg,
		distanceKm:          distanceKm,
		strategyKind:        strategyKind,
		threshold:           threshold,
		guard:               guard.NewConstructorGuard(),
	}

	if cmd.orderID == "" {
		cmd.orderID = uuid.NewString()
	}

	if err := errors.Join(
		requireNonNegative("priceBeforeShipping", priceBeforeShipping),
		requireNonNegative("weightKg", weightKg),
		requireNonNegative("distanceKm", distanceKm),
		requireNonNegative("threshold", threshold),
		strategyKind.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

func (c CreateOrderCommand) PriceBeforeShipping() decimal.Decimal {
	return c.priceBeforeShipping
}

func (c CreateOrderCommand) WeightKg() decimal.Decimal {
	return c.weightKg
}

func (c CreateOrderCommand) DistanceKm() decimal.Decimal {
	return c.distanceKm
}

func (c CreateOrderCommand) StrategyKind() shipping.Kind {
	return c.strategyKind
}

func (c CreateOrderCommand) Threshold() decimal.Decimal {
	return c.threshold
}
