package commands

import (
	"errors"

	"shippingcost/internal/pkg/errs"
	"shippingcost/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrApplyCheapestStrategyCommandIsNotConstructed = errors.New(
		"ApplyCheapestStrategyCommand must be created via NewApplyCheapestStrategyCommand constructor",
	)
)

// ApplyCheapestStrategyCommand switches an order to whichever strategy prices
// it lowest. promotionalThreshold configures the promotional candidate.
type ApplyCheapestStrategyCommand struct { //nolint:recvcheck //using for validation
	orderID              string
	promotionalThreshold decimal.Decimal

	guard guard.ConstructorGuard
}

func NewApplyCheapestStrategyCommand(
	orderID string,
	promotionalThreshold decimal.Decimal,
) (ApplyCheapestStrategyCommand, error) {
	var orderIDErr error
	if orderID == "" {
		orderIDErr = errs.NewValueIsRequiredError("orderID")
	}

	if err := errors.Join(
		orderIDErr,
		requireNonNegative("promotionalThreshold", promotionalThreshold),
	); err != nil {
		return ApplyCheapestStrategyCommand{}, err
	}

	return ApplyCheapestStrategyCommand{
		orderID:              orderID,
		promotionalThreshold: promotionalThreshold,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyCheapestStrategyCommand) Validate() error {
	return c.guard.Validate(ErrApplyCheapestStrategyCommandIsNotConstructed)
}

func (c ApplyCheapestStrategyCommand) OrderID() string {
	return c.orderID
}

func (c ApplyCheapestStrategyCommand) PromotionalThreshold() decimal.Decimal {
	return c.promotionalThreshold
}
