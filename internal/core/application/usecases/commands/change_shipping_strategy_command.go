package commands

import (
	"errors"

	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/pkg/errs"
	"shippingcost/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrChangeShippingStrategyCommandIsNotConstructed = errors.New(
		"ChangeShippingStrategyCommand must be created via NewChangeShippingStrategyCommand constructor",
	)
)

// ChangeShippingStrategyCommand replaces the pricing strategy of an existing order.
//
// Example:
//
//	cmd, err := NewChangeShippingStrategyCommand("PED100", shipping.KindFast, decimal.Zero)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ChangeShippingStrategyCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	strategyKind shipping.Kind
	threshold    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewChangeShippingStrategyCommand requires an order ID and a known strategy kind.
func NewChangeShippingStrategyCommand(
	orderID string,
	strategyKind shipping.Kind,
	threshold decimal.Decimal,
) (ChangeShippingStrategyCommand, error) {
	var orderIDErr error
	if orderID == "" {
		orderIDErr = errs.NewValueIsRequiredError("orderID")
	}

	if err := errors.Join(
		orderIDErr,
		strategyKind.Validate(),
		requireNonNegative("threshold", threshold),
	); err != nil {
		return ChangeShippingStrategyCommand{}, err
	}

	return ChangeShippingStrategyCommand{
		orderID:      orderID,
		strategyKind: strategyKind,
		threshold:    threshold,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShippingStrategyCommand) Validate() error {
	return c.guard.Validate(ErrChangeShippingStrategyCommandIsNotConstructed)
}

func (c ChangeShippingStrategyCommand) OrderID() string {
	return c.orderID
}

func (c ChangeShippingStrategyCommand) StrategyKind() shipping.Kind {
	return c.strategyKind
}

func (c ChangeShippingStrategyCommand) Threshold() decimal.Decimal {
	return c.threshold
}
