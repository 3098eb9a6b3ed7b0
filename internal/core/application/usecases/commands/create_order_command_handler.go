package commands

import (
	"context"

	"shippingcost/internal/core/domain/model/order"
	"shippingcost/internal/core/domain/model/shipping"
)

// CreateOrderCommandHandler builds the order with its initial strategy and
// persists it in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	strategy, err := shipping.New(cmd.StrategyKind(), cmd.Threshold())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.PriceBeforeShipping(), cmd.WeightKg(), cmd.DistanceKm(), strategy)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
