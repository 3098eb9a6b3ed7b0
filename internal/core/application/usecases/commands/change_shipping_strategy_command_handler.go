package commands

import (
	"context"

	"shippingcost/internal/core/domain/model/shipping"
)

// ChangeShippingStrategyCommandHandler loads an order, swaps its strategy and
// saves it back in one transaction.
type ChangeShippingStrategyCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeShippingStrategyCommandHandler(uowFactory OrderUoWFactory) ChangeShippingStrategyCommandHandler {
	return ChangeShippingStrategyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h *ChangeShippingStrategyCommandHandler) Handle(ctx context.Context, cmd ChangeShippingStrategyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	strategy, err := shipping.New(cmd.StrategyKind(), cmd.Threshold())
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.SetStrategy(strategy); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
