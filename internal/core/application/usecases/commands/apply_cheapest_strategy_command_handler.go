package commands

import (
	"context"

	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/core/domain/services"
)

// ApplyCheapestStrategyCommandHandler compares every strategy variant for an
// order and persists the cheapest one.
type ApplyCheapestStrategyCommandHandler struct {
	uowFactory OrderUoWFactory
	comparer   services.QuoteComparer
}

func NewApplyCheapestStrategyCommandHandler(uowFactory OrderUoWFactory) ApplyCheapestStrategyCommandHandler {
	return ApplyCheapestStrategyCommandHandler{
		uowFactory: uowFactory,
		comparer:   services.NewQuoteComparer(),
	}
}

// Handle returns the quote of the strategy now in effect.
func (h *ApplyCheapestStrategyCommandHandler) Handle(
	ctx context.Context,
	cmd ApplyCheapestStrategyCommand,
) (services.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return services.Quote{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Quote{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.Quote{}, err
	}

	quote, err := h.comparer.ApplyCheapest(o, shipping.All(cmd.PromotionalThreshold()))
	if err != nil {
		return services.Quote{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return services.Quote{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Quote{}, err
	}

	return quote, nil
}
