package queries

import (
	"context"
	"errors"
	"fmt"

	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/core/domain/services"
	"shippingcost/internal/pkg/errs"
	"shippingcost/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCompareOrderQuotesQueryIsNotConstructed = errors.New(
		"CompareOrderQuotesQuery must be created via NewCompareOrderQuotesQuery constructor",
	)
)

// CompareOrderQuotesQuery prices an order under every strategy variant
// without changing it. promotionalThreshold configures the promotional candidate.
type CompareOrderQuotesQuery struct {
	orderID              string
	promotionalThreshold decimal.Decimal
	guard                guard.ConstructorGuard
}

func NewCompareOrderQuotesQuery(orderID string, promotionalThreshold decimal.Decimal) (CompareOrderQuotesQuery, error) {
	if orderID == "" {
		return CompareOrderQuotesQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	if promotionalThreshold.IsNegative() {
		return CompareOrderQuotesQuery{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"promotionalThreshold", promotionalThreshold, decimal.Zero, "unbounded",
			fmt.Errorf("promotionalThreshold must not be negative"))
	}

	return CompareOrderQuotesQuery{
		orderID:              orderID,
		promotionalThreshold: promotionalThreshold,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CompareOrderQuotesQuery) Validate() error {
	return q.guard.Validate(ErrCompareOrderQuotesQueryIsNotConstructed)
}

func (q CompareOrderQuotesQuery) OrderID() string {
	return q.orderID
}

func (q CompareOrderQuotesQuery) PromotionalThreshold() decimal.Decimal {
	return q.promotionalThreshold
}

// CompareOrderQuotesQueryHandler answers CompareOrderQuotesQuery, cheapest first.
type CompareOrderQuotesQueryHandler struct {
	orders   OrderReader
	comparer services.QuoteComparer
}

func NewCompareOrderQuotesQueryHandler(orders OrderReader) CompareOrderQuotesQueryHandler {
	return CompareOrderQuotesQueryHandler{orders: orders, comparer: services.NewQuoteComparer()}
}

func (h CompareOrderQuotesQueryHandler) Handle(
	ctx context.Context,
	query CompareOrderQuotesQuery,
) ([]services.Quote, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return h.comparer.Compare(o, shipping.All(query.PromotionalThreshold()))
}
