package queries

import (
	"context"
	"errors"

	"shippingcost/internal/pkg/errs"
	"shippingcost/internal/pkg/guard"
)

var (
	ErrGetOrderQuoteQueryIsNotConstructed = errors.New(
		"GetOrderQuoteQuery must be created via NewGetOrderQuoteQuery constructor",
	)
)

// GetOrderQuoteQuery retrieves one order with its current shipping quote.
type GetOrderQuoteQuery struct {
	orderID string
	guard   guard.ConstructorGuard
}

func NewGetOrderQuoteQuery(orderID string) (GetOrderQuoteQuery, error) {
	if orderID == "" {
		return GetOrderQuoteQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	return GetOrderQuoteQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQuoteQueryIsNotConstructed)
}

func (q GetOrderQuoteQuery) OrderID() string {
	return q.orderID
}

// GetOrderQuoteQueryHandler answers GetOrderQuoteQuery.
type GetOrderQuoteQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQuoteQueryHandler(orders OrderReader) GetOrderQuoteQueryHandler {
	return GetOrderQuoteQueryHandler{orders: orders}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQuoteQueryHandler) Handle(ctx context.Context, query GetOrderQuoteQuery) (OrderQuote, error) {
	if err := query.Validate(); err != nil {
		return OrderQuote{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderQuote{}, err
	}

	return newOrderQuote(o), nil
}
