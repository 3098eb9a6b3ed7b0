package queries

import (
	"context"
	"errors"

	"shippingcost/internal/pkg/guard"
)

var (
	ErrGetAllOrderQuotesQueryIsNotConstructed = errors.New(
		"GetAllOrderQuotesQuery must be created via NewGetAllOrderQuotesQuery constructor",
	)
)

// GetAllOrderQuotesQuery lists every order with its current quote, ordered by ID.
type GetAllOrderQuotesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrderQuotesQuery() GetAllOrderQuotesQuery {
	return GetAllOrderQuotesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrderQuotesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrderQuotesQueryIsNotConstructed)
}

// GetAllOrderQuotesQueryHandler answers GetAllOrderQuotesQuery.
type GetAllOrderQuotesQueryHandler struct {
	orders OrderReader
}

func NewGetAllOrderQuotesQueryHandler(orders OrderReader) GetAllOrderQuotesQueryHandler {
	return GetAllOrderQuotesQueryHandler{orders: orders}
}

// Handle never returns a nil slice on success.
func (h GetAllOrderQuotesQueryHandler) Handle(ctx context.Context, query GetAllOrderQuotesQuery) ([]OrderQuote, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	quotes := make([]OrderQuote, 0, len(orders))
	for _, o := range orders {
		quotes = append(quotes, newOrderQuote(o))
	}

	return quotes, nil
}
