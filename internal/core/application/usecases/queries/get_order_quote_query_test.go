package queries_test

import (
	"context"
	"errors"
	"testing"

	"shippingcost/internal/core/application/usecases/queries"
	"shippingcost/internal/core/domain/model/kernel"
	"shippingcost/internal/core/domain/model/order"
	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, id string, price, weight, distance string, s shipping.Strategy) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, kernel.Money(price), kernel.Money(weight), kernel.Money(distance), s)
	require.NoError(t, err)
	return o
}

func TestNewGetOrderQuoteQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		q, err := queries.NewGetOrderQuoteQuery("PED001")

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, "PED001", q.OrderID())
	})

	t.Run("should require order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuoteQuery("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		var q queries.GetOrderQuoteQuery

		assert.ErrorIs(t, q.Validate(), queries.ErrGetOrderQuoteQueryIsNotConstructed)
	})
}

func TestGetOrderQuoteQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should quote the current strategy", func(t *testing.T) {
		reader := &MockOrderReader{}
		reader.On("Get", ctx, "PED001").
			Return(newOrder(t, "PED001", "120.50", "2.2", "150", shipping.NewFast()), nil)
		handler := queries.NewGetOrderQuoteQueryHandler(reader)
		q, err := queries.NewGetOrderQuoteQuery("PED001")
		require.NoError(t, err)

		quote, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, "PED001", quote.ID)
		assert.Equal(t, shipping.KindFast, quote.Kind)
		assert.Equal(t, "Fast (express)", quote.ShippingMethod)
		assert.True(t, kernel.Money("40.52").Equal(quote.ShippingCost))
		assert.True(t, kernel.Money("161.02").Equal(quote.Total))
		assert.True(t, kernel.Money("120.50").Equal(quote.PriceBeforeShipping))
		assert.True(t, kernel.Money("2.2").Equal(quote.WeightKg))
		assert.True(t, kernel.Money("150").Equal(quote.DistanceKm))
		reader.AssertExpectations(t)
	})

	t.Run("should propagate not found", func(t *testing.T) {
		reader := &MockOrderReader{}
		reader.On("Get", ctx, "missing").Return(nil, errs.NewObjectNotFoundError("orderID", "missing"))
		handler := queries.NewGetOrderQuoteQueryHandler(reader)
		q, err := queries.NewGetOrderQuoteQuery("missing")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		reader := &MockOrderReader{}
		handler := queries.NewGetOrderQuoteQueryHandler(reader)

		_, err := handler.Handle(ctx, queries.GetOrderQuoteQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderQuoteQueryIsNotConstructed)
		reader.AssertNotCalled(t, "Get")
	})
}

func TestGetAllOrderQuotesQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should quote every order in repository order", func(t *testing.T) {
		reader := &MockOrderReader{}
		reader.On("GetAll", ctx).Return([]*order.Order{
			newOrder(t, "PED001", "120.50", "2.2", "150", shipping.NewFast()),
			newOrder(t, "PED002", "35.00", "0.5", "12", shipping.NewEconomy()),
			newOrder(t, "PED004", "80.00", "1.0", "0", shipping.NewPickup()),
		}, nil)
		handler := queries.NewGetAllOrderQuotesQueryHandler(reader)

		quotes, err := handler.Handle(ctx, queries.NewGetAllOrderQuotesQuery())

		require.NoError(t, err)
		require.Len(t, quotes, 3)
		assert.Equal(t, "PED001", quotes[0].ID)
		assert.True(t, kernel.Money("40.52").Equal(quotes[0].ShippingCost))
		assert.Equal(t, "Economy", quotes[1].ShippingMethod)
		assert.True(t, kernel.Money("8.47").Equal(quotes[1].ShippingCost))
		assert.True(t, quotes[2].ShippingCost.IsZero())
		assert.True(t, kernel.Money("80.00").Equal(quotes[2].Total))
	})

	t.Run("should return empty slice for no orders", func(t *testing.T) {
		reader := &MockOrderReader{}
		reader.On("GetAll", ctx).Return([]*order.Order{}, nil)
		handler := queries.NewGetAllOrderQuotesQueryHandler(reader)

		quotes, err := handler.Handle(ctx, queries.NewGetAllOrderQuotesQuery())

		require.NoError(t, err)
		assert.NotNil(t, quotes)
		assert.Empty(t, quotes)
	})

	t.Run("should propagate repository error", func(t *testing.T) {
		reader := &MockOrderReader{}
		reader.On("GetAll", ctx).Return(nil, errors.New("connection refused"))
		handler := queries.NewGetAllOrderQuotesQueryHandler(reader)

		_, err := handler.Handle(ctx, queries.NewGetAllOrderQuotesQuery())

		require.EqualError(t, err, "connection refused")
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		handler := queries.NewGetAllOrderQuotesQueryHandler(&MockOrderReader{})

		_, err := handler.Handle(ctx, queries.GetAllOrderQuotesQuery{})

		require.ErrorIs(t, err, queries.ErrGetAllOrderQuotesQueryIsNotConstructed)
	})
}
