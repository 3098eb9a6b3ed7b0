package queries_test

import (
	"context"
	"testing"

	"shippingcost/internal/core/application/usecases/queries"
	"shippingcost/internal/core/domain/model/kernel"
	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompareOrderQuotesQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		q, err := queries.NewCompareOrderQuotesQuery("PED100", kernel.Money("300"))

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, "PED100", q.OrderID())
		assert.True(t, kernel.Money("300").Equal(q.PromotionalThreshold()))
	})

	t.Run("should require order id", func(t *testing.T) {
		_, err := queries.NewCompareOrderQuotesQuery("", kernel.Money("300"))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative threshold", func(t *testing.T) {
		_, err := queries.NewCompareOrderQuotesQuery("PED100", kernel.Money("-1"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCompareOrderQuotesQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should list all strategies cheapest first without changing order", func(t *testing.T) {
		o := newOrder(t, "PED100", "250", "3.0", "320", shipping.NewFast())
		reader := &MockOrderReader{}
		reader.On("Get", ctx, "PED100").Return(o, nil)
		handler := queries.NewCompareOrderQuotesQueryHandler(reader)
		q, err := queries.NewCompareOrderQuotesQuery("PED100", kernel.Money("300"))
		require.NoError(t, err)

		quotes, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		require.Len(t, quotes, 4)
		assert.Equal(t, shipping.KindPickup, quotes[0].Kind)
		// economy and promotional tie at 36.10 and keep catalogue order
		assert.Equal(t, shipping.KindEconomy, quotes[1].Kind)
		assert.Equal(t, shipping.KindPromotional, quotes[2].Kind)
		assert.True(t, kernel.Money("36.10").Equal(quotes[2].ShippingCost))
		assert.Equal(t, shipping.KindFast, quotes[3].Kind)
		assert.True(t, kernel.Money("65.00").Equal(quotes[3].ShippingCost))
		assert.Equal(t, "Fast (express)", o.ShippingMethodName())
	})

	t.Run("should propagate not found", func(t *testing.T) {
		reader := &MockOrderReader{}
		reader.On("Get", ctx, "missing").Return(nil, errs.NewObjectNotFoundError("orderID", "missing"))
		handler := queries.NewCompareOrderQuotesQueryHandler(reader)
		q, err := queries.NewCompareOrderQuotesQuery("missing", kernel.Money("300"))
		require.NoError(t, err)

		_, err = handler.Handle(ctx, q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
