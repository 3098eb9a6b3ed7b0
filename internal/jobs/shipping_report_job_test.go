package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"shippingcost/internal/core/application/usecases/queries"
	"shippingcost/internal/core/domain/model/kernel"
	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/jobs"
	"shippingcost/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderQuotesLister struct{ mock.Mock }

func (m *MockOrderQuotesLister) Handle(
	ctx context.Context,
	query queries.GetAllOrderQuotesQuery,
) ([]queries.OrderQuote, error) {
	args := m.Called(ctx, query)
	if quotes, ok := args.Get(0).([]queries.OrderQuote); ok {
		return quotes, args.Error(1)
	}
	return nil, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func quote(id string, kind shipping.Kind, method, cost, total string) queries.OrderQuote {
	return queries.OrderQuote{
		ID:             id,
		Kind:           kind,
		ShippingMethod: method,
		ShippingCost:   kernel.Money(cost),
		Total:          kernel.Money(total),
	}
}

func TestShippingReportJob_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("should aggregate quotes per kind and refresh gauges", func(t *testing.T) {
		lister := &MockOrderQuotesLister{}
		lister.On("Handle", ctx, mock.AnythingOfType("queries.GetAllOrderQuotesQuery")).Return([]queries.OrderQuote{
			quote("PED001", shipping.KindFast, "Fast (express)", "40.52", "161.02"),
			quote("PED002", shipping.KindEconomy, "Economy", "8.47", "43.47"),
			quote("PED005", shipping.KindEconomy, "Economy", "36.10", "286.10"),
			quote("PED004", shipping.KindPickup, "Store pickup (free)", "0", "80.00"),
		}, nil)
		m := metrics.NewShippingMetrics(prometheus.NewRegistry())
		job := jobs.NewShippingReportJob(lister, m, "", discardLogger())

		report, err := job.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, 4, report.Orders)
		require.Len(t, report.Methods, 4)

		economy := report.Methods[1]
		assert.Equal(t, shipping.KindEconomy, economy.Kind)
		assert.Equal(t, "Economy", economy.Method)
		assert.Equal(t, 2, economy.Orders)
		assert.True(t, kernel.Money("44.57").Equal(economy.ShippingTotal))
		assert.True(t, kernel.Money("329.57").Equal(economy.RevenueTotal))

		promotional := report.Methods[3]
		assert.Equal(t, shipping.KindPromotional, promotional.Kind)
		assert.Equal(t, "Promotion: free shipping over threshold", promotional.Method)
		assert.Equal(t, 0, promotional.Orders)
		assert.True(t, promotional.ShippingTotal.IsZero())

		assert.InDelta(t, 2, testutil.ToFloat64(m.Orders.WithLabelValues("economy")), 0)
		assert.InDelta(t, 44.57, testutil.ToFloat64(m.ShippingRevenue.WithLabelValues("economy")), 0.001)
		assert.InDelta(t, 0, testutil.ToFloat64(m.Orders.WithLabelValues("promotional")), 0)
	})

	t.Run("should propagate query error", func(t *testing.T) {
		lister := &MockOrderQuotesLister{}
		lister.On("Handle", ctx, mock.Anything).Return(nil, errors.New("db down"))
		job := jobs.NewShippingReportJob(lister, nil, "", discardLogger())

		_, err := job.Run(ctx)

		require.EqualError(t, err, "db down")
	})
}

func TestShippingReportJob_Run_NoOrders(t *testing.T) {
	ctx := context.Background()
	lister := &MockOrderQuotesLister{}
	lister.On("Handle", ctx, mock.Anything).Return([]queries.OrderQuote{}, nil)
	job := jobs.NewShippingReportJob(lister, nil, "", discardLogger())

	report, err := job.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Orders)
	require.Len(t, report.Methods, 4)
	for i, strategy := range shipping.All(kernel.Money("300")) {
		assert.Equal(t, strategy.Kind(), report.Methods[i].Kind)
		assert.Equal(t, strategy.Name(), report.Methods[i].Method)
	}
}

func TestShippingReportJob_Start(t *testing.T) {
	t.Run("should reject invalid schedule", func(t *testing.T) {
		job := jobs.NewShippingReportJob(&MockOrderQuotesLister{}, nil, "not a schedule", discardLogger())

		require.Error(t, job.Start())
	})

	t.Run("should start and stop with valid schedule", func(t *testing.T) {
		job := jobs.NewShippingReportJob(&MockOrderQuotesLister{}, nil, "0 0 0 1 1 *", discardLogger())

		require.NoError(t, job.Start())
		job.Stop()
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should wrap start error", func(t *testing.T) {
		jm := jobs.NewJobManager(&MockOrderQuotesLister{}, nil, "bogus", discardLogger())

		err := jm.StartAll()

		require.ErrorContains(t, err, "failed to start shipping report job")
	})
}
