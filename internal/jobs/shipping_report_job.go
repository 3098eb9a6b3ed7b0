package jobs

import (
	"context"
	"log/slog"

	"shippingcost/internal/core/application/usecases/queries"
	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// DefaultReportSchedule fires at second zero of every minute.
const DefaultReportSchedule = "0 * * * * *"

// OrderQuotesLister is satisfied by queries.GetAllOrderQuotesQueryHandler.
type OrderQuotesLister interface {
	Handle(ctx context.Context, query queries.GetAllOrderQuotesQuery) ([]queries.OrderQuote, error)
}

// MethodSummary aggregates the orders currently priced with one strategy kind.
type MethodSummary struct {
	Kind          shipping.Kind
	Method        string
	Orders        int
	ShippingTotal decimal.Decimal
	RevenueTotal  decimal.Decimal
}

// ShippingReport is one run of ShippingReportJob.
type ShippingReport struct {
	Orders  int
	Methods []MethodSummary
}

// ShippingReportJob periodically summarizes stored orders by shipping method.
type ShippingReportJob struct {
	lister   OrderQuotesLister
	metrics  *metrics.ShippingMetrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewShippingReportJob creates the report job. An empty schedule falls back
// to DefaultReportSchedule; schedules use the six-field cron format with seconds.
func NewShippingReportJob(
	lister OrderQuotesLister,
	m *metrics.ShippingMetrics,
	schedule string,
	logger *slog.Logger,
) *ShippingReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &ShippingReportJob{
		lister:   lister,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "shipping_report_job"),
	}
}

// Start registers the report on the cron schedule and starts the scheduler.
func (j *ShippingReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Shipping report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipping report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *ShippingReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Shipping report job stopped")
}

// Run builds one report, logs it and refreshes the gauges.
// Every valid kind is present in the result, named, in shipping.Kinds order.
func (j *ShippingReportJob) Run(ctx context.Context) (ShippingReport, error) {
	quotes, err := j.lister.Handle(ctx, queries.NewGetAllOrderQuotesQuery())
	if err != nil {
		return ShippingReport{}, err
	}

	byKind := make(map[shipping.Kind]*MethodSummary, len(shipping.Kinds()))
	report := ShippingReport{Orders: len(quotes)}
	for _, strategy := range shipping.All(decimal.Zero) {
		report.Methods = append(report.Methods, MethodSummary{
			Kind:          strategy.Kind(),
			Method:        strategy.Name(),
			ShippingTotal: decimal.Zero,
			RevenueTotal:  decimal.Zero,
		})
	}
	for i := range report.Methods {
		byKind[report.Methods[i].Kind] = &report.Methods[i]
	}

	for _, q := range quotes {
		summary, ok := byKind[q.Kind]
		if !ok {
			continue
		}
		summary.Orders++
		summary.ShippingTotal = summary.ShippingTotal.Add(q.ShippingCost)
		summary.RevenueTotal = summary.RevenueTotal.Add(q.Total)
	}

	for _, s := range report.Methods {
		j.logger.InfoContext(ctx, "Shipping report",
			"kind", s.Kind.String(),
			"method", s.Method,
			"orders", s.Orders,
			"shipping_total", s.ShippingTotal.StringFixed(2),
			"revenue_total", s.RevenueTotal.StringFixed(2),
		)
		if j.metrics != nil {
			j.metrics.Orders.WithLabelValues(s.Kind.String()).Set(float64(s.Orders))
			j.metrics.ShippingRevenue.WithLabelValues(s.Kind.String()).Set(s.ShippingTotal.InexactFloat64())
		}
	}

	return report, nil
}
