package cmd

import (
	"log/slog"

	httpin "shippingcost/internal/adapters/in/http"
	"shippingcost/internal/adapters/out/postgres"
	"shippingcost/internal/core/application/usecases/commands"
	"shippingcost/internal/core/application/usecases/queries"
	"shippingcost/internal/jobs"
	"shippingcost/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeShippingStrategyCommandHandler() commands.ChangeShippingStrategyCommandHandler {
	return commands.NewChangeShippingStrategyCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApplyCheapestStrategyCommandHandler() commands.ApplyCheapestStrategyCommandHandler {
	return commands.NewApplyCheapestStrategyCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQuoteQueryHandler() queries.GetOrderQuoteQueryHandler {
	return queries.NewGetOrderQuoteQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetAllOrderQuotesQueryHandler() queries.GetAllOrderQuotesQueryHandler {
	return queries.NewGetAllOrderQuotesQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateCompareOrderQuotesQueryHandler() queries.CompareOrderQuotesQueryHandler {
	return queries.NewCompareOrderQuotesQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateHTTPServer(m *metrics.ShippingMetrics, logger *slog.Logger) *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	changeStrategy := c.CreateChangeShippingStrategyCommandHandler()
	applyCheapest := c.CreateApplyCheapestStrategyCommandHandler()
	getOrderQuote := c.CreateGetOrderQuoteQueryHandler()
	getAllOrderQuotes := c.CreateGetAllOrderQuotesQueryHandler()
	compareOrderQuotes := c.CreateCompareOrderQuotesQueryHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateOrder:            &createOrder,
		ChangeShippingStrategy: &changeStrategy,
		ApplyCheapestStrategy:  &applyCheapest,
		GetOrderQuote:          getOrderQuote,
		GetAllOrderQuotes:      getAllOrderQuotes,
		CompareOrderQuotes:     compareOrderQuotes,
	}, c.configs.PromoThreshold, m, logger)
}

func (c *CompositionRoot) CreateJobManager(m *metrics.ShippingMetrics, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetAllOrderQuotesQueryHandler(), m, c.configs.ReportSchedule, logger)
}

// orderReader reads outside any transaction.
func (c *CompositionRoot) orderReader() queries.OrderReader {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
