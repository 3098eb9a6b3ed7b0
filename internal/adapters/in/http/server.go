package http

import (
	"context"
	"log/slog"
	"net/http"

	"shippingcost/internal/core/application/usecases/commands"
	"shippingcost/internal/core/application/usecases/queries"
	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/core/domain/services"
	"shippingcost/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Use case contracts the server depends on. The command and query handlers
// satisfy them through pointers.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	ChangeShippingStrategyHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeShippingStrategyCommand) error
	}

	ApplyCheapestStrategyHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyCheapestStrategyCommand) (services.Quote, error)
	}

	GetOrderQuoteHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuoteQuery) (queries.OrderQuote, error)
	}

	GetAllOrderQuotesHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrderQuotesQuery) ([]queries.OrderQuote, error)
	}

	CompareOrderQuotesHandler interface {
		Handle(ctx context.Context, query queries.CompareOrderQuotesQuery) ([]services.Quote, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder            CreateOrderHandler
	ChangeShippingStrategy ChangeShippingStrategyHandler
	ApplyCheapestStrategy  ApplyCheapestStrategyHandler
	GetOrderQuote          GetOrderQuoteHandler
	GetAllOrderQuotes      GetAllOrderQuotesHandler
	CompareOrderQuotes     CompareOrderQuotesHandler
}

// Server handles HTTP requests and coordinates them with the application use cases.
type Server struct {
	handlers       Handlers
	promoThreshold decimal.Decimal
	metrics        *metrics.ShippingMetrics
	logger         *slog.Logger
}

// NewServer creates a server. promoThreshold is used for promotional strategies
// whose request omits a threshold, and for comparisons. m may be nil.
func NewServer(
	handlers Handlers,
	promoThreshold decimal.Decimal,
	m *metrics.ShippingMetrics,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers:       handlers,
		promoThreshold: promoThreshold,
		metrics:        m,
		logger:         logger.With("component", "http_server"),
	}
}

// Register mounts the API routes under /api/v1.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/strategies", s.GetStrategies)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/strategy", s.ChangeShippingStrategy)
	api.POST("/orders/:id/strategy/cheapest", s.ApplyCheapestStrategy)
	api.GET("/orders/:id/quotes", s.CompareOrderQuotes)
}

// GetStrategies godoc
//
//	@Summary	List the available shipping strategies
//	@Tags		strategies
//	@Produce	json
//	@Success	200	{array}	Strategy
//	@Router		/strategies [get]
func (s *Server) GetStrategies(ctx echo.Context) error {
	all := shipping.All(s.promoThreshold)
	response := make([]Strategy, len(all))
	for i, strategy := range all {
		response[i] = toStrategy(strategy)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder godoc
//
//	@Summary	Create an order with its initial shipping strategy
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		NewOrder	true	"Order"
//	@Success	201		{object}	Order
//	@Failure	400		{object}	Error
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := shipping.ParseKind(newOrder.Strategy.Kind)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		newOrder.ID,
		newOrder.PriceBeforeShipping,
		newOrder.WeightKg,
		newOrder.DistanceKm,
		kind,
		s.thresholdOrDefault(newOrder.Strategy.Threshold),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.handlers.CreateOrder.Handle(reqCtx, cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, cmd.OrderID())
}

// GetOrders godoc
//
//	@Summary	List all orders with their current shipping quote
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		Order
//	@Failure	500	{object}	Error
//	@Router		/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	quotes, err := s.handlers.GetAllOrderQuotes.Handle(ctx.Request().Context(), queries.NewGetAllOrderQuotesQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Order, len(quotes))
	for i, q := range quotes {
		s.countQuote(q.Kind)
		response[i] = toOrder(q)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary	Get an order with its current shipping quote
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	Order
//	@Failure	404	{object}	Error
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	return s.respondWithOrder(ctx, http.StatusOK, ctx.Param("id"))
}

// ChangeShippingStrategy godoc
//
//	@Summary	Replace the shipping strategy of an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string			true	"Order ID"
//	@Param		strategy	body		StrategyRequest	true	"New strategy"
//	@Success	200			{object}	Order
//	@Failure	400			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/orders/{id}/strategy [put]
func (s *Server) ChangeShippingStrategy(ctx echo.Context) error {
	var request StrategyRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := shipping.ParseKind(request.Kind)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orderID := ctx.Param("id")
	cmd, err := commands.NewChangeShippingStrategyCommand(orderID, kind, s.thresholdOrDefault(request.Threshold))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.ChangeShippingStrategy.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	s.countStrategyChange(kind)

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ApplyCheapestStrategy godoc
//
//	@Summary	Switch an order to its cheapest shipping strategy
//	@Tags		orders
//	@Produce	json
//	@Param		id			path		string	true	"Order ID"
//	@Param		threshold	query		string	false	"Promotional threshold"
//	@Success	200			{object}	Quote
//	@Failure	400			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/orders/{id}/strategy/cheapest [post]
func (s *Server) ApplyCheapestStrategy(ctx echo.Context) error {
	threshold, err := s.thresholdParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid threshold")
	}

	cmd, err := commands.NewApplyCheapestStrategyCommand(ctx.Param("id"), threshold)
	if err != nil {
		return s.writeError(ctx, err)
	}

	quote, err := s.handlers.ApplyCheapestStrategy.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	s.countStrategyChange(quote.Kind)

	return ctx.JSON(http.StatusOK, toQuote(quote))
}

// CompareOrderQuotes godoc
//
//	@Summary	Price an order under every strategy, cheapest first
//	@Tags		orders
//	@Produce	json
//	@Param		id			path		string	true	"Order ID"
//	@Param		threshold	query		string	false	"Promotional threshold"
//	@Success	200			{array}		Quote
//	@Failure	400			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/orders/{id}/quotes [get]
func (s *Server) CompareOrderQuotes(ctx echo.Context) error {
	threshold, err := s.thresholdParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid threshold")
	}

	query, err := queries.NewCompareOrderQuotesQuery(ctx.Param("id"), threshold)
	if err != nil {
		return s.writeError(ctx, err)
	}

	quotes, err := s.handlers.CompareOrderQuotes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Quote, len(quotes))
	for i, q := range quotes {
		s.countQuote(q.Kind)
		response[i] = toQuote(q)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID string) error {
	query, err := queries.NewGetOrderQuoteQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	quote, err := s.handlers.GetOrderQuote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	s.countQuote(quote.Kind)

	return ctx.JSON(status, toOrder(quote))
}

func (s *Server) thresholdOrDefault(threshold *decimal.Decimal) decimal.Decimal {
	if threshold == nil {
		return s.promoThreshold
	}
	return *threshold
}

func (s *Server) thresholdParam(ctx echo.Context) (decimal.Decimal, error) {
	raw := ctx.QueryParam("threshold")
	if raw == "" {
		return s.promoThreshold, nil
	}
	return decimal.NewFromString(raw)
}

func (s *Server) countQuote(kind shipping.Kind) {
	if s.metrics != nil {
		s.metrics.Quotes.WithLabelValues(kind.String()).Inc()
	}
}

func (s *Server) countStrategyChange(kind shipping.Kind) {
	if s.metrics != nil {
		s.metrics.StrategyChanges.WithLabelValues(kind.String()).Inc()
	}
}
