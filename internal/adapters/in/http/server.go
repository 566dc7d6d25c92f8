package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"icecream/internal/core/application/usecases/commands"
	"icecream/internal/core/application/usecases/queries"
	"icecream/internal/core/domain/model/order"
	"icecream/internal/generated/servers"
	"icecream/internal/pkg/errs"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	markOrderDeliveredHandler commands.MarkOrderDeliveredCommandHandler

	// Query handlers
	getAllOrdersHandler         queries.GetAllOrdersQueryHandler
	getOrderByIDHandler         queries.GetOrderByIDQueryHandler
	getByCustomerEmailHandler   queries.GetOrdersByCustomerEmailQueryHandler
	getByCustomerPhoneHandler   queries.GetOrdersByCustomerPhoneQueryHandler
	getByStatusHandler          queries.GetOrdersByStatusQueryHandler
	getRecentOrdersHandler      queries.GetRecentOrdersQueryHandler
	searchByCustomerNameHandler queries.SearchOrdersByCustomerNameQueryHandler
	searchByAddressHandler      queries.SearchOrdersByDeliveryAddressQueryHandler
	getCreatedBetweenHandler    queries.GetOrdersCreatedBetweenQueryHandler
	getStalePendingHandler      queries.GetStalePendingOrdersQueryHandler
	getOrderStatisticsHandler   queries.GetOrderStatisticsQueryHandler

	logger logrus.FieldLogger
}

// Handlers bundles the use cases the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrderStatus  commands.UpdateOrderStatusCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	MarkOrderDelivered commands.MarkOrderDeliveredCommandHandler

	GetAllOrders         queries.GetAllOrdersQueryHandler
	GetOrderByID         queries.GetOrderByIDQueryHandler
	GetByCustomerEmail   queries.GetOrdersByCustomerEmailQueryHandler
	GetByCustomerPhone   queries.GetOrdersByCustomerPhoneQueryHandler
	GetByStatus          queries.GetOrdersByStatusQueryHandler
	GetRecentOrders      queries.GetRecentOrdersQueryHandler
	SearchByCustomerName queries.SearchOrdersByCustomerNameQueryHandler
	SearchByAddress      queries.SearchOrdersByDeliveryAddressQueryHandler
	GetCreatedBetween    queries.GetOrdersCreatedBetweenQueryHandler
	GetStalePending      queries.GetStalePendingOrdersQueryHandler
	GetOrderStatistics   queries.GetOrderStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger logrus.FieldLogger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Server{
		createOrderHandler:          h.CreateOrder,
		updateOrderStatusHandler:    h.UpdateOrderStatus,
		cancelOrderHandler:          h.CancelOrder,
		markOrderDeliveredHandler:   h.MarkOrderDelivered,
		getAllOrdersHandler:         h.GetAllOrders,
		getOrderByIDHandler:         h.GetOrderByID,
		getByCustomerEmailHandler:   h.GetByCustomerEmail,
		getByCustomerPhoneHandler:   h.GetByCustomerPhone,
		getByStatusHandler:          h.GetByStatus,
		getRecentOrdersHandler:      h.GetRecentOrders,
		searchByCustomerNameHandler: h.SearchByCustomerName,
		searchByAddressHandler:      h.SearchByAddress,
		getCreatedBetweenHandler:    h.GetCreatedBetween,
		getStalePendingHandler:      h.GetStalePending,
		getOrderStatisticsHandler:   h.GetOrderStatistics,
		logger:                      logger.WithField("component", "http"),
	}
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	details, err := toDetails(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), commands.NewCreateOrderCommand(details))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// GetOrders handles GET /orders - lists every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderByIDQuery(order.ID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	found, ok, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !ok {
		return s.fail(ctx, errs.NewObjectNotFoundError("order", query.OrderID()))
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// GetOrdersByCustomerEmail handles GET /orders/customer/{email}.
func (s *Server) GetOrdersByCustomerEmail(ctx echo.Context, email string) error {
	query, err := queries.NewGetOrdersByCustomerEmailQuery(email)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.getByCustomerEmailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrdersByCustomerPhone handles GET /orders/phone/{phone}.
func (s *Server) GetOrdersByCustomerPhone(ctx echo.Context, phone string) error {
	query, err := queries.NewGetOrdersByCustomerPhoneQuery(phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.getByCustomerPhoneHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrdersByStatus handles GET /orders/status/{status}.
func (s *Server) GetOrdersByStatus(ctx echo.Context, status string, params servers.GetOrdersByStatusParams) error {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(parsed, params.Since)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.getByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetRecentOrders handles GET /orders/recent - orders from the last 24 hours.
func (s *Server) GetRecentOrders(ctx echo.Context) error {
	orders, err := s.getRecentOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetRecentOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// SearchOrdersByCustomerName handles GET /orders/search?customerName=.
func (s *Server) SearchOrdersByCustomerName(ctx echo.Context, params servers.SearchOrdersByCustomerNameParams) error {
	query := queries.NewSearchOrdersByCustomerNameQuery(params.CustomerName)

	orders, err := s.searchByCustomerNameHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// SearchOrdersByDeliveryAddress handles GET /orders/search/address?address=.
func (s *Server) SearchOrdersByDeliveryAddress(
	ctx echo.Context,
	params servers.SearchOrdersByDeliveryAddressParams,
) error {
	query := queries.NewSearchOrdersByDeliveryAddressQuery(params.Address)

	orders, err := s.searchByAddressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrdersCreatedBetween handles GET /orders/created?from=&to=.
func (s *Server) GetOrdersCreatedBetween(ctx echo.Context, params servers.GetOrdersCreatedBetweenParams) error {
	query, err := queries.NewGetOrdersCreatedBetweenQuery(params.From, params.To)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.getCreatedBetweenHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetStalePendingOrders handles GET /orders/stale?olderThanMinutes=.
func (s *Server) GetStalePendingOrders(ctx echo.Context, params servers.GetStalePendingOrdersParams) error {
	query, err := queries.NewGetStalePendingOrdersQueryFromMinutes(int64(params.OlderThanMinutes))
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.getStalePendingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrderStatistics handles GET /orders/statistics.
func (s *Server) GetOrderStatistics(ctx echo.Context) error {
	stats, err := s.getOrderStatisticsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toStatistics(stats))
}

// UpdateOrderStatus handles PATCH /orders/{id}/status?status=.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id int64, params servers.UpdateOrderStatusParams) error {
	status, err := order.ParseStatus(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(order.ID(id), status)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// CancelOrder handles POST /orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewCancelOrderCommand(order.ID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(cancelled))
}

// MarkOrderDelivered handles POST /orders/{id}/delivered.
func (s *Server) MarkOrderDelivered(ctx echo.Context, id int64) error {
	cmd, err := commands.NewMarkOrderDeliveredCommand(order.ID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	delivered, err := s.markOrderDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(delivered))
}

// fail renders err as servers.Error. Validation and not-found errors are the
// caller's problem and go out verbatim; anything else is logged and hidden.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errs.IsValidation(err):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errs.IsNotFound(err):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		s.logger.WithError(err).
			WithField("route", ctx.Path()).
			Error("request failed")
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: http.StatusText(http.StatusInternalServerError),
		})
	}
}
