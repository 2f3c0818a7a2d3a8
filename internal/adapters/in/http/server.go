// Package http contains the inbound HTTP adapter.
// It translates echo requests into commands and queries and maps use case
// errors onto the response envelope.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"orders/internal/auth"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler

	verifier auth.Verifier
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	verifier auth.Verifier,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateStatusHandler: updateStatusHandler,
		cancelOrderHandler:  cancelOrderHandler,
		listOrdersHandler:   listOrdersHandler,
		getOrderHandler:     getOrderHandler,
		verifier:            verifier,
		logger:              logger.With("component", "http"),
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
// Every /v1/orders route sits behind the auth middleware; /health does not.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.RequestID())

	e.GET("/health", s.Health)

	orders := e.Group("/v1/orders", AuthMiddleware(s.verifier, s.logger))
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)
	orders.DELETE("/:id", s.CancelOrder)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}

// CreateOrder handles POST /v1/orders - places a new order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, CodeValidationError, "Invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, itemErr := order.NewItem(itemReq.Name, itemReq.Quantity, itemReq.Price)
		if itemErr != nil {
			return respondError(ctx, s.logger, itemErr)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), claims.UserID(), items)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    orderResponseFromDomain(created),
	})
}

// GetOrder handles GET /v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, claims)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    orderResponseFromReadModel(model),
	})
}

// ListOrders handles GET /v1/orders - lists the caller's orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	// Unparseable numbers become zero and fall back to the defaults.
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	query, err := queries.NewListOrdersQuery(
		claims,
		page,
		limit,
		ctx.QueryParam("sortBy"),
		ctx.QueryParam("sortOrder"),
		ctx.QueryParam("status"),
	)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	orders := make([]OrderResponse, 0, len(result.Orders))
	for _, model := range result.Orders {
		orders = append(orders, orderResponseFromReadModel(model))
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Success: true,
		Data: ListOrdersResponse{
			Orders: orders,
			Pagination: PaginationResponse{
				Page:  result.Pagination.Page,
				Limit: result.Pagination.Limit,
				Total: result.Pagination.Total,
				Pages: result.Pagination.Pages,
			},
		},
	})
}

// UpdateOrderStatus handles PATCH /v1/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, CodeValidationError, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, claims, newStatus)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    orderResponseFromDomain(updated),
	})
}

// CancelOrder handles DELETE /v1/orders/:id - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, claims)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Success: true,
		Data: CancelOrderResponse{
			Message: "Order cancelled successfully",
			Status:  cancelled.Status().String(),
		},
	})
}

// orderIDParam parses the :id path parameter.
func (s *Server) orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return orderID, nil
}
