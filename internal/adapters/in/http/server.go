package http

import (
	"errors"
	"log/slog"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
)

// Server handles the HTTP API. It translates requests into commands and
// queries and maps their results back onto JSON.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	listWorklistHandler   queries.ListWorklistQueryHandler
	computeMetricsHandler queries.ComputeMetricsQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listWorklistHandler queries.ListWorklistQueryHandler,
	computeMetricsHandler queries.ComputeMetricsQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		getOrderHandler:        getOrderHandler,
		listWorklistHandler:    listWorklistHandler,
		computeMetricsHandler:  computeMetricsHandler,
		logger:                 logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders - books a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, err.Error())
	}

	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, "Invalid request body")
	}

	cmd, err := newCreateOrderCommand(by, body)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+created.ID().String())
	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderView(created)))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID, by)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, err.Error())
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, err.Error())
	}

	var body Transition
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, "Invalid request body")
	}

	to, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, to, by, body.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var transitionErr *order.TransitionError
		if !errors.As(err, &transitionErr) {
			return s.fail(ctx, err)
		}

		s.logger.InfoContext(ctx.Request().Context(), "Transition rejected",
			"order_id", orderID.String(), "actor_role", by.Role().String(), "error", err)

		switch transitionErr.Kind {
		case order.IllegalTransition, order.TerminalStateViolation:
			if updated != nil && queries.VisibleTo(by, updated) {
				unchanged := toOrder(queries.NewOrderView(updated))
				return ctx.JSON(http.StatusConflict, Error{
					Code:    http.StatusConflict,
					Kind:    transitionErr.Kind.String(),
					Message: err.Error(),
					Order:   &unchanged,
				})
			}
		}
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(updated)))
}

// ListWorklist handles GET /api/v1/worklists/{tab}.
func (s *Server) ListWorklist(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, err.Error())
	}

	var rawTab string
	if err := runtime.BindStyledParameterWithOptions("simple", "tab", ctx.Param("tab"), &rawTab,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true}); err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, err.Error())
	}

	tab, err := services.ParseTab(rawTab)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListWorklistQuery(by, tab)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.listWorklistHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// ComputeMetrics handles GET /api/v1/metrics.
func (s *Server) ComputeMetrics(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, err.Error())
	}

	var weeks *int
	if err := runtime.BindQueryParameter("form", true, false, "weeks", ctx.QueryParams(), &weeks); err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, err.Error())
	}

	var rawRate *string
	if err := runtime.BindQueryParameter("form", true, false, "rate", ctx.QueryParams(), &rawRate); err != nil {
		return writeError(ctx, http.StatusBadRequest, kindInvalidInput, err.Error())
	}

	var rate *kernel.Money
	if rawRate != nil {
		parsed, err := kernel.MoneyFromString(*rawRate)
		if err != nil {
			return s.fail(ctx, err)
		}
		rate = &parsed
	}

	numWeeks := 0
	if weeks != nil {
		numWeeks = *weeks
	}

	query, err := queries.NewComputeMetricsQuery(by, numWeeks, rate)
	if err != nil {
		return s.fail(ctx, err)
	}

	metrics, err := s.computeMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMetrics(metrics))
}

// fail writes the error response for a use case failure. Unexpected errors
// are logged and reported without detail.
func (s *Server) fail(ctx echo.Context, err error) error {
	code, kind := classify(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return writeError(ctx, code, kind, "Internal server error")
	}
	return writeError(ctx, code, kind, err.Error())
}

func newCreateOrderCommand(by actor.Actor, body NewOrder) (commands.CreateOrderCommand, error) {
	number := 0
	if body.Number != nil {
		number = *body.Number
	}

	var customerID kernel.UUID
	if body.CustomerID != nil {
		parsed, err := kernel.UUIDFromString(*body.CustomerID)
		if err != nil {
			return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
		customerID = parsed
	}

	var rawWorkflow string
	if body.Workflow != nil {
		rawWorkflow = *body.Workflow
	}
	workflow, err := order.ParseWorkflow(rawWorkflow)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, raw := range body.Items {
		item, err := order.NewItem(raw.Service, raw.Quantity)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		items = append(items, item)
	}

	var address *kernel.Address
	if body.Address != nil {
		parsed, err := kernel.NewAddress(body.Address.Street, body.Address.City)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		address = &parsed
	}

	return commands.NewCreateOrderCommand(kernel.NewUUID(), number, by, customerID, workflow, price, items, address)
}
