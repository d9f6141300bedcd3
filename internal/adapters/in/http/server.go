// Package http exposes the delivery lifecycle over a JSON REST API.
// It coordinates between HTTP handlers and application use cases: commands
// mutate state, then the matching query handler produces the response view.
package http

import (
	"errors"
	"net/http"

	"deliverytrack/internal/core/application/usecases/commands"
	"deliverytrack/internal/core/application/usecases/queries"
	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the REST endpoints.
type Server struct {
	// Command handlers
	createDeliveryHandler   commands.CreateDeliveryCommandHandler
	assignDriverHandler     commands.AssignDriverCommandHandler
	pickUpDeliveryHandler   commands.PickUpDeliveryCommandHandler
	startTransitHandler     commands.StartTransitCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	cancelDeliveryHandler   commands.CancelDeliveryCommandHandler

	// Query handlers
	getDeliveryByIDHandler      queries.GetDeliveryByIDQueryHandler
	getDeliveryByOrderIDHandler queries.GetDeliveryByOrderIDQueryHandler
	getDeliveriesByDriver       queries.GetDeliveriesByDriverQueryHandler
	getDeliveriesByStatus       queries.GetDeliveriesByStatusQueryHandler
	getAllDeliveriesHandler     queries.GetAllDeliveriesQueryHandler
}

// NewServer creates an HTTP server wired to the given handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	pickUpDeliveryHandler commands.PickUpDeliveryCommandHandler,
	startTransitHandler commands.StartTransitCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	getDeliveryByIDHandler queries.GetDeliveryByIDQueryHandler,
	getDeliveryByOrderIDHandler queries.GetDeliveryByOrderIDQueryHandler,
	getDeliveriesByDriver queries.GetDeliveriesByDriverQueryHandler,
	getDeliveriesByStatus queries.GetDeliveriesByStatusQueryHandler,
	getAllDeliveriesHandler queries.GetAllDeliveriesQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:       createDeliveryHandler,
		assignDriverHandler:         assignDriverHandler,
		pickUpDeliveryHandler:       pickUpDeliveryHandler,
		startTransitHandler:         startTransitHandler,
		completeDeliveryHandler:     completeDeliveryHandler,
		cancelDeliveryHandler:       cancelDeliveryHandler,
		getDeliveryByIDHandler:      getDeliveryByIDHandler,
		getDeliveryByOrderIDHandler: getDeliveryByOrderIDHandler,
		getDeliveriesByDriver:       getDeliveriesByDriver,
		getDeliveriesByStatus:       getDeliveriesByStatus,
		getAllDeliveriesHandler:     getAllDeliveriesHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries", s.GetAllDeliveries)
	api.GET("/deliveries/:id", s.GetDelivery)
	api.GET("/deliveries/order/:orderId", s.GetDeliveryByOrder)
	api.GET("/deliveries/driver/:driverId", s.GetDeliveriesByDriver)
	api.GET("/deliveries/status/:status", s.GetDeliveriesByStatus)
	api.PUT("/deliveries/:id/assign", s.AssignDriver)
	api.PUT("/deliveries/:id/pickup", s.PickUpDelivery)
	api.PUT("/deliveries/:id/transit", s.StartTransit)
	api.PUT("/deliveries/:id/deliver", s.CompleteDelivery)
	api.PUT("/deliveries/:id/cancel", s.CancelDelivery)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var driverID *kernel.UUID
	if req.DriverID != nil {
		id, idErr := kernel.UUIDFromString(*req.DriverID)
		if idErr != nil {
			return badRequest(ctx, "Invalid driver ID: "+idErr.Error())
		}
		driverID = &id
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		orderID, driverID, req.RestaurantAddress, req.CustomerAddress, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	deliveryID, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithDelivery(ctx, deliveryID, http.StatusCreated)
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	return s.respondWithDelivery(ctx, deliveryID, http.StatusOK)
}

// GetDeliveryByOrder handles GET /api/v1/deliveries/order/:orderId.
func (s *Server) GetDeliveryByOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetDeliveryByOrderIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getDeliveryByOrderIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryView(response))
}

// GetDeliveriesByDriver handles GET /api/v1/deliveries/driver/:driverId.
// With ?active=true the listing is narrowed to in-transit deliveries.
func (s *Server) GetDeliveriesByDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	var query queries.GetDeliveriesByDriverQuery
	if ctx.QueryParam("active") == "true" {
		query, err = queries.NewGetActiveDeliveriesByDriverQuery(driverID)
	} else {
		query, err = queries.NewGetDeliveriesByDriverQuery(driverID)
	}
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	responses, err := s.getDeliveriesByDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryViews(responses))
}

// GetDeliveriesByStatus handles GET /api/v1/deliveries/status/:status.
func (s *Server) GetDeliveriesByStatus(ctx echo.Context) error {
	status, err := delivery.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "Unknown status: "+ctx.Param("status"))
	}

	query, err := queries.NewGetDeliveriesByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	responses, err := s.getDeliveriesByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryViews(responses))
}

// GetAllDeliveries handles GET /api/v1/deliveries.
func (s *Server) GetAllDeliveries(ctx echo.Context) error {
	query := queries.NewGetAllDeliveriesQuery()

	responses, err := s.getAllDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryViews(responses))
}

// AssignDriver handles PUT /api/v1/deliveries/:id/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver ID: "+err.Error())
	}

	cmd, err := commands.NewAssignDriverCommand(deliveryID, driverID, req.DriverName)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithDelivery(ctx, deliveryID, http.StatusOK)
}

// PickUpDelivery handles PUT /api/v1/deliveries/:id/pickup.
func (s *Server) PickUpDelivery(ctx echo.Context) error {
	return s.transition(ctx, func(deliveryID kernel.UUID) error {
		cmd, err := commands.NewPickUpDeliveryCommand(deliveryID)
		if err != nil {
			return err
		}
		return s.pickUpDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// StartTransit handles PUT /api/v1/deliveries/:id/transit.
func (s *Server) StartTransit(ctx echo.Context) error {
	return s.transition(ctx, func(deliveryID kernel.UUID) error {
		cmd, err := commands.NewStartTransitCommand(deliveryID)
		if err != nil {
			return err
		}
		return s.startTransitHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteDelivery handles PUT /api/v1/deliveries/:id/deliver.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	return s.transition(ctx, func(deliveryID kernel.UUID) error {
		cmd, err := commands.NewCompleteDeliveryCommand(deliveryID)
		if err != nil {
			return err
		}
		return s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelDelivery handles PUT /api/v1/deliveries/:id/cancel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	var req CancelDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithDelivery(ctx, deliveryID, http.StatusOK)
}

// transition runs a bodyless lifecycle command and responds with the
// resulting delivery view.
func (s *Server) transition(ctx echo.Context, run func(kernel.UUID) error) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	if err = run(deliveryID); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithDelivery(ctx, deliveryID, http.StatusOK)
}

func (s *Server) respondWithDelivery(ctx echo.Context, deliveryID kernel.UUID, status int) error {
	query, err := queries.NewGetDeliveryByIDQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getDeliveryByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(status, toDeliveryView(response))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors to HTTP statuses: unknown records to
// 404, duplicates, illegal transitions and lost updates to 409, everything
// else to 500.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, delivery.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
