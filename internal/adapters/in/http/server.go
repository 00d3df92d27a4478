// Package http exposes the dispatch registry over a JSON API served by echo.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"logistics/internal/adapters/in/http/openapi"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements openapi.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	addVehicleHandler       commands.AddVehicleCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	// Query handlers
	trackOrderHandler     queries.TrackOrderQueryHandler
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	addVehicleHandler commands.AddVehicleCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		addVehicleHandler:       addVehicleHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		trackOrderHandler:       trackOrderHandler,
		getAllVehiclesHandler:   getAllVehiclesHandler,
		getAllOrdersHandler:     getAllOrdersHandler,
		logger:                  logger.With("component", "http_server"),
	}
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	vehicles, err := s.getAllVehiclesHandler.Handle(ctx.Request().Context(), queries.NewGetAllVehiclesQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve vehicles")
	}

	response := make([]openapi.Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = openapi.Vehicle{
			Number:    v.Number,
			Available: v.Available,
			OrderId:   v.OrderID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var newVehicle openapi.NewVehicle
	if err := ctx.Bind(&newVehicle); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddVehicleCommand(newVehicle.Number)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid vehicle data: "+err.Error())
	}

	if err = s.addVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to add vehicle")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	response := make([]openapi.Order, len(orders))
	for i, o := range orders {
		items := make([]openapi.Item, len(o.Items))
		for j, item := range o.Items {
			items[j] = openapi.Item{Name: item.Name, Price: item.Price.Decimal()}
		}

		response[i] = openapi.Order{
			OrderId:       o.ID,
			UserName:      o.UserName,
			City:          o.City,
			Postoffice:    o.Postoffice,
			Items:         items,
			Amount:        o.Amount.Decimal(),
			Status:        o.Status,
			VehicleNumber: o.VehicleNumber,
			Summary:       o.Summary,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder openapi.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.OrderLine, len(newOrder.Items))
	for i, item := range newOrder.Items {
		lines[i] = commands.OrderLine{Name: item.Name, Price: item.Price}
	}

	cmd, err := commands.NewPlaceOrderCommand(newOrder.UserName, newOrder.City, newOrder.Postoffice, lines)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, services.ErrNoVehicleAvailable) {
		s.logger.InfoContext(ctx.Request().Context(), "Order rejected", "orderId", orderID)
		return ctx.JSON(http.StatusConflict, openapi.Error{
			Code:    http.StatusConflict,
			Message: "There is no available vehicle to deliver an order.",
			OrderId: &orderID,
		})
	}
	if err != nil {
		return s.fail(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, openapi.OrderCreated{OrderId: orderID})
}

// TrackOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) TrackOrder(ctx echo.Context, orderID int) error {
	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	tracking, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrOrderNotFound) {
		return errorJSON(ctx, http.StatusNotFound, "No such order.")
	}
	if err != nil {
		return s.fail(ctx, err, "Failed to track order")
	}

	return ctx.JSON(http.StatusOK, openapi.Tracking{
		OrderId: tracking.OrderID,
		City:    tracking.City,
		Amount:  tracking.Amount.Decimal(),
	})
}

// CompleteDelivery handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteDelivery(ctx echo.Context, orderID int) error {
	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return errorJSON(ctx, http.StatusNotFound, "No such order.")
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, vehicle.ErrOrderIsNotCarried):
		return errorJSON(ctx, http.StatusConflict, "The order is not being delivered.")
	case err != nil:
		return s.fail(ctx, err, "Failed to complete delivery")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// fail maps application errors that have no endpoint specific meaning.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return errorJSON(ctx, http.StatusBadRequest, message+": "+err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, message)
	}

	s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
	return errorJSON(ctx, http.StatusInternalServerError, message)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, openapi.Error{Code: code, Message: message})
}
