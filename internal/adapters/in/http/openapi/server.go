// Package openapi holds the HTTP contract of the dispatch API: the embedded OpenAPI
// document, its request and response types, the server interface with its echo
// routing wrapper and the request validation middleware.
package openapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// GetVehicles lists the fleet in selection order.
	// (GET /api/v1/vehicles)
	GetVehicles(ctx echo.Context) error
	// CreateVehicle adds an available vehicle at the end of the fleet.
	// (POST /api/v1/vehicles)
	CreateVehicle(ctx echo.Context) error
	// GetOrders lists placed orders.
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context) error
	// PlaceOrder places an order on the first available vehicle.
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// TrackOrder tracks an order.
	// (GET /api/v1/orders/{orderId})
	TrackOrder(ctx echo.Context, orderId int) error
	// CompleteDelivery completes the delivery and releases the vehicle.
	// (POST /api/v1/orders/{orderId}/complete)
	CompleteDelivery(ctx echo.Context, orderId int) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetVehicles(ctx echo.Context) error {
	return w.Handler.GetVehicles(ctx)
}

func (w *ServerInterfaceWrapper) CreateVehicle(ctx echo.Context) error {
	return w.Handler.CreateVehicle(ctx)
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) TrackOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.TrackOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CompleteDelivery(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompleteDelivery(ctx, orderID)
}

func bindOrderID(ctx echo.Context) (int, error) {
	var orderID int
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderID, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/vehicles", wrapper.GetVehicles)
	router.POST(baseURL+"/api/v1/vehicles", wrapper.CreateVehicle)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.TrackOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/complete", wrapper.CompleteDelivery)
}
