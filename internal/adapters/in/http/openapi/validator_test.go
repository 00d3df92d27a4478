package openapi_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logistics/internal/adapters/in/http/openapi"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := openapi.GetSwagger()

	require.NoError(t, err)
	assert.Equal(t, "Logistics dispatch API", doc.Info.Title)
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders/{orderId}/complete"))
}

type recordingServer struct {
	tracked int
}

func (s *recordingServer) GetVehicles(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}

func (s *recordingServer) CreateVehicle(ctx echo.Context) error {
	return ctx.NoContent(http.StatusCreated)
}

func (s *recordingServer) GetOrders(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}

func (s *recordingServer) PlaceOrder(ctx echo.Context) error {
	return ctx.NoContent(http.StatusCreated)
}

func (s *recordingServer) TrackOrder(ctx echo.Context, orderID int) error {
	s.tracked = orderID
	return ctx.NoContent(http.StatusOK)
}

func (s *recordingServer) CompleteDelivery(ctx echo.Context, _ int) error {
	return ctx.NoContent(http.StatusNoContent)
}

func newValidatedEcho(t *testing.T, server openapi.ServerInterface) *echo.Echo {
	t.Helper()
	doc, err := openapi.GetSwagger()
	require.NoError(t, err)
	validator, err := openapi.RequestValidator(doc)
	require.NoError(t, err)

	e := echo.New()
	e.Use(validator)
	e.GET("/unknown", func(c echo.Context) error { return c.NoContent(http.StatusTeapot) })
	openapi.RegisterHandlers(e, server)
	return e
}

func serve(e *echo.Echo, method, target, body string) int {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequestValidator(t *testing.T) {
	server := &recordingServer{}
	e := newValidatedEcho(t, server)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"valid vehicle", http.MethodPost, "/api/v1/vehicles", `{"number":3}`, http.StatusCreated},
		{"negative vehicle", http.MethodPost, "/api/v1/vehicles", `{"number":-3}`, http.StatusBadRequest},
		{"vehicle without number", http.MethodPost, "/api/v1/vehicles", `{}`, http.StatusBadRequest},
		{"valid order", http.MethodPost, "/api/v1/orders",
			`{"userName":"","city":"","postoffice":0,"items":[{"name":"","price":0.5}]}`, http.StatusCreated},
		{"string price", http.MethodPost, "/api/v1/orders",
			`{"userName":"a","city":"b","postoffice":1,"items":[{"name":"x","price":"1"}]}`, http.StatusBadRequest},
		{"non-integer order id", http.MethodGet, "/api/v1/orders/x", "", http.StatusBadRequest},
		{"negative order id", http.MethodGet, "/api/v1/orders/-1", "", http.StatusBadRequest},
		{"path outside the document", http.MethodGet, "/unknown", "", http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(e, tt.method, tt.target, tt.body))
		})
	}
}

func TestServerInterfaceWrapper_BindsOrderID(t *testing.T) {
	server := &recordingServer{}
	e := newValidatedEcho(t, server)

	require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/api/v1/orders/42", ""))
	assert.Equal(t, 42, server.tracked)
}

func TestServerInterfaceWrapper_RejectsMalformedOrderID(t *testing.T) {
	server := &recordingServer{}
	e := echo.New()
	openapi.RegisterHandlers(e, server)

	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodPost, "/api/v1/orders/abc/complete", ""))
}
