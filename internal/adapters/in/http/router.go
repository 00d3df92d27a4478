package http

import (
	"log/slog"
	"net/http"

	"logistics/internal/adapters/in/http/openapi"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance with the API, health, metrics and Swagger UI
// routes. API requests are validated against the embedded OpenAPI document before they
// reach the server.
func NewRouter(server openapi.ServerInterface, gatherer prometheus.Gatherer, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := openapi.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := openapi.RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	if err = openapi.RegisterSwaggerDoc(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger.With("component", "http"))))
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	openapi.RegisterHandlers(e, server)

	return e, nil
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogRequestID: true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("request_id", v.RequestID),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}
}
