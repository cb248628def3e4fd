package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the API. Requests under /api are
// validated against the embedded OpenAPI document before they reach server.
//
// Example:
//
//	e, err := http.NewRouter(server, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	e.Logger.Fatal(e.Start(":8080"))
func NewRouter(server *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, validator, err := loadOpenAPI()
	if err != nil {
		return nil, err
	}
	if err := registerDocs(doc); err != nil {
		return nil, err
	}

	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.DebugContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", requestValidator(validator))
	api.POST("/orders", server.CreateOrder)
	api.GET("/orders/:orderId", server.GetOrder)
	api.POST("/orders/:orderId/transitions", server.TransitionOrder)
	api.GET("/worklists/:tab", server.ListWorklist)
	api.GET("/metrics", server.ComputeMetrics)

	return e, nil
}
