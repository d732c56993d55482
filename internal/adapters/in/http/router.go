package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the echo instance with all API routes registered.
// Every request gets a UUID request id for log correlation.
func NewRouter(server *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/products", server.AddProduct)
	api.GET("/products/expired", server.GetExpiredProducts)

	api.POST("/locations", server.AddLocation)

	api.POST("/inventory", server.AddInventory)
	api.GET("/inventory", server.GetInventory)
	api.GET("/inventory/report", server.GetInventoryReport)

	api.POST("/orders", server.PlaceOrder)
	api.POST("/orders/:id/fulfill", server.FulfillOrder)
	api.POST("/orders/:id/delivery", server.ScheduleDelivery)

	api.PUT("/deliveries/:id/status", server.UpdateDeliveryStatus)
	api.GET("/deliveries/:id", server.TrackDelivery)

	return e
}
