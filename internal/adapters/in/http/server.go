package http

import (
	"errors"
	"net/http"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addProductHandler           commands.AddProductCommandHandler
	addLocationHandler          commands.AddLocationCommandHandler
	addInventoryHandler         commands.AddInventoryCommandHandler
	placeOrderHandler           commands.PlaceOrderCommandHandler
	fulfillOrderHandler         commands.FulfillOrderCommandHandler
	scheduleDeliveryHandler     commands.ScheduleDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler

	// Query handlers
	getInventoryHandler       queries.GetInventoryQueryHandler
	getInventoryReportHandler queries.GetInventoryReportQueryHandler
	trackDeliveryHandler      queries.TrackDeliveryQueryHandler
	getExpiredProductsHandler queries.GetExpiredProductsQueryHandler

	metrics *metrics.SupplyChainMetrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addProductHandler commands.AddProductCommandHandler,
	addLocationHandler commands.AddLocationCommandHandler,
	addInventoryHandler commands.AddInventoryCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	fulfillOrderHandler commands.FulfillOrderCommandHandler,
	scheduleDeliveryHandler commands.ScheduleDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
	getInventoryReportHandler queries.GetInventoryReportQueryHandler,
	trackDeliveryHandler queries.TrackDeliveryQueryHandler,
	getExpiredProductsHandler queries.GetExpiredProductsQueryHandler,
	supplyChainMetrics *metrics.SupplyChainMetrics,
) *Server {
	return &Server{
		addProductHandler:           addProductHandler,
		addLocationHandler:          addLocationHandler,
		addInventoryHandler:         addInventoryHandler,
		placeOrderHandler:           placeOrderHandler,
		fulfillOrderHandler:         fulfillOrderHandler,
		scheduleDeliveryHandler:     scheduleDeliveryHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		getInventoryHandler:         getInventoryHandler,
		getInventoryReportHandler:   getInventoryReportHandler,
		trackDeliveryHandler:        trackDeliveryHandler,
		getExpiredProductsHandler:   getExpiredProductsHandler,
		metrics:                     supplyChainMetrics,
	}
}

// AddProduct handles POST /api/v1/products - registers a new product.
func (s *Server) AddProduct(ctx echo.Context) error {
	var newProduct NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.NewProductID(newProduct.ID)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	cmd, err := commands.NewAddProductCommand(productID, newProduct.Name, newProduct.Category, newProduct.Expiry)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.addProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddLocation handles POST /api/v1/locations - registers a new location.
func (s *Server) AddLocation(ctx echo.Context) error {
	var newLocation NewLocation
	if err := ctx.Bind(&newLocation); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	locationID, err := kernel.NewLocationID(newLocation.ID)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	cmd, err := commands.NewAddLocationCommand(locationID, newLocation.Name, newLocation.Type)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if handleErr := s.addLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddInventory handles POST /api/v1/inventory - adds stock at a location.
func (s *Server) AddInventory(ctx echo.Context) error {
	var newInventory NewInventory
	if err := ctx.Bind(&newInventory); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.NewProductID(newInventory.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid inventory data: "+err.Error())
	}
	locationID, err := kernel.NewLocationID(newInventory.LocationID)
	if err != nil {
		return badRequest(ctx, "Invalid inventory data: "+err.Error())
	}

	cmd, err := commands.NewAddInventoryCommand(productID, locationID, newInventory.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid inventory data: "+err.Error())
	}

	if handleErr := s.addInventoryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetInventory handles GET /api/v1/inventory?productId=&locationId=.
func (s *Server) GetInventory(ctx echo.Context) error {
	productID, err := kernel.NewProductID(ctx.QueryParam("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid productId: "+err.Error())
	}
	locationID, err := kernel.NewLocationID(ctx.QueryParam("locationId"))
	if err != nil {
		return badRequest(ctx, "Invalid locationId: "+err.Error())
	}

	query, err := queries.NewGetInventoryQuery(productID, locationID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	stock, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Inventory{
		ProductID:  stock.ProductID.String(),
		LocationID: stock.LocationID.String(),
		Quantity:   stock.Quantity,
	})
}

// GetInventoryReport handles GET /api/v1/inventory/report.
func (s *Server) GetInventoryReport(ctx echo.Context) error {
	report, err := s.getInventoryReportHandler.Handle(ctx.Request().Context(), queries.NewGetInventoryReportQuery())
	if err != nil {
		return internalError(ctx, "Failed to build inventory report")
	}

	response := make([]InventoryReportRow, len(report))
	for i, row := range report {
		response[i] = InventoryReportRow{
			ProductID:    row.ProductID.String(),
			ProductName:  row.ProductName,
			LocationID:   row.LocationID.String(),
			LocationName: row.LocationName,
			Quantity:     row.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetExpiredProducts handles GET /api/v1/products/expired.
// An optional asOf query parameter (RFC 3339) overrides the current time.
func (s *Server) GetExpiredProducts(ctx echo.Context) error {
	asOf := time.Now()
	if raw := ctx.QueryParam("asOf"); raw != "" {
		parsed, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid asOf: "+parseErr.Error())
		}
		asOf = parsed
	}

	query, err := queries.NewGetExpiredProductsQuery(asOf)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	expired, err := s.getExpiredProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve expired products")
	}

	response := make([]ExpiredProduct, len(expired))
	for i, product := range expired {
		response[i] = ExpiredProduct{
			ID:       product.ID.String(),
			Name:     product.Name,
			Category: product.Category,
			Expiry:   product.Expiry,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places a new customer order.
// Line items referencing unknown products are reported back, not rejected.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(newOrder.Items))
	for _, line := range newOrder.Items {
		productID, err := kernel.NewProductID(line.ProductID)
		if err != nil {
			return badRequest(ctx, "Invalid order item: "+err.Error())
		}
		item, err := order.NewItem(productID, line.Quantity)
		if err != nil {
			return badRequest(ctx, "Invalid order item: "+err.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(newOrder.Customer, newOrder.OrderDate, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	s.metrics.RecordOrderPlaced()

	skipped := make([]string, len(result.SkippedProducts))
	for i, productID := range result.SkippedProducts {
		skipped[i] = productID.String()
	}

	return ctx.JSON(http.StatusCreated, OrderPlaced{
		OrderID:         result.OrderID.String(),
		SkippedProducts: skipped,
	})
}

// FulfillOrder handles POST /api/v1/orders/:id/fulfill.
// On insufficient stock the deductions made so far stay committed and the
// response is 409 with the failing product named in the message.
func (s *Server) FulfillOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewFulfillOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	started := time.Now()
	handleErr := s.fulfillOrderHandler.Handle(ctx.Request().Context(), cmd)
	s.metrics.RecordFulfillmentDuration(time.Since(started))

	if handleErr != nil {
		if errors.Is(handleErr, services.ErrInsufficientStock) {
			s.metrics.RecordFulfillmentFailure()
		}
		return commandError(ctx, handleErr)
	}

	s.metrics.RecordOrderFulfilled()
	return ctx.NoContent(http.StatusOK)
}

// ScheduleDelivery handles POST /api/v1/orders/:id/delivery.
func (s *Server) ScheduleDelivery(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var newDelivery NewDelivery
	if err = ctx.Bind(&newDelivery); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewScheduleDeliveryCommand(orderID, newDelivery.DeliveryDate, newDelivery.TrackingID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	deliveryID, err := s.scheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	s.metrics.RecordDeliveryScheduled()

	return ctx.JSON(http.StatusCreated, DeliveryScheduled{DeliveryID: deliveryID.String()})
}

// UpdateDeliveryStatus handles PUT /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.DeliveryIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var update DeliveryStatusUpdate
	if err = ctx.Bind(&update); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, delivery.Status(update.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// TrackDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) TrackDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.DeliveryIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	query, err := queries.NewTrackDeliveryQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	tracking, err := s.trackDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Delivery{
		ID:           tracking.ID.String(),
		OrderID:      tracking.OrderID.String(),
		DeliveryDate: tracking.DeliveryDate,
		TrackingID:   tracking.TrackingID,
		Status:       string(tracking.Status),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
