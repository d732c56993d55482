package cmd

import (
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	metrics    *metrics.SupplyChainMetrics
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.NewSupplyChainMetrics(),
	}
}

func (c *CompositionRoot) Metrics() *metrics.SupplyChainMetrics {
	return c.metrics
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f)
}

func (c *CompositionRoot) CreateAddLocationCommandHandler() commands.AddLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateAddInventoryCommandHandler() commands.AddInventoryCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddInventoryCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() commands.FulfillOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFulfillOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryReportQueryHandler() queries.GetInventoryReportQueryHandler {
	return queries.NewGetInventoryReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackDeliveryQueryHandler() queries.TrackDeliveryQueryHandler {
	return queries.NewTrackDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExpiredProductsQueryHandler() queries.GetExpiredProductsQueryHandler {
	return queries.NewGetExpiredProductsQueryHandler(c.gormDB)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
