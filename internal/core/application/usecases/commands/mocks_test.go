package commands_test

import (
	"context"
	"errors"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/inventory"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(_ context.Context, _ kernel.ProductID) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockProductRepository) Exists(ctx context.Context, id kernel.ProductID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLocationRepository) Get(_ context.Context, _ kernel.LocationID) (*location.Location, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockLocationRepository) Exists(ctx context.Context, id kernel.LocationID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockLocationRepository) GetAll(_ context.Context) ([]*location.Location, error) {
	return nil, errors.New("not implemented in mock")
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, i *inventory.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}
func (m *MockInventoryRepository) Update(ctx context.Context, i *inventory.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}
func (m *MockInventoryRepository) Get(
	ctx context.Context, productID kernel.ProductID, locationID kernel.LocationID,
) (*inventory.Item, error) {
	args := m.Called(ctx, productID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}
func (m *MockInventoryRepository) GetAll(ctx context.Context) ([]*inventory.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Item), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.DeliveryID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockUoW covers every unit of work combination the handlers use.
// Repository factory calls are only recorded when a test registers them.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}
func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockLocationUoWFactory struct{ mock.Mock }

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}
