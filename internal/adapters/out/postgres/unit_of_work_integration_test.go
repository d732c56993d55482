package postgres_test

import (
	"context"
	"testing"
	"time"

	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/adapters/out/postgres/deliveryrepo"
	"supplychain/internal/adapters/out/postgres/inventoryrepo"
	"supplychain/internal/adapters/out/postgres/locationrepo"
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/productrepo"
	"supplychain/internal/core/domain/model/inventory"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// five repositories sharing one unit of work.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&productrepo.ProductDTO{},
		&locationrepo.LocationDTO{},
		&inventoryrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&deliveryrepo.DeliveryDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	for _, table := range []string{"order_items", "orders", "inventory_items", "deliveries", "products", "locations"} {
		suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	productID, _ := kernel.NewProductID("P1")
	p, err := product.NewProduct(productID, "Whole Milk", "Dairy", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))

	orderID, _ := kernel.NewOrderID(1)
	o, err := order.NewOrder(orderID, "Alice", time.Time{})
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(productID, 5))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Commit(ctx))

	// Visible through a fresh unit of work.
	check := suite.factory.Create()
	loaded, err := check.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal("Alice", loaded.Customer())

	exists, err := check.ProductRepository().Exists(ctx, productID)
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	productID, _ := kernel.NewProductID("P1")
	locationID, _ := kernel.NewLocationID("L1")
	item, err := inventory.NewItem(productID, locationID, 50)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.InventoryRepository().Add(ctx, item))

	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	items, err := check.InventoryRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	err := uow.Rollback(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
