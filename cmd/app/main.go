package main

import (
	"fmt"
	"log/slog"
	"os"

	"supplychain/cmd"
	httpin "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/postgres/deliveryrepo"
	"supplychain/internal/adapters/out/postgres/inventoryrepo"
	"supplychain/internal/adapters/out/postgres/locationrepo"
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/productrepo"
	"supplychain/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetInventoryReportQueryHandler(),
		app.CreateGetExpiredProductsQueryHandler(),
		configs.ReportCronSpec,
		configs.ExpiryCronSpec,
		logger,
		app.Metrics(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		ReportCronSpec: goDotEnvVariable("REPORT_CRON_SPEC"),
		ExpiryCronSpec: goDotEnvVariable("EXPIRY_CRON_SPEC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&locationrepo.LocationDTO{},
		&inventoryrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateAddProductCommandHandler(),
		app.CreateAddLocationCommandHandler(),
		app.CreateAddInventoryCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateFulfillOrderCommandHandler(),
		app.CreateScheduleDeliveryCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateGetInventoryQueryHandler(),
		app.CreateGetInventoryReportQueryHandler(),
		app.CreateTrackDeliveryQueryHandler(),
		app.CreateGetExpiredProductsQueryHandler(),
		app.Metrics(),
	)

	e := httpin.NewRouter(server)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
