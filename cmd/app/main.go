package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/cmd"
	_ "github.com/mantoshmedhansh-dot/ilms-sub004/docs"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/backorderrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/decisionrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/lanerepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/noderepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/preorderrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/rulerepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/postgres/stockrepo"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/adapters/out/pricing"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// softReservationJanitorInterval is how often expired soft reservations
// are swept out of the in-memory store.
const softReservationJanitorInterval = 30 * time.Second

// @title Allocation and Orchestration Engine API
// @version 1.0
// @description Order orchestration, availability, backorder and preorder management.
// @BasePath /api/v1
func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.SoftReservationStore().StartJanitor(ctx, softReservationJanitorInterval)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		ChannelAwareInventory: goDotEnvVariable("CHANNEL_AWARE_INVENTORY") == "true",
		InventoryFallbackMode: envOrDefault("INVENTORY_FALLBACK_MODE", "SHARED_POOL"),
		CarrierStrategy:       envOrDefault("CARRIER_STRATEGY", "CHEAPEST_FIRST"),
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

func envOrDefault(key string, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	waitForDB(dsn)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

// waitForDB pings the database until it accepts connections, so the service
// survives being started before its postgres container is ready.
func waitForDB(dsn string) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}
	defer db.Close()

	for attempt := 1; attempt <= 10; attempt++ {
		if err = db.Ping(); err == nil {
			return
		}
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	log.Fatalf("Database is not reachable: %v", err)
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&noderepo.NodeDTO{},
		&noderepo.CoverageDTO{},
		&rulerepo.RuleDTO{},
		&stockrepo.StockDTO{},
		&backorderrepo.BackorderDTO{},
		&preorderrepo.PreorderDTO{},
		&decisionrepo.DecisionDTO{},
		&lanerepo.LaneRateDTO{},
		&pricing.RateCardDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
