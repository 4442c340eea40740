package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"parcelmatch/cmd"
	httpserver "parcelmatch/internal/adapters/in/http"
	"parcelmatch/internal/adapters/out/geocode"
	"parcelmatch/internal/adapters/out/postgres/addressrepo"
	"parcelmatch/internal/adapters/out/postgres/courierrepo"
	"parcelmatch/internal/adapters/out/postgres/deliveryrepo"
	"parcelmatch/internal/adapters/out/postgres/parcelrepo"
	"parcelmatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	geocoder, err := geocode.NewClient(configs.GeocoderBaseURL, configs.GeocoderAPIKey)
	if err != nil {
		log.Fatalf("Error creating geocoder client: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, geocoder, logger)

	jobManager := jobs.NewJobManager(
		app.CreateBackfillCoordinatesCommandHandler(),
		getBackfillBatchSize(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		GeocoderBaseURL:   goDotEnvVariable("GEOCODER_BASE_URL"),
		GeocoderAPIKey:    goDotEnvVariable("GEOCODER_API_KEY"),
		BackfillBatchSize: goDotEnvVariable("BACKFILL_BATCH_SIZE"),
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

func getBackfillBatchSize(configs cmd.Config) int {
	size, err := strconv.Atoi(configs.BackfillBatchSize)
	if err != nil {
		log.Fatalf("Error parsing BACKFILL_BATCH_SIZE: %v", err)
	}
	return size
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&addressrepo.AddressDTO{},
		&addressrepo.PostalCodeDTO{},
		&courierrepo.CourierDTO{},
		&parcelrepo.ParcelDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateOnboardCourierCommandHandler(),
		app.CreateSetRouteCommandHandler(),
		app.CreateSetAvailabilityCommandHandler(),
		app.CreateUpdateLocationCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateSearchParcelsCommandHandler(),
		app.CreateAssignDeliveryCommandHandler(),
		app.CreateAdvanceDeliveryCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateTrackParcelQueryHandler(),
		app.CreateGetDeliveryHistoryQueryHandler(),
		app.CreateGetPendingParcelsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
