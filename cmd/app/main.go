package main

import (
	"fmt"
	"net/http"
	"os"

	"foodcourt/cmd"
	httpin "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/jobs"
	"foodcourt/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	zapLogger, err := logger.New(configs.AppEnv)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	gormDB := mustConnectDB(configs, zapLogger)
	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	jobManager := jobs.NewJobManager(app.CreateGetActiveOrdersQueryHandler(), zapLogger)
	if err := jobManager.StartAll(); err != nil {
		zapLogger.Fatal("Failed to start background jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(&app, zapLogger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		AppEnv:     goDotEnvVariable("APP_ENV"),
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:  goDotEnvVariable("REDIS_ADDR"),
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

func mustConnectDB(configs cmd.Config, zapLogger *zap.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, zapLogger *zap.Logger, port string) {
	e := echo.New()
	e.Use(httpin.RequestLogger(zapLogger))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateAddItemToCartCommandHandler(),
		app.CreateChangeItemQuantityCommandHandler(),
		app.CreateRemoveCartItemCommandHandler(),
		app.CreateApplyOfferCommandHandler(),
		app.CreateRemoveOfferCommandHandler(),
		app.CreateCheckoutCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateClaimOrderCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateAttachModeratorNoteCommandHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetMenuAvailabilityQueryHandler(),
		app.TrackingStore(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
