package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/mylink/internal/pkg/cache"
	"github.com/piresc/mylink/internal/pkg/config"
	"github.com/piresc/mylink/internal/pkg/database"
	"github.com/piresc/mylink/internal/pkg/events"
	"github.com/piresc/mylink/internal/pkg/health"
	"github.com/piresc/mylink/internal/pkg/logger"
	"github.com/piresc/mylink/internal/pkg/middleware"
	nrpkg "github.com/piresc/mylink/internal/pkg/newrelic"
	"github.com/piresc/mylink/internal/pkg/server"
	"github.com/piresc/mylink/internal/pkg/validator"
	authgateway "github.com/piresc/mylink/services/auth/gateway"
	authhandler "github.com/piresc/mylink/services/auth/handler"
	authhttp "github.com/piresc/mylink/services/auth/handler/http"
	authrepo "github.com/piresc/mylink/services/auth/repository"
	authusecase "github.com/piresc/mylink/services/auth/usecase"
	bizgateway "github.com/piresc/mylink/services/business/gateway"
	bizhandler "github.com/piresc/mylink/services/business/handler"
	bizhttp "github.com/piresc/mylink/services/business/handler/http"
	bizrepo "github.com/piresc/mylink/services/business/repository"
	bizusecase "github.com/piresc/mylink/services/business/usecase"
)

func main() {
	appName := "mylink"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/mylink.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.Migrate(migrateCtx, postgresClient.GetDB())
	cancel()
	if err != nil {
		zapLogger.Fatal("Failed to migrate database", logger.Err(err))
	}

	healthSvc := health.NewService()
	healthSvc.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))

	// Initialize the OTP state store
	var store cache.Store
	var redisClient *database.RedisClient
	switch configs.Cache.Driver {
	case "memory":
		zapLogger.Warn("Using in-process OTP store, state is lost on restart")
		store = cache.NewMemoryStore()
	default:
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		store = cache.NewRedisStore(redisClient.GetClient())
		healthSvc.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	}

	// Initialize event publisher
	publisher, err := events.NewPublisher(configs.Events)
	if err != nil {
		zapLogger.Fatal("Failed to initialize event publisher", logger.Err(err))
	}

	db := postgresClient.GetDB()

	// Initialize repositories
	authRepo := authrepo.NewAuthRepo(configs, db)
	businessRepo := bizrepo.NewBusinessRepo(configs, db)
	siteRepo := bizrepo.NewSiteRepo(db)

	// Initialize gateways
	smsGW := authgateway.NewEskizGW(store, configs.SMS)
	authEventGW := authgateway.NewEventGW(publisher)
	businessEventGW := bizgateway.NewEventGW(publisher)

	// Initialize usecases
	authUC := authusecase.NewAuthUC(authRepo, smsGW, authEventGW, store, configs)
	businessUC := bizusecase.NewBusinessUC(businessRepo, businessEventGW, configs)
	siteUC := bizusecase.NewSiteUC(siteRepo)

	// Initialize handlers
	authRoutes := authhandler.NewHandler(authhttp.NewAuthHandler(authUC), authUC, store, configs)
	businessRoutes := bizhandler.NewHandler(bizhttp.NewBusinessHandler(businessUC), bizhttp.NewSiteHandler(siteUC), authUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthSvc)

	// Register service routes
	authRoutes.RegisterRoutes(e)
	businessRoutes.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(context.Context) error {
		publisher.Close()
		return nil
	})
	if redisClient != nil {
		srv.OnShutdown(func(context.Context) error {
			return redisClient.Close()
		})
	}
	srv.OnShutdown(func(context.Context) error {
		return postgresClient.Close()
	})
	if nrApp != nil {
		srv.OnShutdown(func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}
	srv.OnShutdown(func(context.Context) error {
		return zapLogger.Close()
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
