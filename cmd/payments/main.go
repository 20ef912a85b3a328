package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/kwabena-io/sikaflow/internal/pkg/config"
	"github.com/kwabena-io/sikaflow/internal/pkg/database"
	"github.com/kwabena-io/sikaflow/internal/pkg/health"
	"github.com/kwabena-io/sikaflow/internal/pkg/logger"
	"github.com/kwabena-io/sikaflow/internal/pkg/middleware"
	"github.com/kwabena-io/sikaflow/internal/pkg/nats"
	"github.com/kwabena-io/sikaflow/internal/pkg/server"
	wspkg "github.com/kwabena-io/sikaflow/internal/pkg/websocket"
	"github.com/kwabena-io/sikaflow/services/payments/gateway"
	"github.com/kwabena-io/sikaflow/services/payments/handler"
	"github.com/kwabena-io/sikaflow/services/payments/repository"
	"github.com/kwabena-io/sikaflow/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configPath := "config/payments.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	paymentRepo := repository.NewPaymentRepo(configs, postgresClient.GetDB())

	// Initialize gateways
	paystackGW := gateway.NewPaystackGW(configs.Paystack)
	notifierGW := gateway.NewNotifierGW(natsClient)

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(paymentRepo, paymentRepo, paymentRepo, redisClient, paystackGW, notifierGW, configs)

	// Initialize WebSocket manager for dashboard sessions
	wsManager := wspkg.NewManager(configs.JWT)

	// Initialize handlers
	h := handler.NewHandler(paymentUC, natsClient, wsManager, configs.JWT)

	// Initialize NATS consumers
	if err := h.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", logger.Err(err))
	}
}
