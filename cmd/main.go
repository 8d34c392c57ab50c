package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/DesBasito/e-commerce-order-service/internal/client"
	orderhttp "github.com/DesBasito/e-commerce-order-service/internal/http"
	"github.com/DesBasito/e-commerce-order-service/internal/publisher"
	"github.com/DesBasito/e-commerce-order-service/internal/repository"
	"github.com/DesBasito/e-commerce-order-service/internal/service"
	"github.com/DesBasito/e-commerce-order-service/internal/telemetry"
)

const serviceName = "order-service"

type Config struct {
	HTTPPort           string
	CustomerServiceURL string
	ProductServiceURL  string
	PaymentServiceURL  string
	KafkaBrokers       string
	OtelEndpoint       string
	RequestTimeout     time.Duration
	ClientTimeout      time.Duration
	ShutdownTimeout    time.Duration
	DBCredentials      *repository.Credentials
}

func loadConfig() (*Config, error) {
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, errors.New("DB_PORT must be an integer")
	}

	return &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8070"),
		CustomerServiceURL: getEnv("CUSTOMER_SERVICE_URL", "http://localhost:8090"),
		ProductServiceURL:  getEnv("PRODUCT_SERVICE_URL", "http://localhost:8050"),
		PaymentServiceURL:  getEnv("PAYMENT_SERVICE_URL", "http://localhost:8060"),
		KafkaBrokers:       getEnv("KAFKA_BROKERS", "localhost:9092"),
		OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		RequestTimeout:     30 * time.Second,
		ClientTimeout:      10 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		DBCredentials: &repository.Credentials{
			Host:              getEnv("DB_HOST", "localhost"),
			Port:              dbPort,
			User:              getEnv("DB_USER", "postgres"),
			Password:          getEnv("DB_PASSWORD", "postgres"),
			DBName:            getEnv("DB_NAME", "orders"),
			MigrationsDirPath: getEnv("MIGRATIONS_PATH", "./internal/repository/migrations"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	telemetry.InitLogger(serviceName)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	tracerShutdown, err := telemetry.SetupTracer(ctx, serviceName, cfg.OtelEndpoint)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := tracerShutdown(context.Background()); err != nil {
			slog.Error("tracer shutdown failed", "error", err)
		}
	}()

	repo, err := repository.NewRepository(cfg.DBCredentials)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.DBCredentials); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("database migrations completed")

	customerClient := client.NewCustomerClient(cfg.CustomerServiceURL, cfg.ClientTimeout)
	productClient := client.NewProductClient(cfg.ProductServiceURL, cfg.ClientTimeout)
	paymentClient := client.NewPaymentClient(cfg.PaymentServiceURL, cfg.ClientTimeout)

	producer := publisher.NewOrderProducer(cfg.KafkaBrokers)
	defer func() {
		if err := producer.Close(); err != nil {
			slog.Error("failed to close kafka producer", "error", err)
		}
	}()

	orderService := service.NewOrderService(repo, customerClient, productClient, paymentClient, producer)
	orderLineService := service.NewOrderLineService(repo)

	router := orderhttp.NewRouter(
		orderhttp.NewOrderHandler(orderService),
		orderhttp.NewOrderLineHandler(orderLineService),
		cfg.RequestTimeout,
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: otelhttp.NewHandler(router, serviceName),
	}

	go func() {
		slog.Info("order service listening", "port", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down order service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("order service stopped")
}
