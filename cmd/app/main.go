package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shippingcost/cmd"
	httpin "shippingcost/internal/adapters/in/http"
	"shippingcost/internal/adapters/out/postgres"
	"shippingcost/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultPromoThreshold = "300"

//	@title			Shipping cost API
//	@version		1.0
//	@description	Orders priced by runtime-swappable shipping strategies.
//	@BasePath		/api/v1
func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	shippingMetrics := metrics.NewShippingMetrics(registry)

	jobManager := app.CreateJobManager(shippingMetrics, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, shippingMetrics, metrics.NewServerMetrics(registry), registry, logger)
}

func getConfigs() cmd.Config {
	// a missing .env is fine, the environment may already be populated
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	promoThreshold, err := decimal.NewFromString(envOrDefault("PROMO_THRESHOLD", defaultPromoThreshold))
	if err != nil {
		log.Fatalf("Invalid PROMO_THRESHOLD: %v", err)
	}

	return cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		PromoThreshold: promoThreshold,
		ReportSchedule: os.Getenv("REPORT_SCHEDULE"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startWebServer(
	app cmd.CompositionRoot,
	port string,
	shippingMetrics *metrics.ShippingMetrics,
	serverMetrics *metrics.ServerMetrics,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) {
	e := httpin.NewRouter(app.CreateHTTPServer(shippingMetrics, logger), serverMetrics, gatherer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
