package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/nikolayk812/apnadairy/internal/cart"
	"github.com/nikolayk812/apnadairy/internal/chatbot"
	"github.com/nikolayk812/apnadairy/internal/checkout"
	"github.com/nikolayk812/apnadairy/internal/httpapi"
	"github.com/nikolayk812/apnadairy/internal/metrics"
	"github.com/nikolayk812/apnadairy/internal/notify"
	"github.com/nikolayk812/apnadairy/internal/repository"
	"github.com/nikolayk812/apnadairy/internal/storage"
)

type config struct {
	HTTPAddr    string
	MetricsAddr string
	DatabaseURL string
	CartFile    string
	SeedCatalog bool
}

func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

func readConfig() config {
	cfg := config{
		HTTPAddr:    ":8080",
		MetricsAddr: ":9090",
		CartFile:    "cart.json",
	}
	if v := os.Getenv("APNADAIRY_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("APNADAIRY_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("APNADAIRY_CART_FILE"); v != "" {
		cfg.CartFile = v
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.SeedCatalog = os.Getenv("APNADAIRY_SEED") == "1"
	return cfg
}

func main() {
	setupLogger()
	cfg := readConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"http_addr":    cfg.HTTPAddr,
		"metrics_addr": cfg.MetricsAddr,
	}).Info("starting apnadairy storefront")

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("storefront terminated")
	}

	log.Info("storefront stopped")
}

func run(ctx context.Context, cfg config) error {
	logger := log.WithField("component", "app")

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("repository.EnsureSchema: %w", err)
	}

	products, err := repository.NewProduct(pool)
	if err != nil {
		return fmt.Errorf("repository.NewProduct: %w", err)
	}
	orders, err := repository.NewOrder(pool)
	if err != nil {
		return fmt.Errorf("repository.NewOrder: %w", err)
	}
	sellers, err := repository.NewSeller(pool)
	if err != nil {
		return fmt.Errorf("repository.NewSeller: %w", err)
	}

	if cfg.SeedCatalog {
		if err := seedCatalog(ctx, products, logger); err != nil {
			return fmt.Errorf("seedCatalog: %w", err)
		}
	}

	cartStorage, err := storage.NewFile(cfg.CartFile)
	if err != nil {
		return fmt.Errorf("storage.NewFile: %w", err)
	}

	notifier := notify.NewLogNotifier(log.WithField("component", "notify"))

	cartStore, err := cart.NewStore(cartStorage, notifier, log.WithField("component", "cart"))
	if err != nil {
		return fmt.Errorf("cart.NewStore: %w", err)
	}

	storefrontMetrics := metrics.NewStorefrontMetrics()

	finalizer, err := checkout.NewFinalizer(orders, cartStore, notifier, storefrontMetrics, log.WithField("component", "checkout"))
	if err != nil {
		return fmt.Errorf("checkout.NewFinalizer: %w", err)
	}

	api := httpapi.NewServer(products, orders, sellers, cartStore, finalizer,
		chatbot.NewDefault(), storefrontMetrics, log.WithField("component", "httpapi"))

	apiServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("http api listening")
		errCh <- apiServer.ListenAndServe()
	}()
	go func() {
		logger.WithField("addr", cfg.MetricsAddr).Info("metrics listening")
		errCh <- metricsServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("http api shutdown failed")
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("metrics shutdown failed")
		}
		return ctx.Err()
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
