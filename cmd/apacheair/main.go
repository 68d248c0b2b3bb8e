package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apacheair/internal/cli"
	"apacheair/internal/config"
	"apacheair/internal/database"
	"apacheair/internal/domain"
	"apacheair/internal/ledger"
	"apacheair/internal/logging"
	"apacheair/internal/metrics"
	"apacheair/internal/repository"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigPath(), "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}
	logger := baseLogger.With().Str("component", "main").Logger()

	db, err := database.NewDB(cfg.Database.Path, &logger)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.Register()
	if cfg.Monitoring.PrometheusEnabled {
		go serveMetrics(cfg.Monitoring.PrometheusPort, &logger)
	}

	if cfg.Backup.Enabled {
		backupService := database.NewBackupService(cfg.Database.Path, cfg.Backup, &logger)
		go backupService.Start(ctx)
	}

	seatCache := buildSeatCache(cfg.Cache, &logger)

	bookingLedger := ledger.New(db, seatCache, &logger)
	front := cli.New(bookingLedger, db, cfg.Exports.Path, os.Stdin, os.Stdout, &logger)
	return front.Run(ctx)
}

func defaultConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "configs/config.yaml"
}

// buildSeatCache returns nil when caching is disabled; the ledger
// treats a nil cache as "always miss".
func buildSeatCache(cfg config.CacheConfig, logger *zerolog.Logger) domain.SeatCache {
	if !cfg.Enabled {
		return nil
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	memory := repository.NewMemorySeatCache(ttl)
	if cfg.Backend != "redis" {
		return memory
	}

	client := repository.NewRedisClient(cfg.Redis)
	primary := repository.NewRedisSeatCache(client, ttl)
	return repository.NewFailoverSeatCache(primary, memory, logger)
}

func serveMetrics(port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info().Str("addr", addr).Msg("Metrics listener started")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error().Err(err).Msg("Metrics listener error")
	}
}
