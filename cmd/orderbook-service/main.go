package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/bundl-protocol/orderbook-service/internal/config"
	httpapi "github.com/bundl-protocol/orderbook-service/internal/delivery/http"
	"github.com/bundl-protocol/orderbook-service/internal/delivery/http/handlers"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/cache"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/kafka"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/metrics"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/migrate"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/postgres"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/postgres/repository"
	usecase "github.com/bundl-protocol/orderbook-service/internal/usecase/order"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.OrderDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Kafka: outbound lifecycle events, inbound status writes
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)
	sub := kafka.NewDefaultKafkaSubscriber(brokers)

	// Optional redis orderbook cache
	var redisClient *cache.RedisClient
	if cfg.RedisCache.Addr != "" {
		redisClient = cache.NewRedisClient(cfg.RedisCache.Addr)
		defer redisClient.Close()
	}
	cacheTTL := time.Duration(cfg.RedisCache.TTLSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Second
	}

	// Init order repo
	orderRepo := repository.NewDefaultOrderRepository(db)
	// Init metrics
	orderMetrics := metrics.NewOrderMetrics()
	// Init order usecase
	uc := usecase.NewDefaultOrderUsecase(orderRepo, pub, sub, redisClient, cacheTTL, orderMetrics)

	// External fill/expiry status writes
	go uc.StartStatusEventWorker(context.Background())

	orderHandler := handlers.NewOrderHandler(uc)
	router := httpapi.NewRouter(orderHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.OrderbookConfig) {
	var level slog.Level
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
