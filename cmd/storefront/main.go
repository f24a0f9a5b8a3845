package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/astroshop/gateway"
	"github.com/example/astroshop/pkg/assistant"
	"github.com/example/astroshop/pkg/auth"
	"github.com/example/astroshop/pkg/catalog"
	"github.com/example/astroshop/pkg/checkout"
	"github.com/example/astroshop/pkg/config"
	"github.com/example/astroshop/pkg/discovery"
	"github.com/example/astroshop/pkg/notify"
	"github.com/example/astroshop/pkg/repository"
	"github.com/example/astroshop/pkg/storage"
	"github.com/example/astroshop/pkg/store"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/storefront.yaml", "path to config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := buildLogger(&cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting storefront service",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	ctx := context.Background()

	// Key-value storage backing cart/stock/order state
	var st storage.Storage
	switch cfg.Storage.Backend {
	case "redis":
		redisStorage := storage.NewRedisStorage(&cfg.Redis)
		if err := redisStorage.Ping(ctx); err != nil {
			logger.Warn("Redis connection failed", zap.Error(err))
		} else {
			logger.Info("Redis connected successfully")
		}
		st = redisStorage
	default:
		logger.Info("Using in-memory storage, state will not survive restart")
		st = storage.NewMemoryStorage()
	}
	defer st.Close()

	// Core stores
	cat := catalog.New()
	stock := store.NewStockLedger(st, cat, logger)
	orders := store.NewOrderLedger(st, logger)

	// Seed stock explicitly before serving
	if err := stock.Seed(ctx); err != nil {
		logger.Fatal("Failed to seed stock", zap.Error(err))
	}

	// Notifications
	notifier, err := notify.NewNotifier(logger)
	if err != nil {
		logger.Fatal("Failed to start notifier", zap.Error(err))
	}
	defer notifier.Shutdown()
	stock.SetAlerter(notifier)

	// Checkout orchestrator
	orchestrator := checkout.NewOrchestrator(orders, stock, logger)
	orchestrator.AddRecorder(notifier)

	// Audit trail (optional)
	var audit *repository.AuditTrail
	if cfg.MongoDB.URI != "" {
		audit, err = repository.NewAuditTrail(&cfg.MongoDB, logger)
		if err != nil {
			logger.Warn("Audit trail unavailable", zap.Error(err))
		} else {
			defer audit.Close(ctx)
			orchestrator.AddRecorder(audit)
		}
	}

	// Order archive (optional)
	var archive *repository.OrderArchive
	if cfg.MySQL.Host != "" {
		archive, err = repository.NewOrderArchive(&cfg.MySQL, logger)
		if err != nil {
			logger.Warn("Order archive unavailable", zap.Error(err))
		} else {
			defer archive.Close()
			orchestrator.AddRecorder(archive)
		}
	}

	// Service discovery (optional)
	if len(cfg.Etcd.Endpoints) > 0 {
		registry, err := discovery.NewRegistry(&cfg.Etcd)
		if err != nil {
			logger.Warn("Failed to connect to etcd", zap.Error(err))
		} else {
			defer registry.Close()
			instance := &discovery.ServiceInstance{
				Name: cfg.Server.Name,
				Host: cfg.Server.Host,
				Port: cfg.Server.Port,
			}
			if err := registry.Register(ctx, instance); err != nil {
				logger.Warn("Failed to register service", zap.Error(err))
			} else {
				logger.Info("Service registered in etcd",
					zap.String("name", cfg.Server.Name),
					zap.String("address", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)))
				defer registry.Deregister(ctx, instance)
			}
		}
	}

	// Gateway
	gw := gateway.New(cfg, logger, gateway.Deps{
		Catalog:   cat,
		Storage:   st,
		Stock:     stock,
		Orders:    orders,
		Checkout:  orchestrator,
		Assistant: assistant.NewClient(&cfg.AI, cat, logger),
		Auth:      auth.NewService(&cfg.Admin, st, logger),
		Audit:     audit,
		Archive:   archive,
	})

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := gw.Start(); err != nil {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Service stopped")
}

func buildLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = level
	}
	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if len(cfg.OutputPaths) > 0 {
		zcfg.OutputPaths = cfg.OutputPaths
	}
	return zcfg.Build()
}
