package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/node42/node42-backend/internal/config"
	"github.com/node42/node42-backend/internal/data/graph"
	apphttp "github.com/node42/node42-backend/internal/http"
	httpH "github.com/node42/node42-backend/internal/http/handlers"
	"github.com/node42/node42-backend/internal/platform/logger"
	"github.com/node42/node42-backend/internal/platform/neo4jdb"
	"github.com/node42/node42-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Neo4j
	log.Info("Connecting to Neo4j...", "uri", cfg.Neo4j.URI)
	client, err := neo4jdb.New(neo4jdb.Config{
		URI:            cfg.Neo4j.URI,
		Username:       cfg.Neo4j.Username,
		Password:       cfg.Neo4j.Password,
		Database:       cfg.Neo4j.Database,
		TimeoutSeconds: cfg.Neo4j.TimeoutSeconds,
		MaxPoolSize:    cfg.Neo4j.MaxPoolSize,
	}, log)
	if err != nil {
		log.Error("Neo4j init failed", "error", err)
		os.Exit(1)
	}
	var reader graph.Reader = client

	// Services
	constraintService := services.NewConstraintService(reader, log)
	jobService := services.NewJobService(reader, log)
	marketService := services.NewMarketService(reader, log)
	catalogService := services.NewCatalogService(reader, cfg.CustomerCommodities, log)
	kanoService := services.NewKanoService(reader, log)
	customerService := services.NewCustomerService()

	// Server
	server := apphttp.NewServer(apphttp.RouterConfig{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,

		ConstraintHandler: httpH.NewConstraintHandler(log, constraintService),
		JobHandler:        httpH.NewJobHandler(log, jobService),
		MarketHandler:     httpH.NewMarketHandler(log, marketService),
		CatalogHandler:    httpH.NewCatalogHandler(log, catalogService),
		KanoHandler:       httpH.NewKanoHandler(log, kanoService),
		CustomerHandler:   httpH.NewCustomerHandler(log, customerService),
		HealthHandler:     httpH.NewHealthHandler(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", "port", cfg.Port)
		errCh <- server.Run(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server failed", "error", err)
		}
	case <-ctx.Done():
		log.Info("Shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("Server shutdown failed", "error", err)
	}
	if err := client.Close(shutdownCtx); err != nil {
		log.Warn("Neo4j close failed", "error", err)
	}
	log.Info("Shutdown complete")
}
