package main

import (
	"os"

	"github.com/ageumenezesDev19/DesPensa/internal/api"
	"github.com/ageumenezesDev19/DesPensa/internal/application/service"
	"github.com/ageumenezesDev19/DesPensa/internal/domain/matcher"
	"github.com/ageumenezesDev19/DesPensa/internal/infrastructure/config"
	"github.com/ageumenezesDev19/DesPensa/internal/infrastructure/logging"
	"github.com/ageumenezesDev19/DesPensa/internal/infrastructure/storage"
)

func main() {
	cfg := config.LoadOrEnv()
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "api")

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to open storage", "path", cfg.Storage.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	matcherConfig := matcher.Config{
		Tolerance:         cfg.Search.Tolerance,
		MaxItems:          cfg.Search.MaxItems,
		MaxExhaustivePool: cfg.Search.MaxExhaustivePool,
	}
	svc := service.NewService(store, matcherConfig, logger)

	server := api.NewServer(api.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, svc, logger)

	if err := server.Start(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
