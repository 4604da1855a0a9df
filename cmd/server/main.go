package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ignite/everflow-dashboard/internal/api"
	"github.com/ignite/everflow-dashboard/internal/config"
	"github.com/ignite/everflow-dashboard/internal/everflow"
	"github.com/ignite/everflow-dashboard/internal/pkg/logger"
)

func main() {
	if os.Getenv("LOG_LEVEL") == "debug" {
		logger.SetLevel(logger.DEBUG)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		logger.Error("failed to load config", "path", configPath, "error", err)
		os.Exit(1)
	}

	client := everflow.NewClient(cfg.Everflow)
	if client.HasCredentials() {
		logger.Info("everflow API configured",
			"base_url", cfg.Everflow.BaseURL,
			"api_key", cfg.Everflow.APIKey)
	} else {
		logger.Warn("no everflow API key configured, serving sample data")
	}

	handlers := api.NewHandlers(client, cfg)
	router := api.SetupRoutes(handlers, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.Server.GetHost(), cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	go func() {
		logger.Info("dashboard API listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
