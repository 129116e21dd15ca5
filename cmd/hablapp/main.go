package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hablapp/internal/amqp"
	"hablapp/internal/classifier"
	"hablapp/internal/config"
	apphttp "hablapp/internal/http"
	applog "hablapp/internal/log"
	"hablapp/internal/services"
	"hablapp/internal/state"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	store := state.New(cfg.DefaultTab)

	// AMQP is optional: without a broker the assistant still works, it just
	// stops emitting transaction events.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			slog.Error("Failed to connect to AMQP, continuing without events",
				applog.FieldError, err)
		} else {
			amqpClient = client
			slog.Info("Connected to AMQP", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	assistant := services.NewAssistant(store, amqpClient)
	defer func() {
		if err := assistant.Close(); err != nil {
			slog.Error("Failed to close assistant", applog.FieldError, err)
		}
	}()

	var interpreter apphttp.Interpreter
	if cfg.ClassifierEnabled() {
		cls, err := classifier.New(context.Background(), cfg.GeminiModel,
			cfg.ClassifierCacheSize, cfg.ClassifierCacheTTL)
		if err != nil {
			slog.Error("Failed to initialize classifier", applog.FieldError, err)
			os.Exit(1)
		}
		interpreter = cls
		slog.Info("Classifier enabled", "model", cfg.GeminiModel)
	} else {
		slog.Info("Classifier disabled, interpret endpoint unavailable")
	}

	srv := apphttp.NewServer(":"+cfg.Port, assistant, interpreter)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	slog.Info("Starting hablapp server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	slog.Info("Server stopped gracefully")
}
