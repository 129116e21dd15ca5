package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hablapp/internal/amqp"
	"hablapp/internal/config"
	applog "hablapp/internal/log"
)

// hablapp-worker consumes the command events the assistant publishes and
// writes them to the structured log as an audit trail.
func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	amqpLog := logger.WithComponent(applog.ComponentAMQP)

	logger.Info("Starting hablapp-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		amqpLog.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		err := amqpClient.ConsumeCommandEvents(ctx, func(msg *amqp.CommandEventMessage) error {
			args := []any{
				applog.FieldIntent, msg.Intent,
				"timestamp", msg.Timestamp.Format(time.RFC3339),
			}
			if tx := msg.Transaction; tx != nil {
				args = append(args,
					"type", tx.Type,
					applog.FieldAmount, tx.Amount,
					applog.FieldCategory, tx.Category,
					"date", tx.Date)
			}
			amqpLog.Info("Command event received", args...)
			return nil
		})
		if err != nil && err != context.Canceled {
			amqpLog.Error("Message consumption failed", applog.FieldError, err)
		}
		cancel()
	}()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	cancel()
	logger.Info("Worker shutdown complete")
}
