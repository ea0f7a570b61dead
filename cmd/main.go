package main

import (
	"chat-sdk/domain"
	"chat-sdk/infrastructure/rest"
	"chat-sdk/infrastructure/storage"
	"chat-sdk/infrastructure/transport"
	"chat-sdk/internal"
	"chat-sdk/observability"
	"chat-sdk/runtime"
	"chat-sdk/ui"
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the session, its transport and its storage, and blocks until a
// signal arrives or the transport gives up.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Session
	reg := prometheus.NewRegistry()
	console := ui.NewConsole(os.Stdout)
	session := runtime.NewSession(log, runtime.SessionConfig{
		SelfID:     config.UserID,
		ActiveTab:  domain.PrivateChat,
		BufferSize: config.BufferSize,
		Fetch: runtime.FetchPolicy{
			Timeout:    config.FetchTimeout,
			Retries:    config.FetchRetries,
			RetryDelay: config.FetchRetryDelay,
		},
		PublishTimeout:        config.PublishTimeout,
		SinkTimeout:           config.SinkTimeout,
		RestartInterval:       config.RestartInterval,
		MetricInterval:        config.MetricInterval,
		LowCapacityThreshold:  config.LowCapacityThreshold,
		FetchLatencyThreshold: config.FetchLatencyThreshold,
		WarmStart:             config.WarmStart,
	},
		rest.NewDialogClient(log, config.APIEndpoint, config.SessionToken, config.FetchTimeout),
		storage.NewDialogRepository(db, log, config.LimitMessages),
		reg,
		console,
	)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = session.Start(ctx); err != nil {
		return fmt.Errorf("session failed to start: %w", err)
	}
	defer session.Stop()
	console.RenderDialogs(session.Screen().Dialogs())

	errChan := make(chan error, 2)

	// 5. Metrics endpoint
	var metricsServer *http.Server
	if config.MetricsAddr != "" {
		metricsServer = observability.NewMetricsServer(config.MetricsAddr, reg)
		go func() {
			log.Info("Starting metrics server", "address", config.MetricsAddr, "at", time.Now().UTC())
			if err := metricsServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	// 6. Chat transport
	ws := transport.NewWebSocketTransport(log, config.ChatEndpoint, config.SessionToken,
		session.Listener(), transport.ReconnectPolicy{
			Attempts: config.ReconnectAttempts,
			Delay:    config.ReconnectDelay,
		})
	go func() {
		if err := ws.Run(ctx); err != nil && ctx.Err() == nil {
			errChan <- fmt.Errorf("chat transport stopped: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err = <-errChan:
		log.Error("Shutting down on error", "error", err)
	}

	// 8. Final Cleanup
	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}
	log.Info("Program stopped cleanly")
	return err
}
