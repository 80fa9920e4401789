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

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"eight-chat/auth"
	"eight-chat/blob"
	httpserver "eight-chat/infrastructure/http/server"
	"eight-chat/internal"
	"eight-chat/observability"
	"eight-chat/repositories"
	"eight-chat/services"
	"eight-chat/store"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "eight-chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so deferred cleanup always executes.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := internal.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Document store (BadgerDB)
	options := badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	documents := store.NewBadgerStore(db, logger)

	// 3. Blob store (MinIO)
	blobs, err := blob.NewMinioStore(blob.Config{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		UseSSL:    config.MinioUseSSL,
		Bucket:    config.MinioBucket,
	}, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("blob store init failed: %w", err)
	}
	if err := blobs.EnsureBucket(ctx); err != nil {
		return exitRuntime, fmt.Errorf("blob bucket check failed: %w", err)
	}

	// 4. Metrics, repositories, services
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	chatRepository := repositories.NewChatRepository(documents, logger)
	userRepository := repositories.NewUserRepository(documents, logger)

	resolver := services.NewChatResolverService(chatRepository, metrics, logger)
	profiles := services.NewProfileService(userRepository, blobs, metrics, logger)

	tokens := auth.NewTokenManager(config.AuthTokenSecret, config.AuthTokenDuration)

	// 5. Debug endpoints and heartbeat
	if config.DebugPort > 0 {
		internal.StartDebugServer(db, registry, config.DebugPort)
		logger.Info("Debug endpoints available", "port", config.DebugPort)
	}

	heartbeat := observability.NewHeartbeatWorker(logger, config.HeartbeatInterval)
	go func() {
		if err := heartbeat.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("Heartbeat worker stopped", "err", err)
		}
	}()

	// 6. HTTP API
	api := httpserver.New(resolver, profiles, tokens, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: api.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return exitRuntime, fmt.Errorf("http server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return exitOK, nil
}
