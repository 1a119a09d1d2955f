package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"

	"task-lab/infrastructure/httpapi"
	"task-lab/internal"
	"task-lab/repositories"
	"task-lab/services"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// defaultCredentials is the static login catalog. There is no registration
// path; changing the team means changing this map.
var defaultCredentials = map[string]string{
	"Juanito": "carrito123",
	"Alfonso": "blackmonkey",
	"Ximena":  "OliviaRodrigo4life",
	"Jessy":   "Labubu",
	"Andres":  "4detrompo",
}

func main() {
	// Thin wrapper: call run() and translate its outcome to an exit code,
	// so deferred cleanup always executes before the process exits.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugInspectPort, endpoint))
		database.StartDebugServer(db, config.DebugInspectPort, endpoint, BoardMapper)
	}

	// 3. Repositories & Services
	store := repositories.NewBadgerStore(db, logger)
	areaRepository := repositories.NewAreaRepository(store, logger)
	subpointRepository := repositories.NewSubPointRepository(store, logger)
	commentRepository := repositories.NewCommentRepository(store, logger)
	userRepository := repositories.NewUserRepository(store, logger)

	secret := []byte(config.AuthSecret)
	authService := services.NewAuthService(userRepository, secret, config.AuthTokenDuration)
	areaService := services.NewAreaService(logger, areaRepository, subpointRepository, commentRepository)
	taskService := services.NewTaskService(logger, areaRepository, subpointRepository)
	commentService := services.NewCommentService(logger, areaRepository, commentRepository)

	// 4. Seed the fixed catalogs (idempotent on every start)
	if err := areaService.Init(); err != nil {
		return exitRuntime, fmt.Errorf("area catalog init failed: %w", err)
	}
	if err := authService.SeedCatalog(defaultCredentials); err != nil {
		return exitRuntime, fmt.Errorf("credential seed failed: %w", err)
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. HTTP Server
	api := httpapi.NewServer(logger, secret, authService, areaService, taskService, commentService)
	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", config.Port),
		Handler: api.Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "address", srv.Addr, "at", time.Now().UTC())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Graceful Shutdown
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown error: %w", err)
	}
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
