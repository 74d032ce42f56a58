package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/xvierd/botui/internal/adapters/notification"
	"github.com/xvierd/botui/internal/adapters/splash"
	"github.com/xvierd/botui/internal/config"
	"github.com/xvierd/botui/internal/logging"
	"github.com/xvierd/botui/internal/ports"
)

// appDeps groups all dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	logger   zerolog.Logger
	logFile  io.Closer
	notifier *notification.Notifier
	splash   ports.SplashPlayer
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads the configuration and sets up logging and adapters.
func initializeServices() error {
	app = appDeps{}

	cfg, loadErr := config.Load(configPath)
	if loadErr != nil {
		// If config loading fails, use defaults
		cfg = config.DefaultConfig()
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if noSplash {
		cfg.Splash.Enabled = false
	}
	app.config = cfg

	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		// The terminal belongs to the kiosk, so run without logs.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger = zerolog.Nop()
	}
	app.logger = logger
	app.logFile = closer

	if loadErr != nil {
		app.logger.Warn().Err(loadErr).Msg("failed to load config, using defaults")
	}

	app.notifier = notification.New(&cfg.Notifications)

	if cfg.Splash.Enabled {
		app.splash = splash.New(cfg.Splash.Path, time.Duration(cfg.Splash.FrameInterval))
	}

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.logFile != nil {
		err := app.logFile.Close()
		app.logFile = nil
		return err
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
