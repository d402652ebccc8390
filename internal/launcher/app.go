// Package launcher wires the backend together: options, logging, database,
// migrations, authentication services and the interactive console.
package launcher

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/permadeath/launcher/internal/launcher/auth"
	"github.com/permadeath/launcher/internal/launcher/cli"
	"github.com/permadeath/launcher/internal/launcher/config"
	"github.com/permadeath/launcher/internal/launcher/javasetup"
	"github.com/permadeath/launcher/internal/launcher/options"
	"github.com/permadeath/launcher/internal/launcher/repositories/repomanager"
	"github.com/permadeath/launcher/internal/launcher/secret"
	"github.com/permadeath/launcher/internal/launcher/services"
	"github.com/permadeath/launcher/internal/logging"
)

const launcherDirName = ".permadeath-launcher"

type App struct {
	config       *config.Config
	logger       logging.Logger
	logCloser    io.Closer
	db           *sql.DB
	launcherOpts *options.LauncherOptions
	gameOpts     *options.GameOptions
	java         *javasetup.Setup
	authService  *services.AuthService
	console      *cli.App
}

// NewApp builds the full application: it resolves the launcher directory,
// opens the dated log file, loads (and persists) options, connects to the
// database, applies pending migrations and constructs the service layer.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	dir, err := launcherDir()
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.NewFileLogger(dir)
	if err != nil {
		return nil, fmt.Errorf("log init error: %w", err)
	}

	optRepo := options.NewRepository(dir, logger)
	launcherOpts := optRepo.LoadLauncher(ctx)
	gameOpts := optRepo.LoadGame(ctx)

	// Write the files back so a fresh install gets editable defaults on disk.
	if err := optRepo.SaveLauncher(launcherOpts); err != nil {
		logger.Warn(ctx, "error persisting launcher options", "error", err)
	}
	if err := optRepo.SaveGame(gameOpts); err != nil {
		logger.Warn(ctx, "error persisting game options", "error", err)
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	cache := secret.NewCache(logger)
	sessions := services.NewSessionService(db, rm, cache, logger)
	authService := services.NewAuthService(db, rm, auth.NewHasher(), sessions, cache, logger)

	return &App{
		config:       c,
		logger:       logger,
		logCloser:    logCloser,
		db:           db,
		launcherOpts: launcherOpts,
		gameOpts:     gameOpts,
		java:         javasetup.New(logger, nil),
		authService:  authService,
		console:      cli.NewApp(authService, logger),
	}, nil
}

func launcherDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error resolving config directory: %w", err)
	}
	return filepath.Join(base, launcherDirName), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run verifies the Java runtime requirement and hands control to the
// interactive console. It blocks until the console exits or the process
// receives a termination signal.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting launcher...")

	app.initSignalHandler(cancelFunc)

	if err := app.java.EnsureInstalled(ctx, app.config.JavaVersion); err != nil {
		// The console still works without a JVM; the game will not launch.
		app.logger.Warn(ctx, "java runtime unavailable", "required", app.config.JavaVersion, "error", err)
	}

	app.console.Run(ctx)

	app.Close(ctx)
}

// Close releases the database connection and the log file.
func (app *App) Close(ctx context.Context) {
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err)
	}
	if app.logCloser != nil {
		_ = app.logCloser.Close()
	}
}
