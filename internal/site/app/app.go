// Package app assembles the site core. Every component receives its
// dependencies explicitly from here; there is no ambient global to reach for.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/growthverse/site/internal/site/hooks"
	"github.com/growthverse/site/internal/site/service"
	"github.com/growthverse/site/internal/site/store"
	"github.com/growthverse/site/internal/site/store/drivers/sqlite"
	"github.com/growthverse/site/pkg/jwtx"
	"github.com/growthverse/site/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

const devSessionSecret = "growthverse-dev-session-secret"

// Application holds the wired site core.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db          *sqlite.Store
	collections *store.Collections

	directory *service.Directory
	sessions  *service.SessionManager
	comments  *service.Comments
	contact   *service.Contact

	hooks *hooks.Hooks
}

// New opens storage, applies migrations, wires all services and restores any
// persisted session.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "site-core",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	app.db = db
	app.collections = store.NewCollections(db, cfg.Namespace)

	secret := cfg.SessionSecret
	if secret == "" {
		secret = devSessionSecret
		app.logger.Warn("SITE_SESSION_SECRET not set, using dev default")
	}
	signer := jwtx.NewSigner(secret, cfg.Namespace)

	app.directory = &service.Directory{Store: app.collections, Logger: app.logger}
	app.sessions = service.NewSessionManager(app.directory, app.collections, signer, app.logger)
	app.comments = &service.Comments{Sessions: app.sessions, Store: app.collections, Logger: app.logger}
	app.contact = &service.Contact{Sessions: app.sessions, Store: app.collections, Logger: app.logger}

	app.hooks = &hooks.Hooks{
		Directory: app.directory,
		Sessions:  app.sessions,
		Comments:  app.comments,
		Contact:   app.contact,
	}

	app.sessions.Restore(ctx)

	app.logger.Info("site core ready", "database", cfg.DatabaseFile, "namespace", cfg.Namespace)
	return app, nil
}

// Hooks returns the UI boundary for presentation glue.
func (app *Application) Hooks() *hooks.Hooks { return app.hooks }

// Close releases the underlying storage.
func (app *Application) Close() error {
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing storage", "error", err)
		return err
	}
	return nil
}
