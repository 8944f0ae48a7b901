// Package app holds the application context shared by the commands:
// configuration, logger, database pool and optional Redis and broker
// clients. Everything that needs a collaborator gets it from here.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/monitoring"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/router"
	"github.com/iliyamo/fyyur/internal/service"
)

var (
	_ service.VenueStore  = (*repository.VenueRepo)(nil)
	_ service.ArtistStore = (*repository.ArtistRepo)(nil)
	_ service.ShowStore   = (*repository.ShowRepo)(nil)
)

// App is the explicit application context.
type App struct {
	Log       *slog.Logger
	DB        *sql.DB
	Redis     *redis.Client          // nil disables rate limiting
	Events    service.EventPublisher // nil disables event publishing
	RateLimit config.RateLimitConfig
	Now       func() time.Time
}

// OpenDB opens the database selected by cfg and returns it with its
// migration dialect.
func OpenDB(cfg config.Config) (*sql.DB, string, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		return db, database.SQLite, err
	case config.DriverMySQL:
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return db, database.MySQL, err
	}
	return nil, "", fmt.Errorf("unsupported driver %q", cfg.DBDriver)
}

// Migrate applies pending migrations and logs each applied version.
func (a *App) Migrate(ctx context.Context, dialect string) error {
	applied, err := database.Migrate(ctx, a.DB, dialect)
	if err != nil {
		return err
	}
	for _, v := range applied {
		a.Log.Info("migration applied", "version", v)
	}
	if len(applied) == 0 {
		a.Log.Info("schema up to date")
	}
	return nil
}

// Echo builds the HTTP server with every route registered.
func (a *App) Echo() *echo.Echo {
	opts := service.Options{Log: a.Log, Events: a.Events, Now: a.Now}
	venues := repository.NewVenueRepo(a.DB)
	artists := repository.NewArtistRepo(a.DB)
	shows := repository.NewShowRepo(a.DB)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(a.Log)
	e.Use(
		echomw.RequestID(),
		monitoring.Middleware(),
		middleware.RequestLogger(a.Log),
		echomw.Recover(),
	)

	write := middleware.NewTokenBucket(a.RateLimit, a.Redis, a.Log)
	router.RegisterRoutes(e, a.DB)
	router.RegisterVenues(e, handler.NewVenueHandler(service.NewVenueService(venues, shows, opts)), write)
	router.RegisterArtists(e, handler.NewArtistHandler(service.NewArtistService(artists, shows, opts)), write)
	router.RegisterShows(e, handler.NewShowHandler(service.NewShowService(shows, opts)), write)
	return e
}
