package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliyamo/fyyur/internal/app"
	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/queue"
)

var (
	migrateOnStart bool

	rootCmd = &cobra.Command{
		Use:           "fyyur",
		Short:         "Fyyur venue and artist booking directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE:  runMigrate,
	}

	consumeCmd = &cobra.Command{
		Use:   "consume",
		Short: "Append directory events from the broker to the activity log",
		RunE:  runConsume,
	}
)

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
	}
	rootCmd.AddCommand(serveCmd, migrateCmd, consumeCmd)
}

// setup loads the configuration and builds the logger.
func setup() (config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log, closer, err := logging.New(cfg.Env, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	slog.SetDefault(log)
	return cfg, log, closer, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	db, dialect, err := app.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	a := &app.App{
		Log:       log,
		DB:        db,
		RateLimit: config.LoadRateLimitConfig(),
		Now:       time.Now,
	}
	if migrateOnStart {
		if err := a.Migrate(cmd.Context(), dialect); err != nil {
			return err
		}
	}
	if a.RateLimit.Enabled {
		if rdb := config.NewRedisClient(config.LoadRedisConfig()); rdb != nil {
			defer rdb.Close()
			a.Redis = rdb
		} else {
			log.Warn("redis unavailable; rate limiting disabled")
		}
	}
	if cfg.AMQPURL != "" {
		a.Events = queue.NewPublisher(cfg.AMQPURL)
	}

	e := a.Echo()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", ":"+cfg.Port, "env", cfg.Env, "db", cfg.DBDriver)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	db, dialect, err := app.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return (&app.App{Log: log, DB: db}).Migrate(cmd.Context(), dialect)
}

func runConsume(_ *cobra.Command, _ []string) error {
	cfg, log, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()
	if cfg.AMQPURL == "" {
		return errors.New("AMQP_URL or RABBITMQ_URL must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &queue.ActivityConsumer{URL: cfg.AMQPURL, LogPath: cfg.ActivityLogPath, Log: log}
	log.Info("activity consumer started", "queue", queue.DirectoryQueue, "file", cfg.ActivityLogPath)
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
