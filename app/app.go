package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"protender-api/internal/config"
	"protender-api/internal/controller"
	"protender-api/internal/metrics"
	"protender-api/internal/repo"
	"protender-api/internal/service"
	"protender-api/migrations"
	"protender-api/pkg/http_server"
	"protender-api/pkg/logger"
	"protender-api/pkg/objectstore"
	"protender-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/sirupsen/logrus"
)

const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// newMigrator holds one connection taken from the shared pool. Closing the
// returned Migrate releases that connection and leaves the pool open.
func newMigrator(ctx context.Context, pg *postgres.Postgres) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}

	conn, err := pg.Database.Conn(ctx)
	if err != nil {
		source.Close()
		return nil, fmt.Errorf("migration connection: %w", err)
	}

	driver, err := pgmigrate.WithConnection(ctx, conn, &pgmigrate.Config{})
	if err != nil {
		conn.Close()
		source.Close()
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		driver.Close()
		source.Close()
		return nil, err
	}

	return m, nil
}

// runMigrations applies every pending migration for "up" and rolls back the
// latest one for "down".
func runMigrations(ctx context.Context, pg *postgres.Postgres, direction string, log *logrus.Logger) error {
	if direction != MigrateUp && direction != MigrateDown {
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	m, err := newMigrator(ctx, pg)
	if err != nil {
		return err
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if err := errors.Join(sourceErr, dbErr); err != nil {
			log.WithError(err).Warn("closing migrator")
		}
	}()

	if direction == MigrateUp {
		err = m.Up()
	} else {
		err = m.Steps(-1)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no change made by migration scripts")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", err)
	}
	log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("migrations applied")

	return nil
}

func newObjectStore(cfg config.Storage) (service.ObjectStore, string, error) {
	switch cfg.Driver {
	case config.StorageSupabase:
		bucket, err := objectstore.NewSupabaseBucket(objectstore.SupabaseConfig{
			URL:        cfg.SupabaseURL,
			ServiceKey: cfg.SupabaseKey,
			Bucket:     cfg.SupabaseBucket,
		})
		if err != nil {
			return nil, "", err
		}
		return bucket, "", nil
	default:
		dir, err := objectstore.NewLocalDir(cfg.LocalDir, cfg.PublicURL)
		if err != nil {
			return nil, "", err
		}
		return dir, dir.Dir(), nil
	}
}

// newHandler builds the echo instance. uploadsDir is served at /uploads when set.
func newHandler(cfg *config.Config, log *logrus.Logger, services *service.Services, uploadsDir string) *echo.Echo {
	handler := echo.New()
	handler.HideBanner = true
	handler.HidePort = true

	handler.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}),
		metrics.Middleware(),
		controller.RequestLogger(log),
	)

	handler.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	if uploadsDir != "" {
		handler.Static("/uploads", uploadsDir)
	}

	controller.SetupRoutesHandlers(handler, services, controller.Options{
		Logger:     log,
		Production: cfg.IsProduction(),
	})

	return handler
}

// Migrate runs the embedded migrations in the given direction and exits.
func Migrate(cfg *config.Config, direction string) error {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	pg, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pg.Close()

	return runMigrations(context.Background(), pg, direction, log)
}

func Run(cfg *config.Config) error {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	log.Info("Connecting database...")
	pg, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pg.Close()

	if cfg.MigrateOnStart {
		log.Info("Running migrations...")
		if err := runMigrations(context.Background(), pg, MigrateUp, log); err != nil {
			return err
		}
	}

	storage, uploadsDir, err := newObjectStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("object storage: %w", err)
	}

	services := service.NewServices(service.Dependencies{
		Repos:   repo.NewRepositories(pg),
		Tokens:  service.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry),
		Hasher:  service.NewBcryptHasher(service.DefaultBcryptCost),
		Storage: storage,
	})

	log.Info("Setup routes...")
	handler := newHandler(cfg, log, services, uploadsDir)

	log.WithField("address", cfg.ServerAddress).Info("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress, cfg.ShutdownPeriod)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
	}

	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Successful shutdown")

	return nil
}
