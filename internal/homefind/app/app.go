package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	httpapi "github.com/lagoshomes/homefind/internal/homefind/http"
	"github.com/lagoshomes/homefind/internal/homefind/mailer"
	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/internal/homefind/store"
	"github.com/lagoshomes/homefind/internal/homefind/store/drivers/sqlite"
	"github.com/lagoshomes/homefind/internal/homefind/token"
	"github.com/lagoshomes/homefind/pkg/cryptox"
	"github.com/lagoshomes/homefind/pkg/jwtx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the listing service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	codec  *token.Codec
	signer *jwtx.Signer
	mail   mailer.Mailer

	// Services
	bootstrapService    *service.BootstrapService
	accountService      *service.AccountService
	resetService        *service.PasswordResetService
	sessionService      *service.SessionService
	profileService      *service.ProfileService
	propertyService     *service.PropertyService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "homefind",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Signing secret backs both activation/reset links and access tokens.
	secret, err := loadOrGenerateSecret(app.cfg.SecretFile)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to load signing secret: %w", err)
	}
	app.codec = token.NewCodec(secret)
	app.signer = jwtx.NewSigner(secret, app.cfg.Issuer, app.cfg.AccessTokenTTL)

	if err := app.initMailer(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("homefind service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down homefind service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Flush the mail transport if it holds a connection
	if closer, ok := app.mail.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			app.logger.Error("error closing mail transport", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("homefind service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer selects the outbound mail transport from config
func (app *Application) initMailer() error {
	switch app.cfg.MailProvider {
	case "smtp":
		m, err := mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:        app.cfg.SMTPHost,
			User:        app.cfg.SMTPUser,
			Password:    app.cfg.SMTPPassword,
			FromAddress: app.cfg.MailFrom,
			CertPath:    app.cfg.SMTPCertPath,
			SkipVerify:  app.cfg.SMTPSkipVerify,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize smtp mailer: %w", err)
		}
		app.mail = m
		app.logger.Info("mail delivery enabled", "provider", "smtp", "host", app.cfg.SMTPHost)
	case "kafka":
		app.mail = mailer.NewKafkaMailer(mailer.KafkaConfig{
			Broker:   app.cfg.KafkaBroker,
			Topic:    app.cfg.KafkaTopic,
			Username: app.cfg.KafkaUser,
			Password: app.cfg.KafkaPassword,
		})
		app.logger.Info("mail delivery enabled", "provider", "kafka", "topic", app.cfg.KafkaTopic)
	default:
		app.mail = mailer.NewNoopMailer()
		app.logger.Info("mail delivery disabled")
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}
	app.accountService = &service.AccountService{
		Store:   app.db,
		Codec:   app.codec,
		Mailer:  app.mail,
		BaseURL: app.cfg.BaseURL,
	}
	app.resetService = &service.PasswordResetService{
		Store:   app.db,
		Codec:   app.codec,
		Mailer:  app.mail,
		BaseURL: app.cfg.BaseURL,
	}
	app.sessionService = &service.SessionService{
		Store:      app.db,
		Signer:     app.signer,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.profileService = &service.ProfileService{Store: app.db}
	app.propertyService = &service.PropertyService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.BootstrapService = app.bootstrapService
	router.AccountService = app.accountService
	router.PasswordResetService = app.resetService
	router.SessionService = app.sessionService
	router.ProfileService = app.profileService
	router.PropertyService = app.propertyService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// loadOrGenerateSecret loads the signing secret from its file, generating
// and persisting a fresh one when the file does not exist yet.
func loadOrGenerateSecret(file string) ([]byte, error) {
	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return nil, err
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		s := []byte(base64.RawURLEncoding.EncodeToString(buf))

		if err := os.WriteFile(file, s, 0600); err != nil {
			return nil, err
		}
		return s, nil
	}

	return os.ReadFile(file)
}
