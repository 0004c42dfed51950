package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/acmedash/invoicehub.go/db"
	"github.com/acmedash/invoicehub.go/db/migrations"
	"github.com/acmedash/invoicehub.go/lib"
	"github.com/acmedash/invoicehub.go/lib/listing"
	"github.com/acmedash/invoicehub.go/lib/service"
	"github.com/acmedash/invoicehub.go/lib/transport"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/uptrace/bun/migrate"
)

// @title        InvoiceHub
// @version      1.0.0
// @description  Invoice mutation backend for the Acme dashboard.

// @BasePath  /
// @schemes   https http
func main() {

	c := &service.Config{}

	// Load configuration from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configured log file
	logger := lib.Logger(c.LogFilePath)

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}
	defer dbConn.Close()

	// Migrate the DB
	startupCtx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(startupCtx)
	if err != nil {
		logger.Fatalf("Error initializing db migrator: %v", err)
	}
	_, err = migrator.Migrate(startupCtx)
	if err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	// The response cache serving the listing view shares its adapter with
	// the invalidator the mutation pipeline fires after every write.
	cacheClient, cacheAdapter := createCacheClient(c)

	svc := &service.InvoiceService{
		Config:  c,
		Store:   db.NewStore(dbConn),
		Listing: listing.NewCache(cacheAdapter),
		Logger:  logger,
	}

	e := initEcho(c, logger)

	logMw := createLoggingMiddleware(logger)
	transport.RegisterEndpoints(svc, e, cacheClient.Middleware(), logMw)

	// Start Prometheus server if necessary
	if svc.Config.EnablePrometheus {
		go startPrometheusEcho(logger, svc, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	shutdownCtx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	<-shutdownCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	svc.Logger.Info("InvoiceHub exiting gracefully. Goodbye.")
}
