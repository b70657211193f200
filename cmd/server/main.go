package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/obradorhq/obrador/internal/config"
	"github.com/obradorhq/obrador/internal/domain/ledger"
	"github.com/obradorhq/obrador/internal/repository/mongodb"
	"github.com/obradorhq/obrador/internal/repository/sheets"
	"github.com/obradorhq/obrador/internal/scheduler"
	"github.com/obradorhq/obrador/internal/server/handlers"
	"github.com/obradorhq/obrador/internal/server/router"
	bookssvc "github.com/obradorhq/obrador/internal/service/books"
	reportingsvc "github.com/obradorhq/obrador/internal/service/reporting"
	"github.com/obradorhq/obrador/pkg/clients/identity"
	"github.com/obradorhq/obrador/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	booksSvc := bookssvc.NewService(mongoRepo, baseLogger.Named("svc.books"))
	reportingSvc := reportingsvc.NewService(booksSvc, baseLogger.Named("svc.reporting"))
	domainLedger := ledger.New(cfg.Pricing.DefaultMargin)

	idClient := identity.NewClient(cfg.Identity)

	authHandler := handlers.NewAuthHandler(idClient, baseLogger.Named("handlers.auth"))
	bookHandler := handlers.NewBookHandler(booksSvc, domainLedger, reportingSvc, baseLogger.Named("handlers.book"))
	engine := router.New(authHandler, bookHandler, idClient, baseLogger.Named("router"))

	// The low-stock export only runs when a spreadsheet target is configured.
	if cfg.SheetsEnabled() {
		exporter, err := sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		sched := scheduler.NewScheduler(cfg.LowStock, mongoRepo, exporter, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	} else {
		baseLogger.Info("sheet export not configured, low-stock sweep disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
