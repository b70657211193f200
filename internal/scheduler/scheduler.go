package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/obradorhq/obrador/internal/config"
	"github.com/obradorhq/obrador/internal/repository/mongodb"
	"github.com/obradorhq/obrador/internal/repository/sheets"
	"github.com/obradorhq/obrador/internal/service/reporting"
)

const lowStockRange = "LowStock!A:F"

// Scheduler runs the periodic low-stock sweep: every book is scanned for
// materials below their minimum and the rows are appended to the export
// spreadsheet.
type Scheduler struct {
	cron     *cron.Cron
	repo     mongodb.Repository
	exporter sheets.Exporter
	cfg      config.LowStockConfig
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.LowStockConfig, repo mongodb.Repository, exporter sheets.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		repo:     repo,
		exporter: exporter,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers and starts the scheduled jobs.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.exportLowStock); err != nil {
		s.logger.Error("failed to schedule low-stock sweep", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) exportLowStock() {
	s.logger.Info("running low-stock sweep")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	booksList, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list books", zap.Error(err))
		return
	}

	var rows [][]interface{}
	for i := range booksList {
		rows = append(rows, reporting.LowStockRows(&booksList[i])...)
	}
	if len(rows) == 0 {
		s.logger.Info("no materials below minimum stock")
		return
	}

	if err := s.exporter.AppendRows(ctx, lowStockRange, rows); err != nil {
		s.logger.Error("failed to export low-stock rows", zap.Error(err))
		return
	}
	s.logger.Info("low-stock rows exported", zap.Int("count", len(rows)))
}
