// Package scheduler runs periodic background jobs on cron specs.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salesboard/config"
	"salesboard/internal/delivery"
	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/lifecycle"
	"salesboard/internal/errors"
	"salesboard/internal/usecase"
	"salesboard/internal/util"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const clientCounterJob = "client_counter"

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	DashboardUC usecase.DashboardUsecase
}

// Scheduler owns the cron runner. It is a no-op when no job has a spec.
type Scheduler struct {
	cron        *cron.Cron
	logger      *slog.Logger
	dashboardUC usecase.DashboardUsecase
	jobs        int

	mu      sync.Mutex
	started bool
}

// New registers the configured jobs and the shutdown hook.
func New(params Params) (delivery.Delivery, error) {
	s, err := NewScheduler(params.Cfg.Scheduler, params.Logger, params.DashboardUC)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// NewScheduler builds a scheduler from cfg. Specs accept an optional seconds field and descriptors such as "@every 1m".
func NewScheduler(cfg *config.SchedulerConfig, logger *slog.Logger, dashboardUC usecase.DashboardUsecase) (*Scheduler, error) {
	cronLog := &cronLogger{logger: logger.With(slog.String("component", "scheduler"))}
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

	s := &Scheduler{
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger:      logger,
		dashboardUC: dashboardUC,
	}

	if cfg != nil && cfg.ClientCounterSpec != "" {
		if _, err := s.cron.AddFunc(cfg.ClientCounterSpec, func() { s.RunClientCounter(context.Background()) }); err != nil {
			return nil, errors.Wrapf(err, "invalid scheduler.clientCounterSpec %q", cfg.ClientCounterSpec)
		}
		s.jobs++
	}

	return s, nil
}

// Serve starts the cron runner and returns immediately.
func (s *Scheduler) Serve(ctx context.Context) error {
	if s.jobs == 0 {
		s.logger.Info("Scheduler disabled, no job configured")

		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Start()
	s.started = true
	s.logger.Info("Scheduler started", slog.Int("jobs", s.jobs))

	return nil
}

// RunClientCounter snapshots the live client count into the counter document.
func (s *Scheduler) RunClientCounter(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	ctx = deliverycontext.WithCorrelation(ctx, s.logger, "job_id", deliverycontext.NewRequestID())
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("job", clientCounterJob))

	start := time.Now()
	total, err := s.dashboardUC.RecordTotalClients(ctx)
	if err != nil {
		logger.Error("Scheduled job failed", slog.Any("error", err))

		return
	}

	logger.Info("Scheduled job finished",
		slog.Int64("total_clientes", total),
		slog.String("took", util.FormatDuration(time.Since(start))),
	)
}

func (s *Scheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return nil
	}

	s.logger.Info("Stopping scheduler")
	done := s.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler jobs still running")
	}
}

// cronLogger routes cron's internal logging to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
