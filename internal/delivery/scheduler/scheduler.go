// Package scheduler runs the retirement sweep on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"addresssync/config"
	"addresssync/internal/delivery"
	deliverycontext "addresssync/internal/delivery/context"
	"addresssync/internal/errors"
	"addresssync/internal/usecase"

	"github.com/robfig/cron"
	"go.uber.org/fx"
)

type sweepScheduler struct {
	cfg    *config.SweepConfig
	logger *slog.Logger
	uc     usecase.RetirementUsecase
	cron   *cron.Cron

	// running serializes sweeps so a slow run is skipped rather than overlapped.
	running sync.Mutex
	done    chan struct{}
	once    sync.Once
}

// SchedulerParams holds dependencies for the sweep scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	UC     usecase.RetirementUsecase
}

// NewScheduler registers the sweep job and its shutdown hook.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s, err := newSweepScheduler(params.Cfg.Sweep, params.Logger, params.UC)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.stop()

			return nil
		},
	})

	return s, nil
}

func newSweepScheduler(cfg *config.SweepConfig, logger *slog.Logger, uc usecase.RetirementUsecase) (*sweepScheduler, error) {
	if cfg == nil || cfg.Schedule == "" {
		return nil, errors.New("sweep schedule must be provided")
	}

	s := &sweepScheduler{
		cfg:    cfg,
		logger: logger,
		uc:     uc,
		cron:   cron.New(),
		done:   make(chan struct{}),
	}
	if err := s.cron.AddFunc(cfg.Schedule, s.runOnce); err != nil {
		return nil, errors.Wrapf(err, "invalid sweep schedule %q", cfg.Schedule)
	}

	return s, nil
}

// Serve starts the cron loop and blocks until stop.
func (s *sweepScheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting retirement sweep scheduler",
		slog.String("schedule", s.cfg.Schedule),
		slog.Bool("runOnStart", s.cfg.RunOnStart),
	)

	if s.cfg.RunOnStart {
		s.runOnce()
	}
	s.cron.Start()

	select {
	case <-ctx.Done():
		s.stop()
	case <-s.done:
	}

	return nil
}

func (s *sweepScheduler) runOnce() {
	if !s.running.TryLock() {
		s.logger.Warn("Previous retirement sweep still running, skipping")

		return
	}
	defer s.running.Unlock()

	ctx, logger := deliverycontext.WithRequestScope(context.Background(), deliverycontext.NewRequestID(), s.logger)

	report, err := s.uc.SweepRetiredAddresses(ctx, nil)
	if err != nil {
		logger.Error("Scheduled retirement sweep failed", slog.Any("error", err))

		return
	}

	counts := report.Counts()
	logger.Info("Scheduled retirement sweep finished",
		slog.Int("processed", counts.Processed),
		slog.Int("failed", counts.Failed),
	)
}

func (s *sweepScheduler) stop() {
	s.once.Do(func() {
		s.logger.Info("Stopping retirement sweep scheduler")
		s.cron.Stop()
		close(s.done)
	})
}
