package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/pairing/pkg/slogx"
	"github.com/robfig/cron/v3"
)

// HousekeepingService runs background jobs on a cron schedule. The expiry
// sweep is always registered; callers may add more with AddJob.
type HousekeepingService struct {
	Pairing  *PairingService
	Logger   *slog.Logger
	Interval time.Duration

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// NewHousekeepingService creates a new housekeeping service that sweeps at
// the given interval. If interval is 0 or negative, defaults to 1 minute.
func NewHousekeepingService(pairing *PairingService, logger *slog.Logger, interval time.Duration) (*HousekeepingService, error) {
	if interval <= 0 {
		interval = time.Minute
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	ctx, cancel := context.WithCancel(slogx.WithContext(context.Background(), logger))

	s := &HousekeepingService{
		Pairing:  pairing,
		Logger:   logger,
		Interval: interval,
		cron:     cron.New(cron.WithParser(parser)),
		ctx:      ctx,
		cancel:   cancel,
	}

	err := s.AddJob("sweep_expired", Every(interval), func(ctx context.Context) error {
		_, err := pairing.SweepExpired(ctx)
		return err
	})
	if err != nil {
		cancel()
		return nil, err
	}

	return s, nil
}

// Every returns the cron descriptor for a fixed interval.
func Every(d time.Duration) string {
	return fmt.Sprintf("@every %s", d)
}

// AddJob schedules run under spec. A run is skipped while the previous run
// of the same job is still in progress.
func (s *HousekeepingService) AddJob(name, spec string, run func(ctx context.Context) error) error {
	logger := s.Logger.With(slog.String("job", name), slog.String("spec", spec))

	var running atomic.Bool
	_, err := s.cron.AddFunc(spec, func() {
		if !running.CompareAndSwap(false, true) {
			logger.Info("job skipped: still running")
			return
		}
		defer running.Store(false)

		start := time.Now()
		if err := run(s.ctx); err != nil {
			logger.Error("job failed", slog.Any("error", err), slog.Duration("duration", time.Since(start)))
			return
		}
		logger.Debug("job finished", slog.Duration("duration", time.Since(start)))
	})
	if err != nil {
		logger.Error("failed to schedule job", slog.Any("error", err))
		return err
	}

	logger.Info("job scheduled")
	return nil
}

// Start runs an initial sweep and starts the scheduler. It does not block.
func (s *HousekeepingService) Start() {
	if _, err := s.Pairing.SweepExpired(s.ctx); err != nil {
		s.Logger.Error("initial sweep failed", slog.Any("error", err))
	}

	s.cron.Start()
	s.Logger.Info("housekeeping service started", slog.Duration("interval", s.Interval))
}

// Stop cancels in-flight jobs and blocks until they have returned.
func (s *HousekeepingService) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.Logger.Info("housekeeping service stopped")
}
