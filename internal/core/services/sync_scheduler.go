package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/metrics"
	"github.com/robfig/cron/v3"
)

const (
	// DefaultSyncInterval is how often the offline queue is flushed.
	DefaultSyncInterval = 30 * time.Second
	// DefaultProbeInterval is how often backend reachability is checked.
	DefaultProbeInterval = 10 * time.Second

	onlineMessage  = "You are now online"
	offlineMessage = "You are offline. Changes will be synced when you're back online."
)

// SyncScheduler runs the offline queue sync and the connectivity monitor on a cron.
type SyncScheduler struct {
	BaseService
	cron      *cron.Cron
	probe     portssvc.ConnectivityProbe
	queue     portssvc.OfflineQueueSvcFacade
	logger    *slog.Logger
	syncSpec  string
	probeSpec string
	timeout   time.Duration

	mu      sync.Mutex
	online  bool
	checked bool
}

// NewSyncScheduler wires the jobs. queue may be nil, in which case only the
// connectivity monitor runs.
func NewSyncScheduler(probe portssvc.ConnectivityProbe, queue portssvc.OfflineQueueSvcFacade, notifier Notifier, syncInterval, probeInterval time.Duration, logger *slog.Logger) *SyncScheduler {
	if syncInterval <= 0 {
		syncInterval = DefaultSyncInterval
	}
	if probeInterval <= 0 {
		probeInterval = DefaultProbeInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	cronLogger := cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))
	return &SyncScheduler{
		BaseService: BaseService{Notifier: notifier},
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		)),
		probe:     probe,
		queue:     queue,
		logger:    logger,
		syncSpec:  fmt.Sprintf("@every %s", syncInterval),
		probeSpec: fmt.Sprintf("@every %s", probeInterval),
		timeout:   probeInterval,
	}
}

// Start registers the jobs and starts the cron. It does not block.
func (s *SyncScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.probeSpec, func() { s.CheckConnectivity(context.Background()) }); err != nil {
		return fmt.Errorf("failed to schedule connectivity probe: %w", err)
	}
	if s.queue != nil {
		if _, err := s.cron.AddFunc(s.syncSpec, func() { s.RunSync(context.Background()) }); err != nil {
			return fmt.Errorf("failed to schedule offline sync: %w", err)
		}
	}
	s.cron.Start()
	s.logger.Info("Sync scheduler started", slog.String("sync", s.syncSpec), slog.String("probe", s.probeSpec))
	return nil
}

// Stop halts the cron and waits for running jobs.
func (s *SyncScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Sync scheduler stopped")
}

// Online reports the last probed reachability. It is true until the first probe.
func (s *SyncScheduler) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.checked || s.online
}

// CheckConnectivity probes the backend and announces transitions. Coming back
// online triggers a sync.
func (s *SyncScheduler) CheckConnectivity(ctx context.Context) bool {
	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	err := s.probe.Ping(pctx)
	cancel()
	online := err == nil

	s.mu.Lock()
	wasOnline, first := s.online, !s.checked
	s.online, s.checked = online, true
	s.mu.Unlock()

	metrics.SetBackendOnline(online)
	if !first && online == wasOnline {
		return online
	}
	if first && online {
		return online
	}

	if online {
		s.logger.Info("Backend reachable again")
		s.succeed(onlineMessage)
		s.RunSync(ctx)
	} else {
		s.logger.Warn("Backend unreachable", slog.String("error", err.Error()))
		s.notifyInfo(offlineMessage)
	}
	return online
}

// RunSync flushes the offline queue once. Overlapping runs are skipped.
func (s *SyncScheduler) RunSync(ctx context.Context) {
	if s.queue == nil {
		return
	}
	res, err := s.queue.Sync(ctx)
	switch {
	case errors.Is(err, apperrors.ErrSyncInProgress):
		s.logger.Debug("Offline sync already running")
	case err != nil:
		s.logger.Error("Offline sync failed", slog.String("error", err.Error()))
	case res.Sent+res.Failed > 0:
		s.logger.Debug("Offline sync pass complete", slog.Int("sent", res.Sent), slog.Int("failed", res.Failed))
	}
}
