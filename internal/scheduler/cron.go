package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/moodflix/moodflix/internal/services/recommender"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the periodic upstream reachability probe
type Scheduler struct {
	cron        *cron.Cron
	recommender *recommender.Client
	interval    int
	available   atomic.Bool
	lastProbe   atomic.Int64
	logger      *logrus.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(client *recommender.Client, intervalMinutes int, logger *logrus.Logger) *Scheduler {
	if intervalMinutes < 1 {
		intervalMinutes = 1
	}
	return &Scheduler{
		cron:        cron.New(),
		recommender: client,
		interval:    intervalMinutes,
		logger:      logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.logger.Info("Starting scheduler")

	spec := fmt.Sprintf("*/%d * * * *", s.interval)
	_, err := s.cron.AddFunc(spec, func() {
		s.runProbe()
	})
	if err != nil {
		return fmt.Errorf("failed to add probe job: %w", err)
	}

	s.cron.Start()

	// Probe once right away so /status has a real answer from the start
	go s.runProbe()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	s.cron.Stop()
}

// UpstreamAvailable reports the result of the most recent probe
func (s *Scheduler) UpstreamAvailable() bool {
	return s.available.Load()
}

// LastProbeAt returns when the upstream was last probed, zero if never
func (s *Scheduler) LastProbeAt() time.Time {
	unix := s.lastProbe.Load()
	if unix == 0 {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}

// runProbe executes one reachability check against the recommendation service
func (s *Scheduler) runProbe() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.recommender.Ping(ctx)
	s.available.Store(err == nil)
	s.lastProbe.Store(time.Now().Unix())

	if err != nil {
		s.logger.WithError(err).Warn("Recommendation service unreachable")
	} else {
		s.logger.Debug("Recommendation service reachable")
	}
}
