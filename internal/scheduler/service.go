// Package scheduler owns the global tick that drives monitoring
// cycles.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Anway-Kapoor/SentiNews/internal/config"
	"github.com/Anway-Kapoor/SentiNews/internal/monitor"
)

// Service wraps a single repeating cron entry. Created at startup,
// stopped at shutdown; never reset in between.
type Service struct {
	config  *config.Config
	monitor *monitor.Service
	cron    *cron.Cron
}

// NewService creates the scheduler.
func NewService(cfg *config.Config, monitorService *monitor.Service) *Service {
	return &Service{
		config:  cfg,
		monitor: monitorService,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start schedules the periodic tick. Each tick fans out cycles for
// every active topic; the tick itself never blocks on a slow fetch.
func (s *Service) Start() error {
	spec := fmt.Sprintf("@every %s", s.config.PollInterval)

	_, err := s.cron.AddFunc(spec, func() {
		logrus.Debug("Scheduler tick")
		s.monitor.RunCycles()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule monitoring tick: %w", err)
	}

	s.cron.Start()
	logrus.Infof("Scheduler started, polling every %s", s.config.PollInterval)
	return nil
}

// Stop cancels future ticks. In-flight cycles run to completion.
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Scheduler stopped")
	}
}
