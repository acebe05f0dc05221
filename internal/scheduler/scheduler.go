// Package scheduler periodically prunes drained rate-limit windows so the
// per-client map stays bounded over long process lifetimes.
package scheduler

import (
	"sync"
	"time"

	"tradeops/backend/internal/service"
	"tradeops/backend/pkg/logger"
)

type Scheduler struct {
	admission service.AdmissionService
	interval  time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

func New(admission service.AdmissionService, interval time.Duration) *Scheduler {
	return &Scheduler{
		admission: admission,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("sweep scheduler started", "module", "scheduler", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	logger.Info("sweep scheduler stopped", "module", "scheduler")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := s.admission.Sweep()
			if removed > 0 {
				logger.Debug("admission sweep", "module", "scheduler", "action", "sweep", "removed", removed)
			}
		case <-s.stopCh:
			return
		}
	}
}
