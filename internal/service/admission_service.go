//go:generate mockgen -source=$GOFILE -destination=mock/admission_service.go -package=mock
package service

import (
	"sync"
	"time"

	"tradeops/backend/internal/model"
	"tradeops/backend/pkg/logger"
)

// AdmissionService enforces at most `limit` requests per client identity
// within a rolling window. It owns the only shared mutable state in the
// pipeline.
type AdmissionService interface {
	Admit(clientID string) (model.QuotaStatus, error)
	Quota(clientID string) model.QuotaStatus
	Sweep() int
}

type admissionService struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients map[string][]time.Time
	now     func() time.Time
}

func NewAdmissionService(limit int, window time.Duration) AdmissionService {
	return &admissionService{
		limit:   limit,
		window:  window,
		clients: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Admit records a request for clientID if quota remains. The whole
// prune-check-append sequence runs under the lock so two concurrent requests
// cannot both take the last slot.
func (s *admissionService) Admit(clientID string) (model.QuotaStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	kept := s.prune(s.clients[clientID], now)

	if len(kept) >= s.limit {
		s.clients[clientID] = kept
		retry := kept[0].Add(s.window).Sub(now)
		logger.Warn("request rejected", "module", "service", "action", "admit", "result", "rate_limited", "client", clientID, "retry_after", retry)
		return model.QuotaStatus{Used: len(kept), Remaining: 0}, &RateLimitedError{RetryAfter: retry}
	}

	kept = append(kept, now)
	s.clients[clientID] = kept
	return model.QuotaStatus{Used: len(kept), Remaining: s.limit - len(kept)}, nil
}

// Quota reports current usage without consuming a slot.
func (s *admissionService) Quota(clientID string) model.QuotaStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := len(s.prune(s.clients[clientID], s.now()))
	remaining := s.limit - used
	if remaining < 0 {
		remaining = 0
	}
	return model.QuotaStatus{Used: used, Remaining: remaining}
}

// Sweep drops clients whose windows have fully drained, bounding memory
// growth over long process lifetimes. Returns the number of entries removed.
func (s *admissionService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, stamps := range s.clients {
		if len(s.prune(stamps, now)) == 0 {
			delete(s.clients, id)
			removed++
		}
	}
	return removed
}

// prune keeps timestamps strictly inside the window. A timestamp exactly at
// the boundary counts as expired, so the boundary favors the caller.
func (s *admissionService) prune(stamps []time.Time, now time.Time) []time.Time {
	kept := make([]time.Time, 0, len(stamps))
	for _, ts := range stamps {
		if now.Sub(ts) < s.window {
			kept = append(kept, ts)
		}
	}
	return kept
}
