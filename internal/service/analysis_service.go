//go:generate mockgen -source=$GOFILE -destination=mock/analysis_service.go -package=mock
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"tradeops/backend/internal/model"
	"tradeops/backend/internal/service/ai"
	"tradeops/backend/pkg/logger"
)

const (
	sectorMinLen   = 2
	sectorMaxLen   = 50
	sampleMaxChars = 1000
)

// Reports carry a fixed-timezone timestamp regardless of server locale.
var istZone = time.FixedZone("IST", (5*60+30)*60)

var sectorPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 &\-]*$`)

// AnalysisService runs the full sector-analysis pipeline: validation,
// admission, data collection, generation with fallback, and response
// assembly.
type AnalysisService interface {
	Analyze(ctx context.Context, clientID, sector string) (model.Analysis, error)
	CollectSample(ctx context.Context, sector string) (string, error)
}

type analysisService struct {
	admission AdmissionService
	news      NewsService
	provider  ai.Provider
	pacer     *ai.RateLimiter
	timeout   time.Duration
	clock     func() time.Time
}

// NewAnalysisService wires the pipeline. provider may be nil when the
// backend is not configured; every report then takes the fallback path.
func NewAnalysisService(admission AdmissionService, news NewsService, provider ai.Provider, pacer *ai.RateLimiter, timeout time.Duration) AnalysisService {
	return &analysisService{
		admission: admission,
		news:      news,
		provider:  provider,
		pacer:     pacer,
		timeout:   timeout,
		clock:     time.Now,
	}
}

func (s *analysisService) Analyze(ctx context.Context, clientID, sector string) (model.Analysis, error) {
	normalized, err := validateSector(sector)
	if err != nil {
		return model.Analysis{}, err
	}

	quota, err := s.admission.Admit(clientID)
	if err != nil {
		return model.Analysis{}, err
	}

	logger.Info("analyzing sector", "module", "service", "action", "analyze", "sector", normalized, "client", clientID, "requests_used", quota.Used)

	marketData, err := s.news.Collect(ctx, normalized)
	if err != nil {
		// Soft failure: the generator still produces a well-formed report
		// from a placeholder.
		logger.Warn("market data unavailable", "module", "service", "action", "collect", "result", "degraded", "sector", normalized, "error", err)
		marketData = fmt.Sprintf("No recent results found for %s in India.", normalized)
	}

	report, status := s.generate(ctx, normalized, marketData)

	return model.Analysis{
		Sector:    displaySector(normalized),
		Report:    report,
		Timestamp: s.clock().In(istZone),
		Status:    status,
		Quota:     quota,
	}, nil
}

// CollectSample returns a bounded raw sample of the collected text for the
// diagnostic endpoint, bypassing the generator.
func (s *analysisService) CollectSample(ctx context.Context, sector string) (string, error) {
	normalized, err := validateSector(sector)
	if err != nil {
		return "", err
	}

	text, err := s.news.Collect(ctx, normalized)
	if err != nil {
		return "", err
	}
	if len(text) > sampleMaxChars {
		text = text[:sampleMaxChars]
	}
	return text, nil
}

// generate tries the backend once and falls back to the deterministic
// template on any failure. The fallback branch never fails.
func (s *analysisService) generate(ctx context.Context, sector, marketData string) (report, status string) {
	text, err := s.invokeBackend(ctx, sector, marketData)
	if err != nil {
		logger.Warn("generation backend unavailable", "module", "service", "action", "generate", "result", "fallback", "sector", sector, "error", err)
		return fallbackReport(sector, s.clock().In(istZone)), model.StatusDegraded
	}
	return text, model.StatusComplete
}

func (s *analysisService) invokeBackend(ctx context.Context, sector, marketData string) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("%w: no provider configured", ErrBackendUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.pacer.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	text, err := s.provider.Complete(ctx, ai.GetAnalysisSystemPrompt(), ai.GetAnalysisPrompt(sector, marketData))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	text = strings.TrimSpace(text)
	if text == "" || !strings.Contains(text, "##") {
		return "", fmt.Errorf("%w: malformed response", ErrBackendUnavailable)
	}
	return text, nil
}

// validateSector checks the raw input before any external call is made.
func validateSector(sector string) (string, error) {
	trimmed := strings.TrimSpace(sector)
	if len(trimmed) < sectorMinLen || len(trimmed) > sectorMaxLen {
		return "", ErrInvalid
	}
	if !sectorPattern.MatchString(trimmed) {
		return "", ErrInvalid
	}
	return trimmed, nil
}

// displaySector title-cases the sector name for the response payload.
func displaySector(sector string) string {
	words := strings.Fields(strings.ToLower(sector))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
