//go:generate mockgen -source=$GOFILE -destination=mock/news_service.go -package=mock
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tradeops/backend/internal/model"
	"tradeops/backend/internal/search"
	"tradeops/backend/pkg/logger"
	"tradeops/backend/pkg/network"
	"tradeops/backend/pkg/sanitizer"
)

// snippetMaxChars bounds each snippet line before the total budget applies.
const snippetMaxChars = 200

// NewsService aggregates recent public text about a sector from best-effort
// sources into a single bounded text block.
type NewsService interface {
	Collect(ctx context.Context, sector string) (string, error)
}

type newsService struct {
	primary    search.Source
	supplement search.Source
	maxResults int
	maxChars   int
}

// NewNewsService creates the collector. supplement may be nil.
func NewNewsService(primary, supplement search.Source, maxResults, maxChars int) NewsService {
	return &newsService{
		primary:    primary,
		supplement: supplement,
		maxResults: maxResults,
		maxChars:   maxChars,
	}
}

// buildQuery biases collection toward recent Indian market coverage,
// mirroring the service's regional focus.
func buildQuery(sector string, now time.Time) string {
	return fmt.Sprintf("%s India stock market news opportunities %d", sector, now.Year())
}

// Collect fans out to both sources concurrently and merges whatever came
// back. Source failures are logged and tolerated; only a fully empty merge
// is reported as ErrDataUnavailable.
func (s *newsService) Collect(ctx context.Context, sector string) (string, error) {
	query := buildQuery(sector, time.Now())

	var primary, supplement []model.SearchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, err := s.primary.Search(gctx, query, s.maxResults)
		if err != nil {
			logger.Warn("search source failed", "module", "service", "action", "collect", "source", "search", "result", "failed", "sector", sector, "error", err)
			return nil
		}
		primary = results
		return nil
	})
	if s.supplement != nil {
		g.Go(func() error {
			results, err := s.supplement.Search(gctx, sector+" India stock market", s.maxResults)
			if err != nil {
				logger.Warn("headline source failed", "module", "service", "action", "collect", "source", "feed", "result", "failed", "sector", sector, "error", err)
				return nil
			}
			supplement = results
			return nil
		})
	}
	_ = g.Wait()

	merged := append(primary, supplement...)
	if len(merged) == 0 {
		return "", ErrDataUnavailable
	}

	var buf strings.Builder
	for _, r := range merged {
		line := formatResult(r)
		if line == "" {
			continue
		}
		if buf.Len()+len(line) > s.maxChars {
			break
		}
		buf.WriteString(line)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", ErrDataUnavailable
	}

	logger.Debug("collected market data", "module", "service", "action", "collect", "result", "ok", "sector", sector, "results", len(merged), "chars", len(text))
	return text, nil
}

func formatResult(r model.SearchResult) string {
	title := sanitizer.CleanSnippet(r.Title)
	snippet := truncate(sanitizer.CleanSnippet(r.Snippet), snippetMaxChars)
	if title == "" && snippet == "" {
		return ""
	}
	if title == "" {
		title = network.ExtractHost(r.URL)
	}
	if r.URL != "" {
		return fmt.Sprintf("- %s (%s)\n  %s\n", title, r.URL, snippet)
	}
	return fmt.Sprintf("- %s\n  %s\n", title, snippet)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	// Do not split a multi-byte rune.
	for len(cut) > 0 && !strings.HasSuffix(cut, " ") && (cut[len(cut)-1]&0xC0) == 0x80 {
		cut = cut[:len(cut)-1]
	}
	return strings.TrimSpace(cut) + "..."
}
