// Package search provides best-effort snippet sources for sector queries.
package search

import (
	"context"

	"tradeops/backend/internal/model"
)

// Source returns text snippets for a query. Implementations are best-effort:
// an empty slice with a nil error is a valid outcome.
type Source interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error)
}
