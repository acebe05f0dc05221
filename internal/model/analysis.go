package model

import "time"

// Statuses returned to the caller. StatusDegraded marks reports produced by
// the deterministic fallback path instead of the generation backend.
const (
	StatusComplete = "analysis_complete"
	StatusDegraded = "analysis_degraded"
)

// SearchResult is a single snippet from a search or headline source.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// Analysis is the assembled sector report.
type Analysis struct {
	Sector    string
	Report    string
	Timestamp time.Time
	Status    string
	Quota     QuotaStatus
}

// QuotaStatus reflects one client's rolling-window usage after admission.
type QuotaStatus struct {
	Used      int
	Remaining int
}
