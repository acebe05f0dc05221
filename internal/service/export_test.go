package service

import "time"

// Export for testing

// SetAdmissionClock replaces the admission service's clock.
func SetAdmissionClock(svc AdmissionService, now func() time.Time) {
	svc.(*admissionService).now = now
}

// SetAnalysisClock replaces the analysis service's clock.
func SetAnalysisClock(svc AnalysisService, now func() time.Time) {
	svc.(*analysisService).clock = now
}

var ValidateSector = validateSector
var DisplaySector = displaySector
var FallbackReport = fallbackReport
var BuildQuery = buildQuery
