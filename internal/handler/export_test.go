package handler

// Export for testing
type ErrorResponse = errorResponse
type RateLimitedResponse = rateLimitedResponse
type LoginResponse = loginResponse
type AnalysisResponse = analysisResponse
type NewsSampleResponse = newsSampleResponse
type RootResponse = rootResponse
type HealthResponse = healthResponse

var NewAuthHandlerHelper = NewAuthHandler
var NewAnalysisHandlerHelper = NewAnalysisHandler
var NewRootHandlerHelper = NewRootHandler

var WriteServiceError = writeServiceError
