package search

// Export for testing
var ParseResultsPage = parseResultsPage
var ResolveRedirect = resolveRedirect
var SplitRegion = splitRegion

// SetEndpointForTest points the feed source at a test server.
func (g *GoogleNews) SetEndpointForTest(endpoint string) {
	g.endpoint = endpoint
}
