package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tradeops/backend/internal/search"
)

const resultsPage = `<!DOCTYPE html>
<html><body>
<div id="links">
  <div class="result results_links web-result">
    <h2 class="result__title">
      <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpharma-rally&amp;rut=abc">Pharma stocks rally on export data</a>
    </h2>
    <a class="result__snippet" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpharma-rally">Indian <b>pharma</b> majors gained after strong export numbers.</a>
  </div>
  <div class="result results_links web-result">
    <h2 class="result__title">
      <a class="result__a" href="https://example.com/banking-outlook">Banking sector outlook</a>
    </h2>
    <div class="result__snippet">Credit growth remains healthy.</div>
  </div>
  <div class="result results_links web-result">
    <h2 class="result__title">
      <a class="result__a" href="https://example.com/third">Third headline</a>
    </h2>
  </div>
</div>
</body></html>`

func TestParseResultsPage(t *testing.T) {
	results := search.ParseResultsPage([]byte(resultsPage), 10)
	require.Len(t, results, 3)

	require.Equal(t, "Pharma stocks rally on export data", results[0].Title)
	require.Equal(t, "https://example.com/pharma-rally", results[0].URL)
	require.Contains(t, results[0].Snippet, "pharma majors gained")

	require.Equal(t, "Banking sector outlook", results[1].Title)
	require.Equal(t, "https://example.com/banking-outlook", results[1].URL)
	require.Equal(t, "Credit growth remains healthy.", results[1].Snippet)

	require.Equal(t, "Third headline", results[2].Title)
	require.Empty(t, results[2].Snippet)
}

func TestParseResultsPage_MaxResults(t *testing.T) {
	results := search.ParseResultsPage([]byte(resultsPage), 2)
	require.Len(t, results, 2)
}

func TestParseResultsPage_Garbage(t *testing.T) {
	require.Empty(t, search.ParseResultsPage([]byte("<html><body><p>nothing here</p></body></html>"), 5))
}

func TestResolveRedirect(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{
			name: "protocol-relative redirect",
			href: "//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Farticle&rut=abc",
			want: "https://example.com/article",
		},
		{
			name: "path-only redirect",
			href: "/l/?uddg=https%3A%2F%2Fexample.com%2Fother",
			want: "https://example.com/other",
		},
		{
			name: "direct link untouched",
			href: "https://example.com/direct",
			want: "https://example.com/direct",
		},
		{
			name: "empty",
			href: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, search.ResolveRedirect(tt.href))
		})
	}
}
