package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"tradeops/backend/internal/model"
	"tradeops/backend/pkg/network"
	"tradeops/backend/pkg/sanitizer"
)

const googleNewsEndpoint = "https://news.google.com/rss/search"

// GoogleNews supplements search snippets with headlines from the public
// Google News RSS feed.
type GoogleNews struct {
	parser   *gofeed.Parser
	endpoint string
	lang     string
	country  string
}

// NewGoogleNews creates a headline source. region uses the same
// "<country>-<lang>" form as the DuckDuckGo region code (e.g. "in-en").
func NewGoogleNews(factory *network.ClientFactory, region string, timeout time.Duration) *GoogleNews {
	parser := gofeed.NewParser()
	parser.Client = factory.NewHTTPClient(timeout)

	country, lang := splitRegion(region)
	return &GoogleNews{
		parser:   parser,
		endpoint: googleNewsEndpoint,
		lang:     lang,
		country:  country,
	}
}

func (g *GoogleNews) Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error) {
	params := url.Values{
		"q":    {query},
		"hl":   {g.lang + "-" + g.country},
		"gl":   {g.country},
		"ceid": {g.country + ":" + g.lang},
	}
	endpoint := g.endpoint + "?" + params.Encode()

	feed, err := g.parser.ParseURLWithContext(endpoint, ctx)
	if err != nil {
		return nil, fmt.Errorf("news feed fetch failed: %w", err)
	}

	results := make([]model.SearchResult, 0, maxResults)
	for _, item := range feed.Items {
		if len(results) >= maxResults {
			break
		}
		if item == nil || item.Title == "" {
			continue
		}
		results = append(results, model.SearchResult{
			Title:   sanitizer.StripTags(item.Title),
			URL:     item.Link,
			Snippet: sanitizer.CleanSnippet(item.Description),
		})
	}
	return results, nil
}

func splitRegion(region string) (country, lang string) {
	parts := strings.SplitN(region, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "IN", "en"
	}
	return strings.ToUpper(parts[0]), strings.ToLower(parts[1])
}
