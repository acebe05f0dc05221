package search

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Noooste/azuretls-client"
	"golang.org/x/net/html"

	"tradeops/backend/internal/config"
	"tradeops/backend/internal/model"
	"tradeops/backend/pkg/network"
)

const duckDuckGoEndpoint = "https://html.duckduckgo.com/html/"

// DuckDuckGo scrapes the HTML (non-JS) results page. The endpoint rejects
// the default Go client fingerprint, so requests go through the
// Chrome-fingerprint azuretls session from pkg/network.
type DuckDuckGo struct {
	factory *network.ClientFactory
	region  string
	timeout time.Duration
}

func NewDuckDuckGo(factory *network.ClientFactory, region string, timeout time.Duration) *DuckDuckGo {
	return &DuckDuckGo{
		factory: factory,
		region:  region,
		timeout: timeout,
	}
}

func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error) {
	params := url.Values{
		"q":  {query},
		"kl": {d.region},
	}
	endpoint := duckDuckGoEndpoint + "?" + params.Encode()

	session := d.factory.NewAzureSession(d.timeout)
	defer session.Close()

	headers := azuretls.OrderedHeaders{
		{"accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
		{"accept-language", "en-IN,en;q=0.9"},
		{"sec-ch-ua", config.ChromeSecChUa},
		{"sec-fetch-dest", "document"},
		{"sec-fetch-mode", "navigate"},
		{"user-agent", config.ChromeUserAgent},
	}

	resp, err := session.Do(&azuretls.Request{
		Method:         http.MethodGet,
		Url:            endpoint,
		OrderedHeaders: headers,
	})
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search HTTP %d", resp.StatusCode)
	}

	return parseResultsPage(resp.Body, maxResults), nil
}

// parseResultsPage extracts result titles, links and snippets from the
// DuckDuckGo HTML page. Unknown markup is skipped rather than failing the
// whole page.
func parseResultsPage(body []byte, maxResults int) []model.SearchResult {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var results []model.SearchResult
	walkTree(doc, func(n *html.Node) {
		if len(results) >= maxResults {
			return
		}
		if n.Data != "div" || !hasClassToken(n, "result") {
			return
		}

		title, href := findResultAnchor(n)
		snippet := findSnippet(n)
		if title == "" && snippet == "" {
			return
		}
		results = append(results, model.SearchResult{
			Title:   title,
			URL:     resolveRedirect(href),
			Snippet: snippet,
		})
	})
	return results
}

func findResultAnchor(n *html.Node) (title, href string) {
	walkTree(n, func(c *html.Node) {
		if title != "" || c.Data != "a" || !hasClassToken(c, "result__a") {
			return
		}
		title = strings.TrimSpace(textContent(c))
		for _, attr := range c.Attr {
			if attr.Key == "href" {
				href = attr.Val
			}
		}
	})
	return title, href
}

func findSnippet(n *html.Node) string {
	var snippet string
	walkTree(n, func(c *html.Node) {
		if snippet != "" || !hasClassToken(c, "result__snippet") {
			return
		}
		snippet = strings.TrimSpace(textContent(c))
	})
	return snippet
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links.
func resolveRedirect(href string) string {
	if href == "" {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if strings.HasSuffix(parsed.Host, "duckduckgo.com") || (parsed.Host == "" && strings.HasPrefix(parsed.Path, "/l/")) {
		if target := parsed.Query().Get("uddg"); target != "" {
			return target
		}
	}
	return href
}

// walkTree traverses all descendant element nodes and calls fn for each.
func walkTree(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkTree(c, fn)
	}
}

func hasClassToken(n *html.Node, token string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, field := range strings.Fields(attr.Val) {
			if field == token {
				return true
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var visit func(*html.Node)
	visit = func(c *html.Node) {
		if c.Type == html.TextNode {
			buf.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)
	return buf.String()
}
