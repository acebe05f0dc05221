package sanitizer

import (
	stdhtml "html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var strict = bluemonday.StrictPolicy()

// CleanSnippet removes all markup from a search-result or feed snippet and
// collapses runs of whitespace, leaving plain text suitable for embedding
// in a model prompt.
//
// Examples:
//   - "<b>Pharma</b> stocks &amp; outlook" -> "Pharma stocks & outlook"
//   - "Plain text"                         -> "Plain text"
func CleanSnippet(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	cleaned := strict.Sanitize(input)
	// The strict policy HTML-escapes the surviving text.
	cleaned = stdhtml.UnescapeString(cleaned)
	return strings.Join(strings.Fields(cleaned), " ")
}

// StripTags removes all HTML/XML tags from the input, keeping only text
// content. Uses an HTML tokenizer so malformed markup degrades to empty
// rather than leaking tags.
//
// Note: this is content cleanup, not an XSS defense.
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return ""
		}

		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}
