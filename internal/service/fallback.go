package service

import (
	"fmt"
	"strings"
	"time"
)

const fallbackTimeLayout = "2006-01-02 15:04 MST"

// fallbackReport builds a deterministic Markdown report from the sector name
// and time alone. It is the availability backstop when the generation
// backend is unreachable, so it must not depend on any external input and
// must always contain the four mandatory sections.
func fallbackReport(sector string, now time.Time) string {
	display := displaySector(sector)

	var buf strings.Builder
	fmt.Fprintf(&buf, "# %s Sector Analysis (Fallback)\n\n", display)
	buf.WriteString("> Live AI analysis is temporarily unavailable. This report was generated locally without fresh market data.\n\n")

	buf.WriteString("## Current Trends\n")
	fmt.Fprintf(&buf, "Live market data for the %s sector could not be analyzed right now. Recent trend information should be confirmed manually before trading.\n\n", display)

	buf.WriteString("## Buy Opportunities\n")
	fmt.Fprintf(&buf, "- Review the Nifty %s index constituents for candidates once live analysis returns.\n", display)
	buf.WriteString("- Prefer established large-cap names while sector-specific signals are unavailable.\n\n")

	buf.WriteString("## Sell Risks\n")
	buf.WriteString("- Without fresh data, position changes carry elevated uncertainty.\n")
	buf.WriteString("- Avoid acting on stale signals; re-check once full analysis is restored.\n\n")

	buf.WriteString("## Trade Summary\n")
	fmt.Fprintf(&buf, "No automated recommendation today. Manual check: search \"%s India stock news\" and retry this analysis later.\n\n", strings.ToLower(display))

	fmt.Fprintf(&buf, "_Generated: %s_\n", now.Format(fallbackTimeLayout))
	return buf.String()
}
