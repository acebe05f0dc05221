package ai

import "fmt"

// ReportSections are the headings every analysis report must contain,
// whether generated by the backend or by the fallback path.
var ReportSections = []string{
	"Current Trends",
	"Buy Opportunities",
	"Sell Risks",
	"Trade Summary",
}

const analysisSystemPrompt = `You are an equity analyst covering Indian markets. You write concise, actionable Markdown reports grounded strictly in the market data you are given.`

const analysisPromptTemplate = `Analyze the market data below for trade opportunities in this sector.

<sector>%s</sector>

<market_data>
%s
</market_data>

Generate a MARKDOWN report with exactly these sections:
## Current Trends
## Buy Opportunities
## Sell Risks
## Trade Summary

Name specific stocks where the data supports it, keep the analysis focused on Indian equities, and make the Trade Summary actionable today.`

// GetAnalysisSystemPrompt returns the system prompt for sector analysis.
func GetAnalysisSystemPrompt() string {
	return analysisSystemPrompt
}

// GetAnalysisPrompt builds the user prompt embedding sector and collected
// market data.
func GetAnalysisPrompt(sector, marketData string) string {
	return fmt.Sprintf(analysisPromptTemplate, sector, marketData)
}
