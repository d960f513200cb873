// Package cli provides CLI output utilities for Midori.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sustainsearch/midori/internal/history"
	"github.com/sustainsearch/midori/internal/models"
	"github.com/sustainsearch/midori/internal/score"
	"github.com/sustainsearch/midori/internal/sentiment"
	"github.com/sustainsearch/midori/pkg/utils"
)

// SearchOutputFormat is the format for search result output.
type SearchOutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText SearchOutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON SearchOutputFormat = "json"
)

const snippetLen = 200
const barWidth = 20

// WriteSearchResults writes search results to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteSearchResults(w io.Writer, mode models.SearchMode, response *models.SearchResponse, format SearchOutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeSearchResultsText(w, mode, response)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, mode models.SearchMode, response *models.SearchResponse) {
	fmt.Fprintf(w, "\nFound %d results\n\n", len(response.Results))
	for _, result := range response.Results {
		writeOneResult(w, mode, result)
	}
	if d := sentiment.Aggregate(response.Results); d != nil {
		fmt.Fprintf(w, "Sentiment: %d positive, %d neutral, %d critical | avg %.2f (%s)\n",
			d.Positive, d.Neutral, d.Critical, d.Mean, d.MeanBucket())
	}
}

func writeOneResult(w io.Writer, mode models.SearchMode, result models.SearchResult) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	if result.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", result.Title)
	}
	if result.URL != "" {
		fmt.Fprintf(w, "URL: %s\n", result.URL)
	}
	var badges []string
	for _, b := range score.FromWire(mode, result.ScoreDetail).Badges() {
		badges = append(badges, b.Text)
	}
	fmt.Fprintf(w, "Score: %s\n", strings.Join(badges, " | "))
	fmt.Fprintf(w, "Sentiment: %-8s %s %.1f\n",
		result.SentimentLabel, SentimentBar(result.Sentiment, barWidth), result.Sentiment)
	fmt.Fprintf(w, "\n%s\n\n", utils.Truncate(result.Content, snippetLen))
}

// SentimentBar renders a sentiment score as a fixed-width ASCII bar, filled
// proportionally to the score's position in [-1, 1].
func SentimentBar(value float64, width int) string {
	if width <= 0 {
		return ""
	}
	vis := sentiment.Bar(value)
	filled := vis.FillPercent * width / 100
	return "[" + strings.Repeat("■", filled) + strings.Repeat("·", width-filled) + "]"
}

// WriteHistory writes recent search records to w as a simple table.
func WriteHistory(w io.Writer, records []history.SearchRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No searches recorded.")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(w, "%s  %-8s %-8s %2d results %5dms  %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.Mode, rec.Filter, rec.ResultCount, rec.DurationMs, rec.Query)
	}
}
