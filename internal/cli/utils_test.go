package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sustainsearch/midori/internal/history"
	"github.com/sustainsearch/midori/internal/models"
)

func sampleResponse() *models.SearchResponse {
	rrf := 0.0328
	return &models.SearchResponse{
		Results: []models.SearchResult{
			{
				ID:             "doc-1",
				Title:          "Amazon rainforest",
				URL:            "https://example.org/a",
				Content:        "Severe drought hits the Amazon basin.",
				Score:          0.03,
				ScoreDetail:    models.ScoreDetail{RRFScore: &rrf, BM25Rank: 1},
				Sentiment:      -0.8,
				SentimentLabel: models.SentimentCritical,
			},
		},
	}
}

func TestWriteSearchResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, models.ModeHybrid, sampleResponse(), OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded models.SearchResponse
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].ID != "doc-1" {
		t.Errorf("unexpected round-trip: %+v", decoded.Results)
	}
}

func TestWriteSearchResults_text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, models.ModeHybrid, sampleResponse(), OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Found 1 results") {
		t.Error("result count missing")
	}
	if !strings.Contains(out, "Amazon rainforest") {
		t.Error("title missing")
	}
	if !strings.Contains(out, "RRF 0.0328") || !strings.Contains(out, "#1") {
		t.Errorf("score badges missing:\n%s", out)
	}
	if !strings.Contains(out, "critical") {
		t.Error("sentiment label missing")
	}
	if !strings.Contains(out, "1 critical") {
		t.Error("sentiment summary missing")
	}
}

func TestSentimentBar(t *testing.T) {
	if got := SentimentBar(1.0, 10); got != "["+strings.Repeat("■", 10)+"]" {
		t.Errorf("full bar expected, got %s", got)
	}
	if got := SentimentBar(-1.0, 10); got != "["+strings.Repeat("·", 10)+"]" {
		t.Errorf("empty bar expected, got %s", got)
	}
	mid := SentimentBar(0, 10)
	if !strings.HasPrefix(mid, "["+strings.Repeat("■", 5)+"·") {
		t.Errorf("half bar expected, got %s", mid)
	}
	if SentimentBar(0.5, 0) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	WriteHistory(&buf, nil)
	if !strings.Contains(buf.String(), "No searches recorded.") {
		t.Error("empty history message missing")
	}

	buf.Reset()
	WriteHistory(&buf, []history.SearchRecord{{
		Query:       "carbon policy",
		Mode:        "hybrid",
		Filter:      "all",
		ResultCount: 8,
		DurationMs:  120,
		CreatedAt:   time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
	}})
	out := buf.String()
	if !strings.Contains(out, "carbon policy") || !strings.Contains(out, "hybrid") {
		t.Errorf("history line incomplete:\n%s", out)
	}
}
