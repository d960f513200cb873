package models

import "testing"

func TestSearchRequestValidate(t *testing.T) {
	req := &SearchRequest{Query: "amazon drought"}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if req.Mode != ModeHybrid {
		t.Errorf("mode should default to hybrid, got %q", req.Mode)
	}
	if req.Filter != FilterAll {
		t.Errorf("filter should default to all, got %q", req.Filter)
	}
	if req.Limit != DefaultResultLimit {
		t.Errorf("limit should default to %d, got %d", DefaultResultLimit, req.Limit)
	}
}

func TestSearchRequestValidate_emptyQuery(t *testing.T) {
	req := &SearchRequest{}
	if err := req.Validate(); err == nil {
		t.Error("empty query should be rejected")
	}
}

func TestSearchRequestValidate_badMode(t *testing.T) {
	req := &SearchRequest{Query: "x", Mode: "fuzzy"}
	if err := req.Validate(); err == nil {
		t.Error("unknown mode should be rejected")
	}
}

func TestParseSearchMode(t *testing.T) {
	for _, s := range []string{"hybrid", "vector", "bm25"} {
		if _, err := ParseSearchMode(s); err != nil {
			t.Errorf("ParseSearchMode(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseSearchMode("semantic"); err == nil {
		t.Error("ParseSearchMode should reject unknown modes")
	}
}

func TestParseSentimentFilter(t *testing.T) {
	for _, s := range []string{"all", "positive", "neutral", "critical"} {
		if _, err := ParseSentimentFilter(s); err != nil {
			t.Errorf("ParseSentimentFilter(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseSentimentFilter("angry"); err == nil {
		t.Error("ParseSentimentFilter should reject unknown filters")
	}
}

func TestSentimentLabelKnown(t *testing.T) {
	if !SentimentPositive.Known() || !SentimentNeutral.Known() || !SentimentCritical.Known() {
		t.Error("contract labels should be known")
	}
	if SentimentLabel("mixed").Known() {
		t.Error("unknown label should not be known")
	}
	if SentimentLabel("").Known() {
		t.Error("empty label should not be known")
	}
}
