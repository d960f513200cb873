package models

import "fmt"

// SearchMode is the retrieval strategy the user selects.
type SearchMode string

const (
	// ModeHybrid fuses keyword and vector rankings (reciprocal-rank fusion).
	ModeHybrid SearchMode = "hybrid"
	// ModeVector is semantic similarity search.
	ModeVector SearchMode = "vector"
	// ModeBM25 is exact keyword matching.
	ModeBM25 SearchMode = "bm25"
)

// ParseSearchMode validates a mode string from user input or a form value.
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(s) {
	case ModeHybrid, ModeVector, ModeBM25:
		return SearchMode(s), nil
	}
	return "", fmt.Errorf("unknown search mode %q", s)
}

// Description returns the short explanation shown under the mode toggle.
func (m SearchMode) Description() string {
	switch m {
	case ModeHybrid:
		return "BM25 + Semantic (best results)"
	case ModeVector:
		return "Vector similarity search"
	case ModeBM25:
		return "Exact keyword matching (BM25)"
	}
	return ""
}

// SentimentFilter restricts results to one sentiment class, or FilterAll.
type SentimentFilter string

const (
	FilterAll      SentimentFilter = "all"
	FilterPositive SentimentFilter = "positive"
	FilterNeutral  SentimentFilter = "neutral"
	FilterCritical SentimentFilter = "critical"
)

// ParseSentimentFilter validates a filter string from user input.
func ParseSentimentFilter(s string) (SentimentFilter, error) {
	switch SentimentFilter(s) {
	case FilterAll, FilterPositive, FilterNeutral, FilterCritical:
		return SentimentFilter(s), nil
	}
	return "", fmt.Errorf("unknown sentiment filter %q", s)
}

// DefaultResultLimit is the fixed page size for search requests.
const DefaultResultLimit = 8

// SearchRequest is one outbound request to the search service. It is
// ephemeral: built at submit time from the session's current selections and
// never persisted.
type SearchRequest struct {
	Query  string
	Mode   SearchMode
	Filter SentimentFilter
	Limit  int
}

// Validate ensures the request has valid fields and sets defaults.
// Returns an error if the query is empty; otherwise normalizes mode, filter,
// and limit.
func (r *SearchRequest) Validate() error {
	if r.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if r.Mode == "" {
		r.Mode = ModeHybrid
	}
	if _, err := ParseSearchMode(string(r.Mode)); err != nil {
		return err
	}
	if r.Filter == "" {
		r.Filter = FilterAll
	}
	if _, err := ParseSentimentFilter(string(r.Filter)); err != nil {
		return err
	}
	if r.Limit <= 0 {
		r.Limit = DefaultResultLimit
	}
	return nil
}
