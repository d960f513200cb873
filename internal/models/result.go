// Package models defines core data structures for search requests, results,
// and the upstream wire contract.
package models

// SentimentLabel is the upstream-assigned discrete sentiment class for a
// document. The service computes it independently of the continuous
// sentiment score; the UI trusts it as-is and never recomputes it.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentCritical SentimentLabel = "critical"
)

// Known reports whether the label is one of the three values the upstream
// contract defines. Anything else is rendered but excluded from analytics.
func (l SentimentLabel) Known() bool {
	switch l {
	case SentimentPositive, SentimentNeutral, SentimentCritical:
		return true
	}
	return false
}

// ScoreDetail is the wire shape of per-result scoring metadata. The upstream
// service populates only the fields relevant to the mode that produced the
// result, so every field is optional on the wire. RRFScore is a pointer to
// distinguish "absent" from a genuine 0.0 fused score; the rank fields are
// 1-based, so the zero value already means absent.
type ScoreDetail struct {
	RRFScore   *float64 `json:"rrf_score,omitempty"`
	BM25Rank   int      `json:"bm25_rank,omitempty"`
	VectorRank int      `json:"vector_rank,omitempty"`
}

// SearchResult is one retrieved document as returned by the search service.
// Content is an unescaped plain-text snippet; URL may be empty.
type SearchResult struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	URL            string         `json:"url"`
	Content        string         `json:"content"`
	Score          float64        `json:"score"`
	ScoreDetail    ScoreDetail    `json:"score_detail"`
	Sentiment      float64        `json:"sentiment"`
	SentimentLabel SentimentLabel `json:"sentiment_label"`
}

// SearchResponse is the body of a search response. A missing "results" key
// decodes to a nil slice, which callers treat as an empty result set.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
