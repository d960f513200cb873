// Package view composes rendering models for the web page: result cards,
// the analytics panel, and the selector options.
package view

import (
	"fmt"
	"strconv"

	"github.com/sustainsearch/midori/internal/controller"
	"github.com/sustainsearch/midori/internal/highlight"
	"github.com/sustainsearch/midori/internal/models"
	"github.com/sustainsearch/midori/internal/score"
	"github.com/sustainsearch/midori/internal/sentiment"
)

// ModeOption is one entry of the mode toggle.
type ModeOption struct {
	ID       models.SearchMode
	Label    string
	Icon     string
	Desc     string
	Selected bool
}

// FilterOption is one entry of the sentiment filter toggle.
type FilterOption struct {
	ID       models.SentimentFilter
	Label    string
	Icon     string
	Selected bool
}

// SentimentView is the per-card sentiment indicator.
type SentimentView struct {
	Label string
	Icon  string
	Class string
	Score string
	Bar   sentiment.BarVisual
}

// Card is one rendered search result.
type Card struct {
	Key       string
	Title     string
	URL       string
	Snippet   []highlight.Segment
	Sentiment SentimentView
	Badges    []score.Badge
}

// Analytics is the sentiment distribution panel over the current result set.
type Analytics struct {
	Positive      int
	Neutral       int
	Critical      int
	PositiveShare float64
	NeutralShare  float64
	CriticalShare float64
	Mean          string
	MeanClass     string
}

// Page is the full render model for the search page.
type Page struct {
	State           controller.State
	Modes           []ModeOption
	Filters         []FilterOption
	ModeDesc        string
	FilterQualifier string
	Cards           []Card
	Analytics       *Analytics
	NoResultsNotice string
}

// BuildPage assembles the page model from a session snapshot. Highlighting
// and score badges are keyed on the last-executed query and mode, never the
// live selections.
func BuildPage(st controller.State) Page {
	p := Page{
		State:    st,
		Modes:    modeOptions(st.Mode),
		Filters:  filterOptions(st.Filter),
		ModeDesc: st.Mode.Description(),
	}
	if st.Filter != models.FilterAll {
		p.FilterQualifier = fmt.Sprintf("showing %s news only", st.Filter)
	}
	p.Cards = buildCards(st)
	p.Analytics = buildAnalytics(st.Results)
	p.NoResultsNotice = noResultsNotice(st)
	return p
}

func buildCards(st controller.State) []Card {
	active := st.HighlightActive()
	cards := make([]Card, 0, len(st.Results))
	for i, res := range st.Results {
		key := res.ID
		if key == "" {
			// Positional fallback; good enough as a transient render key.
			key = strconv.Itoa(i)
		}
		cards = append(cards, Card{
			Key:       key,
			Title:     res.Title,
			URL:       res.URL,
			Snippet:   highlight.Highlight(res.Content, st.SearchedQuery, active),
			Sentiment: sentimentView(res),
			Badges:    score.FromWire(st.SearchedMode, res.ScoreDetail).Badges(),
		})
	}
	return cards
}

// sentimentView builds the label badge and mini bar for one result. The
// badge trusts the upstream label while the bar color is thresholded from
// the raw score; the two can disagree near the boundaries and that is kept
// as-is.
func sentimentView(res models.SearchResult) SentimentView {
	v := SentimentView{
		Icon:  sentiment.LabelIcon(res.SentimentLabel),
		Score: fmt.Sprintf("%.1f", res.Sentiment),
		Bar:   sentiment.Bar(res.Sentiment),
	}
	switch res.SentimentLabel {
	case models.SentimentPositive:
		v.Label, v.Class = "Positive", "positive"
	case models.SentimentNeutral:
		v.Label, v.Class = "Neutral", "neutral"
	case models.SentimentCritical:
		v.Label, v.Class = "Critical", "critical"
	default:
		// Unknown labels still render, with a neutral-gray style.
		v.Label, v.Class = string(res.SentimentLabel), "unknown"
	}
	return v
}

func buildAnalytics(results []models.SearchResult) *Analytics {
	d := sentiment.Aggregate(results)
	if d == nil {
		return nil
	}
	return &Analytics{
		Positive:      d.Positive,
		Neutral:       d.Neutral,
		Critical:      d.Critical,
		PositiveShare: d.SharePercent(d.Positive),
		NeutralShare:  d.SharePercent(d.Neutral),
		CriticalShare: d.SharePercent(d.Critical),
		Mean:          fmt.Sprintf("%.2f", d.Mean),
		MeanClass:     string(d.MeanBucket()),
	}
}

func noResultsNotice(st controller.State) string {
	if st.InFlight || !st.Searched() || len(st.Results) > 0 {
		return ""
	}
	msg := fmt.Sprintf("No results found for %q", st.SearchedQuery)
	if st.Filter != models.FilterAll {
		msg += fmt.Sprintf(" with %s sentiment", st.Filter)
	}
	return msg + "."
}

func modeOptions(selected models.SearchMode) []ModeOption {
	modes := []ModeOption{
		{ID: models.ModeHybrid, Label: "Hybrid", Icon: "⚡"},
		{ID: models.ModeVector, Label: "Semantic", Icon: "🧠"},
		{ID: models.ModeBM25, Label: "Keyword", Icon: "🔑"},
	}
	for i := range modes {
		modes[i].Desc = modes[i].ID.Description()
		modes[i].Selected = modes[i].ID == selected
	}
	return modes
}

func filterOptions(selected models.SentimentFilter) []FilterOption {
	filters := []FilterOption{
		{ID: models.FilterAll, Label: "All", Icon: "🌐"},
		{ID: models.FilterPositive, Label: "Positive", Icon: "🌱"},
		{ID: models.FilterNeutral, Label: "Neutral", Icon: "⚖️"},
		{ID: models.FilterCritical, Label: "Critical", Icon: "⚠️"},
	}
	for i := range filters {
		filters[i].Selected = filters[i].ID == selected
	}
	return filters
}
