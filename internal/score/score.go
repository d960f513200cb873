// Package score renders mode-specific relevance explanations as badges.
//
// The upstream score_detail payload is loosely shaped: only the fields
// relevant to the mode that produced a result are expected to be present.
// Instead of probing optional fields at render time, the wire payload is
// converted once into a variant keyed on the executed mode, and each variant
// knows how to render itself.
package score

import (
	"fmt"
	"math"

	"github.com/sustainsearch/midori/internal/models"
)

// Kind identifies which retrieval signal a badge explains. The web template
// and the terminal writer map kinds to their own styling.
type Kind string

const (
	KindFused   Kind = "fused"
	KindKeyword Kind = "keyword"
	KindVector  Kind = "vector"
)

// Badge is one rendered explanation chip. Primary marks the badge that
// carries the headline score for the executed mode.
type Badge struct {
	Kind    Kind
	Icon    string
	Text    string
	Primary bool
}

// Detail is the mode-tagged score explanation for one result.
type Detail interface {
	// Badges renders the explanation chips in display order.
	Badges() []Badge
}

// HybridDetail explains a fused-rank result. Fused is NaN when the upstream
// omitted the fused score; the rank fields are 1-based with zero meaning the
// result did not appear in that ranking.
type HybridDetail struct {
	Fused      float64
	BM25Rank   int
	VectorRank int
}

// BM25Detail explains a keyword-rank result.
type BM25Detail struct {
	Rank int
}

// VectorDetail explains a vector-rank result.
type VectorDetail struct {
	Rank int
}

// FromWire builds the Detail variant for the mode that executed the search.
// The dispatch is mode-driven, not shape-driven: fields irrelevant to the
// mode are dropped here even when the upstream happened to send them.
func FromWire(mode models.SearchMode, wire models.ScoreDetail) Detail {
	switch mode {
	case models.ModeBM25:
		return BM25Detail{Rank: wire.BM25Rank}
	case models.ModeVector:
		return VectorDetail{Rank: wire.VectorRank}
	default:
		fused := math.NaN()
		if wire.RRFScore != nil {
			fused = *wire.RRFScore
		}
		return HybridDetail{Fused: fused, BM25Rank: wire.BM25Rank, VectorRank: wire.VectorRank}
	}
}

// Badges renders the fused badge, then the keyword and vector rank badges
// when those rankings contributed. Zero, one, or two secondary badges may
// appear.
func (d HybridDetail) Badges() []Badge {
	badges := []Badge{{Kind: KindFused, Icon: "⚡", Text: "RRF " + formatFused(d.Fused), Primary: true}}
	if d.BM25Rank > 0 {
		badges = append(badges, Badge{Kind: KindKeyword, Icon: "🔑", Text: fmt.Sprintf("#%d", d.BM25Rank)})
	}
	if d.VectorRank > 0 {
		badges = append(badges, Badge{Kind: KindVector, Icon: "🧠", Text: fmt.Sprintf("#%d", d.VectorRank)})
	}
	return badges
}

func (d BM25Detail) Badges() []Badge {
	return []Badge{{Kind: KindKeyword, Icon: "🔑", Text: "BM25 Rank " + formatRank(d.Rank), Primary: true}}
}

func (d VectorDetail) Badges() []Badge {
	return []Badge{{Kind: KindVector, Icon: "🧠", Text: "Vector Rank " + formatRank(d.Rank), Primary: true}}
}

// formatFused renders a fused score to 4 decimal places, or a placeholder
// when the upstream omitted it.
func formatFused(v float64) string {
	if math.IsNaN(v) {
		return "–"
	}
	return fmt.Sprintf("%.4f", v)
}

// formatRank renders a 1-based rank, or a placeholder for an absent rank.
func formatRank(rank int) string {
	if rank <= 0 {
		return "#–"
	}
	return fmt.Sprintf("#%d", rank)
}
