// Package sentiment maps sentiment scores to visual encodings and computes
// distribution analytics over a result set.
package sentiment

import (
	"github.com/sustainsearch/midori/internal/models"
	"github.com/sustainsearch/midori/pkg/utils"
)

// Bucket is the discrete color class for a sentiment score.
type Bucket string

const (
	BucketGreen Bucket = "green"
	BucketAmber Bucket = "amber"
	BucketRed   Bucket = "red"
)

// BarVisual is the rendered form of a sentiment score: a bar fill in whole
// percent and a color bucket.
type BarVisual struct {
	FillPercent int
	Color       Bucket
}

// BucketFor classifies a sentiment score. The outer intervals are closed:
// 0.5 is green and -0.5 is red; the open band between them is amber.
func BucketFor(value float64) Bucket {
	switch {
	case value >= 0.5:
		return BucketGreen
	case value <= -0.5:
		return BucketRed
	default:
		return BucketAmber
	}
}

// Bar maps a sentiment score in [-1, 1] to a bar visual. Out-of-range values
// are clamped before mapping so a malformed upstream score degrades instead
// of producing an impossible fill width.
func Bar(value float64) BarVisual {
	clamped := utils.Clamp(value, -1, 1)
	return BarVisual{
		FillPercent: utils.RoundPercent((clamped + 1) / 2),
		Color:       BucketFor(clamped),
	}
}

// LabelIcon returns the glyph shown next to a sentiment label.
func LabelIcon(label models.SentimentLabel) string {
	switch label {
	case models.SentimentPositive:
		return "🌱"
	case models.SentimentNeutral:
		return "⚖️"
	case models.SentimentCritical:
		return "⚠️"
	}
	return ""
}
