package sentiment

import "github.com/sustainsearch/midori/internal/models"

// Distribution summarizes sentiment over one result set: per-label counts
// and the arithmetic mean of the raw scores. Counts group on the
// upstream-provided label; the mean uses every result's score regardless of
// label.
type Distribution struct {
	Positive int
	Neutral  int
	Critical int
	Mean     float64
	total    int
}

// Total is the number of results the distribution was computed over,
// including results whose label was unknown.
func (d *Distribution) Total() int { return d.total }

// SharePercent returns the stacked-bar width for n results out of the total,
// in percent.
func (d *Distribution) SharePercent(n int) float64 {
	if d.total == 0 {
		return 0
	}
	return float64(n) / float64(d.total) * 100
}

// MeanBucket classifies the mean score with the same thresholds as the
// per-document bar color.
func (d *Distribution) MeanBucket() Bucket { return BucketFor(d.Mean) }

// Aggregate computes the sentiment distribution over results. Returns nil
// for an empty input: there are no analytics to show and the caller must
// suppress the panel. Labels outside the known set are counted nowhere.
// The computation is pure and order-independent.
func Aggregate(results []models.SearchResult) *Distribution {
	if len(results) == 0 {
		return nil
	}
	d := &Distribution{total: len(results)}
	var sum float64
	for _, r := range results {
		sum += r.Sentiment
		switch r.SentimentLabel {
		case models.SentimentPositive:
			d.Positive++
		case models.SentimentNeutral:
			d.Neutral++
		case models.SentimentCritical:
			d.Critical++
		}
	}
	d.Mean = sum / float64(len(results))
	return d
}
