// Package highlight partitions document text into matched and unmatched
// segments for query-term highlighting.
package highlight

import (
	"regexp"
	"strings"
)

// Segment is a contiguous run of text classified as matched or not.
type Segment struct {
	Text    string
	Matched bool
}

// Highlight splits text into segments that alternate between query-term
// matches and gaps, in left-to-right document order. Concatenating the
// segments' Text reproduces text exactly.
//
// When active is false or query is blank, the whole text is returned as a
// single unmatched segment. Query terms are whitespace-split and matched
// case-insensitively as literal strings: every pattern metacharacter is
// escaped, so user input cannot form an unintended expression.
// Empty text yields an empty sequence.
func Highlight(text, query string, active bool) []Segment {
	if text == "" {
		return nil
	}
	if !active || strings.TrimSpace(query) == "" {
		return []Segment{{Text: text}}
	}

	terms := strings.Fields(query)
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = regexp.QuoteMeta(term)
	}
	re, err := regexp.Compile("(?i)" + strings.Join(quoted, "|"))
	if err != nil {
		// QuoteMeta makes this unreachable in practice; degrade to no
		// highlighting rather than fail the render.
		return []Segment{{Text: text}}
	}

	var segments []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		// Zero-width matches cannot occur: every term is non-empty.
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Matched: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}
