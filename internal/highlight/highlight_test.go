package highlight

import (
	"strings"
	"testing"
)

// reassemble concatenates segment texts; Highlight must be a lossless
// partition of its input.
func reassemble(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestHighlight_basicMatch(t *testing.T) {
	segs := Highlight("The Amazon rainforest faces a severe drought.", "amazon drought", true)
	if got := reassemble(segs); got != "The Amazon rainforest faces a severe drought." {
		t.Errorf("partition not lossless: %q", got)
	}
	var matched []string
	for _, s := range segs {
		if s.Matched {
			matched = append(matched, s.Text)
		}
	}
	if len(matched) != 2 || matched[0] != "Amazon" || matched[1] != "drought" {
		t.Errorf("unexpected matched segments: %v", matched)
	}
}

func TestHighlight_caseInsensitive(t *testing.T) {
	segs := Highlight("CARBON carbon Carbon", "carbon", true)
	count := 0
	for _, s := range segs {
		if s.Matched {
			count++
		}
	}
	if count != 3 {
		t.Errorf("expected 3 matches regardless of case, got %d", count)
	}
}

func TestHighlight_inactiveIdentity(t *testing.T) {
	segs := Highlight("some text", "some", false)
	if len(segs) != 1 || segs[0].Matched || segs[0].Text != "some text" {
		t.Errorf("inactive highlight should return single unmatched segment, got %v", segs)
	}
}

func TestHighlight_blankQueryIdentity(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		segs := Highlight("some text", q, true)
		if len(segs) != 1 || segs[0].Matched {
			t.Errorf("blank query %q should return single unmatched segment, got %v", q, segs)
		}
	}
}

func TestHighlight_emptyText(t *testing.T) {
	if segs := Highlight("", "query", true); len(segs) != 0 {
		t.Errorf("empty text should yield no segments, got %v", segs)
	}
}

func TestHighlight_metacharactersAreLiteral(t *testing.T) {
	segs := Highlight("net gain (2.5%) vs a+b", "(2.5%) a+b", true)
	if got := reassemble(segs); got != "net gain (2.5%) vs a+b" {
		t.Errorf("partition not lossless: %q", got)
	}
	var matched []string
	for _, s := range segs {
		if s.Matched {
			matched = append(matched, s.Text)
		}
	}
	if len(matched) != 2 || matched[0] != "(2.5%)" || matched[1] != "a+b" {
		t.Errorf("metacharacter terms should match literally, got %v", matched)
	}
}

func TestHighlight_onlyMetacharacters(t *testing.T) {
	segs := Highlight("just plain words", "*+?[", true)
	if len(segs) != 1 || segs[0].Matched {
		t.Errorf("non-occurring metacharacter query should leave text unmatched, got %v", segs)
	}
}

func TestHighlight_adjacentMatches(t *testing.T) {
	segs := Highlight("solarsolar", "solar", true)
	if got := reassemble(segs); got != "solarsolar" {
		t.Errorf("partition not lossless: %q", got)
	}
	if len(segs) != 2 || !segs[0].Matched || !segs[1].Matched {
		t.Errorf("adjacent matches should produce two matched segments, got %v", segs)
	}
}

func TestHighlight_deterministic(t *testing.T) {
	a := Highlight("wind and solar and wind", "wind solar", true)
	b := Highlight("wind and solar and wind", "wind solar", true)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic segment count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("segment %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
