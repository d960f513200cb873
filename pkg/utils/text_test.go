package utils

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	if Truncate("carbon", 10) != "carbon" {
		t.Error("short string unchanged")
	}
	if Truncate("carbon capture and storage", 6) != "carbon..." {
		t.Errorf("got %s", Truncate("carbon capture and storage", 6))
	}
	if Truncate("x", 0) != "x" {
		t.Error("maxLen 0 returns as-is")
	}
	if Truncate("", 5) != "" {
		t.Error("empty string unchanged")
	}
}

func TestTruncate_runeBoundary(t *testing.T) {
	// A cut that lands inside a multi-byte rune must back up to its start.
	got := Truncate("🌱🌱🌱", 5)
	if !utf8.ValidString(got) {
		t.Errorf("truncation split a rune: %q", got)
	}
	if got != "🌱..." {
		t.Errorf("got %q", got)
	}
	if Truncate("⚠️ alert", 100) != "⚠️ alert" {
		t.Error("short multi-byte string unchanged")
	}
}
