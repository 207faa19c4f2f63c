package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runesKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRenderPopupKeepsCanvasSize(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat("abcdefghij\n", 8), "\n")
	got := renderPopup(base, "hello", 10, 8)

	lines := strings.Split(got, "\n")
	if len(lines) != 8 {
		t.Fatalf("popup canvas has %d lines, want 8", len(lines))
	}
	if !strings.Contains(got, "hello") {
		t.Fatalf("popup content missing from canvas")
	}
	// the corners stay base content
	if !strings.HasPrefix(lines[0], "abcdefghij") {
		t.Fatalf("top base line overwritten: %q", lines[0])
	}
}

func TestRenderPopupDegenerateCanvas(t *testing.T) {
	if got := renderPopup("base", "x", 0, 0); got != "base" {
		t.Fatalf("zero canvas = %q", got)
	}
}

func TestCardBounds(t *testing.T) {
	start, end, ok := cardBounds("   cards   ", 11)
	if !ok || start != 3 || end != 8 {
		t.Fatalf("cardBounds = (%d, %d, %v)", start, end, ok)
	}
	if _, _, ok := cardBounds("          ", 10); ok {
		t.Fatalf("blank line reported a card")
	}
}
