package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderPopup centers card content over base and splices it in line by
// line, keeping the base visible around the card. ANSI-aware so styled
// cells keep their width.
func renderPopup(base, content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}
	card := cardStyle.Render(content)
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)

	baseLines := canvasLines(base, width, height)
	cardLines := canvasLines(placed, width, height)

	out := make([]string, height)
	for i := 0; i < height; i++ {
		start, end, ok := cardBounds(cardLines[i], width)
		if !ok {
			out[i] = baseLines[i]
			continue
		}
		left := ansi.Truncate(baseLines[i], start, "")
		mid := ansi.Truncate(cutColumns(cardLines[i], start), end-start, "")
		right := cutColumns(baseLines[i], end)
		out[i] = padCell(left+mid+right, width)
	}
	return strings.Join(out, "\n")
}

// cardBounds finds the visible span of the card on one placed line.
func cardBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	for start < len(plain) && plain[start] == ' ' {
		start++
	}
	end = len(trimmed)
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padCell(lines[i], width)
	}
	return lines
}

func cutColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	head := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, head)
}

func padCell(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
