package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/wizard"
)

func trimmed(s string) string { return strings.TrimSpace(s) }

func chop(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}

// digitIndex maps "1".."9" onto a tab index within bounds.
func digitIndex(key string, n int) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	idx := int(key[0] - '1')
	if idx >= n {
		return 0, false
	}
	return idx, true
}

// clampCursor folds a cursor back to the top after its list shrank.
func clampCursor(cursor, n int) int {
	if cursor >= n {
		return 0
	}
	return cursor
}

func nextIndex(tabs []string, current string) int {
	for i, t := range tabs {
		if t == current {
			return (i + 1) % len(tabs)
		}
	}
	return 0
}

func prevIndex(tabs []string, current string) int {
	for i, t := range tabs {
		if t == current {
			return (i - 1 + len(tabs)) % len(tabs)
		}
	}
	return 0
}

func roleIndex(r session.Role) int {
	for i, cand := range session.AllRoles {
		if cand == r {
			return i
		}
	}
	return 0
}

// formatIDR renders an amount as "Rp 35.000".
func formatIDR(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "Rp " + strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}

// formField describes one editable wizard field. Fields with options
// cycle with left/right instead of accepting typed input.
type formField struct {
	key     string
	label   string
	options []string
	digits  bool
}

// editField applies a key press to the selected field of a wizard form.
// Returns true when the key was consumed.
func editField(w *wizard.Wizard, f formField, m tea.KeyMsg) bool {
	if len(f.options) > 0 {
		switch m.String() {
		case "left", "h":
			w.Update(f.key, cycleOption(f.options, w.Field(f.key), -1))
			return true
		case "right", "l", " ":
			w.Update(f.key, cycleOption(f.options, w.Field(f.key), 1))
			return true
		}
		return false
	}
	switch m.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		w.Update(f.key, chop(w.Field(f.key)))
		return true
	case tea.KeySpace:
		if !f.digits {
			w.Update(f.key, w.Field(f.key)+" ")
			return true
		}
	case tea.KeyRunes:
		text := string(m.Runes)
		if f.digits {
			for _, r := range text {
				if r < '0' || r > '9' {
					return false
				}
			}
		}
		w.Update(f.key, w.Field(f.key)+text)
		return true
	}
	return false
}

func cycleOption(options []string, current string, step int) string {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(options)) % len(options)
	return options[idx]
}

// renderField draws one "Label : value" row with a cursor marker.
func renderField(w *wizard.Wizard, f formField, selected bool) string {
	marker := "  "
	if selected {
		marker = focusStyle.Render("▶ ")
	}
	value := w.Field(f.key)
	if len(f.options) > 0 {
		value = "◂ " + value + " ▸"
	} else if selected {
		value += "▌"
	}
	return fmt.Sprintf("%s%-18s %s", marker, f.label, value)
}
