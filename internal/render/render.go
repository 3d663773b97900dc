// Package render projects the menu model and focus into a Frame. Building a
// frame has no side effects; drawing it is left to a terminal driver.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nmaint/nmaint/internal/menu"
	"github.com/nmaint/nmaint/internal/theme"
)

const (
	checkedGlyph   = "[*] "
	uncheckedGlyph = "[ ] "
)

// Row is one line of the menu.
type Row struct {
	Label       string
	Highlighted bool
}

// Frame is a full drawable menu: rows in entry order plus an optional footer.
type Frame struct {
	Rows   []Row
	Footer string
}

// Render builds the frame for model with the row at focus highlighted.
func Render(model menu.Model, focus int) Frame {
	rows := make([]Row, len(model))
	for i, entry := range model {
		rows[i] = Row{
			Label:       Label(entry),
			Highlighted: i == focus,
		}
	}
	return Frame{Rows: rows}
}

// Label returns the display text for an entry, including the checkbox glyph
// when the entry is a checkbox.
func Label(entry menu.Entry) string {
	prefix := ""
	if on, ok := entry.Checked(); ok {
		prefix = uncheckedGlyph
		if on {
			prefix = checkedGlyph
		}
	}
	return prefix + entry.Meaning.Label()
}

// View renders the frame as a styled string. When width > 0 the highlighted
// row is padded so its background spans the full line.
func (f Frame) View(styles *theme.Styles, width int) string {
	lines := make([]string, 0, len(f.Rows)+2)
	for _, row := range f.Rows {
		style := styles.Item
		text := row.Label
		if row.Highlighted {
			style = styles.SelectedItem
			if width > 0 {
				if pad := width - lipgloss.Width(text); pad > 0 {
					text += strings.Repeat(" ", pad)
				}
			}
		}
		if style != nil {
			text = style.Render(text)
		}
		lines = append(lines, text)
	}
	if f.Footer != "" {
		// footer arrives styled by the help renderer
		lines = append(lines, "", f.Footer)
	}
	return strings.Join(lines, "\n")
}
