// Package input maps terminal key events onto the small command alphabet the
// menu understands.
package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/nmaint/nmaint/internal/theme"
)

// Command is the outcome of decoding one key event.
type Command int

const (
	None Command = iota
	FocusUp
	FocusDown
	Toggle
	Quit
)

func (c Command) String() string {
	switch c {
	case None:
		return "none"
	case FocusUp:
		return "focus-up"
	case FocusDown:
		return "focus-down"
	case Toggle:
		return "toggle"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// KeyMap binds keys to commands.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the vi-style binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space/enter", "toggle"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// Decode maps a key event to a command. Keys without a binding decode to None.
func (k KeyMap) Decode(msg fmt.Stringer) Command {
	switch {
	case key.Matches(msg, k.Toggle):
		return Toggle
	case key.Matches(msg, k.Down):
		return FocusDown
	case key.Matches(msg, k.Up):
		return FocusUp
	case key.Matches(msg, k.Quit):
		return Quit
	}
	return None
}

// Decode maps msg through DefaultKeyMap.
func Decode(msg fmt.Stringer) Command {
	return DefaultKeyMap.Decode(msg)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up},
		{k.Toggle, k.Quit},
	}
}

// HelpView renders the one-line key hint shown in the footer.
func (k KeyMap) HelpView(styles *theme.Styles, width int) string {
	h := help.New()
	h.Width = width
	if styles != nil {
		if styles.HelpKey != nil {
			h.Styles.ShortKey = styles.HelpKey.Copy()
		}
		if styles.Footer != nil {
			h.Styles.ShortDesc = styles.Footer.Copy()
			h.Styles.ShortSeparator = styles.Footer.Copy()
		}
	}
	return h.View(k)
}
