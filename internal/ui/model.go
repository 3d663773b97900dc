package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nmaint/nmaint/internal/render"
	"github.com/nmaint/nmaint/internal/terminal"
	"github.com/nmaint/nmaint/internal/theme"
)

type readyMsg struct{}

type frameMsg struct {
	frame render.Frame
}

// Model relays key events out of Bubble Tea and shows the frames sent in.
type Model struct {
	frame  render.Frame
	width  int
	styles *theme.Styles
	keys   *KeyQueue
	ready  func()
}

// NewModel builds a model that queues decoded keys on keys and calls ready
// once the program has started.
func NewModel(styles *theme.Styles, keys *KeyQueue, ready func()) *Model {
	if styles == nil {
		styles = theme.Default()
	}
	return &Model{styles: styles, keys: keys, ready: ready}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return readyMsg{} }
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case readyMsg:
		if m.ready != nil {
			m.ready()
			m.ready = nil
		}
	case tea.KeyMsg:
		for _, k := range KeysFromMsg(msg) {
			m.forward(k)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.forward(terminal.Key{Code: terminal.KeyOther, Name: "resize"})
	case frameMsg:
		m.frame = msg.frame
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.frame.View(m.styles, m.width)
}

func (m *Model) forward(k terminal.Key) {
	if m.keys != nil {
		m.keys.Push(k)
	}
}

// KeysFromMsg splits a key message into one terminal.Key per key press.
// Bubble Tea merges printable characters read together into a single
// KeyRunes message.
func KeysFromMsg(msg tea.KeyMsg) []terminal.Key {
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 1 {
		keys := make([]terminal.Key, len(msg.Runes))
		for i, r := range msg.Runes {
			keys[i] = terminal.RuneKey(r)
		}
		return keys
	}
	return []terminal.Key{KeyFromMsg(msg)}
}

// KeyFromMsg converts a Bubble Tea key message into a terminal.Key.
func KeyFromMsg(msg tea.KeyMsg) terminal.Key {
	switch msg.Type {
	case tea.KeyEnter:
		return terminal.Key{Code: terminal.KeyEnter}
	case tea.KeySpace:
		return terminal.RuneKey(' ')
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt && !msg.Paste {
			return terminal.RuneKey(msg.Runes[0])
		}
	}
	return terminal.Key{Code: terminal.KeyOther, Name: msg.String()}
}
