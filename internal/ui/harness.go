package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nmaint/nmaint/internal/render"
	"github.com/nmaint/nmaint/internal/terminal"
	"github.com/nmaint/nmaint/internal/theme"
)

// Harness drives a Model without a running program. Keys the model forwards
// are collected in a queue that tests drain with Next.
type Harness struct {
	model  *Model
	keys   *KeyQueue
	readys int
}

// NewHarness builds a model and runs its Init command.
func NewHarness(styles *theme.Styles) *Harness {
	h := &Harness{keys: NewKeyQueue()}
	h.model = NewModel(styles, h.keys, func() { h.readys++ })
	h.run(h.model.Init())
	return h
}

// Send routes msg through Update and runs any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	_, cmd := h.model.Update(msg)
	h.run(cmd)
}

// Press sends a key message.
func (h *Harness) Press(msg tea.KeyMsg) {
	h.Send(msg)
}

// Show hands frame to the model as Program.Present would.
func (h *Harness) Show(frame render.Frame) {
	h.Send(frameMsg{frame: frame})
}

// Next pops the oldest forwarded key, reporting false when none is queued.
func (h *Harness) Next() (terminal.Key, bool) {
	return h.keys.Pop()
}

// Readys counts ready callbacks seen so far.
func (h *Harness) Readys() int {
	return h.readys
}

// View returns the current view string.
func (h *Harness) View() string {
	return h.model.View()
}

func (h *Harness) run(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = h.model.Update(msg)
	}
}
