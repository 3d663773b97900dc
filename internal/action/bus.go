// Package action routes activated menu entries to the handlers that carry out
// the actual maintenance work.
package action

import (
	"fmt"

	"github.com/nmaint/nmaint/internal/logging/events"
	"github.com/nmaint/nmaint/internal/menu"
)

// Handler performs the work behind a menu meaning.
type Handler func(menu.Meaning) error

// Bus coordinates the execution of menu actions.
type Bus struct {
	handlers map[menu.Meaning]Handler
}

// New initialises a bus with no handlers registered.
func New() *Bus {
	return &Bus{handlers: make(map[menu.Meaning]Handler)}
}

// Register installs h for meaning, replacing any previous handler.
func (b *Bus) Register(meaning menu.Meaning, h Handler) {
	b.handlers[meaning] = h
}

// Dispatch runs the handler registered for meaning. Meanings without a handler
// are skipped.
func (b *Bus) Dispatch(meaning menu.Meaning) error {
	label := meaning.Label()
	events.Command.Queue(label)
	h, ok := b.handlers[meaning]
	if !ok || h == nil {
		events.Command.Skip(label)
		return nil
	}
	err := h(meaning)
	events.Command.Result(label, err)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	return nil
}
