// Package terminal owns the boundary with the terminal device. A Device
// switches the terminal into raw input on the alternate screen, hands out one
// key event per blocking read and draws frames.
//
// Drivers:
//   - TTY talks to the controlling terminal directly through golang.org/x/term
//     and ANSI sequences.
//   - Screen wraps a tcell.Screen.
//
// Enter and Leave are paired: every successful Enter must be followed by
// exactly one Leave. Leave is safe to call again but callers should not rely
// on it.
package terminal

import (
	"errors"
	"fmt"

	"github.com/nmaint/nmaint/internal/render"
)

// ErrNotTerminal is returned by Enter when the input is not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// ErrClosed is returned by ReadKey once the device has been released.
var ErrClosed = errors.New("terminal closed")

// Device is the terminal boundary consumed by the application loop.
type Device interface {
	// Enter switches to raw input and the alternate screen.
	Enter() error
	// Leave restores line-buffered input and the primary screen.
	Leave() error
	// ReadKey blocks until one input event is available.
	ReadKey() (Key, error)
	// Present draws frame, replacing whatever was shown before.
	Present(frame render.Frame) error
}

// KeyCode classifies a key event.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyRune
	KeyEnter
)

// Key is a decoded input event. Name describes KeyOther events for logging.
type Key struct {
	Code KeyCode
	Rune rune
	Name string
}

// RuneKey returns the key event for a printable character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// String names the key the way Bubble Tea names key messages, so a single
// key.Binding set matches events from every driver.
func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	}
	if k.Name != "" {
		return k.Name
	}
	return fmt.Sprintf("key(%d)", k.Code)
}
