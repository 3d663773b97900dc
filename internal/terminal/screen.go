package terminal

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/nmaint/nmaint/internal/render"
)

var (
	screenItemStyle     = tcell.StyleDefault
	screenSelectedStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true)
	screenFooterStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Screen drives a tcell screen. tcell handles raw mode and the alternate
// screen as part of Init and Fini.
type Screen struct {
	screen tcell.Screen
	active bool
	closed bool
}

// NewScreen wraps an existing tcell screen. Init is deferred to Enter.
func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

// NewTerminalScreen builds a driver on the process terminal.
func NewTerminalScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreen(screen), nil
}

// Enter implements Device.
func (s *Screen) Enter() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.active = true
	return nil
}

// Leave implements Device.
func (s *Screen) Leave() error {
	if !s.active {
		return nil
	}
	s.active = false
	s.closed = true
	s.screen.Fini()
	return nil
}

// ReadKey implements Device. Resize events come back as KeyOther so the
// caller redraws without changing state.
func (s *Screen) ReadKey() (Key, error) {
	if s.closed {
		return Key{}, ErrClosed
	}
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return Key{}, ErrClosed
		case *tcell.EventKey:
			return keyFromTcell(ev), nil
		case *tcell.EventResize:
			s.screen.Sync()
			return Key{Code: KeyOther, Name: "resize"}, nil
		}
	}
}

// Present implements Device.
func (s *Screen) Present(frame render.Frame) error {
	if !s.active {
		return fmt.Errorf("present: %w", ErrClosed)
	}
	s.screen.Clear()
	width, _ := s.screen.Size()
	y := 0
	for _, row := range frame.Rows {
		style := screenItemStyle
		if row.Highlighted {
			style = screenSelectedStyle
		}
		x := s.drawText(0, y, row.Label, style)
		if row.Highlighted {
			for ; x < width; x++ {
				s.screen.SetContent(x, y, ' ', nil, style)
			}
		}
		y++
	}
	if frame.Footer != "" {
		s.drawText(0, y+1, ansi.Strip(frame.Footer), screenFooterStyle)
	}
	s.screen.Show()
	return nil
}

func (s *Screen) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func keyFromTcell(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyEnter:
		return Key{Code: KeyEnter}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) == 0 {
			return RuneKey(ev.Rune())
		}
	}
	return Key{Code: KeyOther, Name: ev.Name()}
}
