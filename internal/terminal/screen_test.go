package terminal

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/nmaint/nmaint/internal/menu"
	"github.com/nmaint/nmaint/internal/render"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewScreen(sim)
	if err := s.Enter(); err != nil {
		t.Fatalf("enter: %v", err)
	}
	sim.SetSize(40, 10)
	t.Cleanup(func() { _ = s.Leave() })
	return s, sim
}

func readNonResize(t *testing.T, s *Screen) Key {
	t.Helper()
	for {
		key, err := s.ReadKey()
		if err != nil {
			t.Fatalf("read key: %v", err)
		}
		if key.Code == KeyOther && key.Name == "resize" {
			continue
		}
		return key
	}
}

func rowText(sim tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestScreenReadKeyTranslatesEvents(t *testing.T) {
	s, sim := newSimScreen(t)
	sim.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModAlt)

	if key := readNonResize(t, s); key != RuneKey('j') {
		t.Fatalf("expected j, got %#v", key)
	}
	if key := readNonResize(t, s); key.String() != " " {
		t.Fatalf("expected space, got %q", key.String())
	}
	if key := readNonResize(t, s); key.Code != KeyEnter {
		t.Fatalf("expected enter, got %#v", key)
	}
	if key := readNonResize(t, s); key.Code != KeyOther {
		t.Fatalf("expected alt+q to be KeyOther, got %#v", key)
	}
}

func TestScreenPresentDrawsRows(t *testing.T) {
	s, sim := newSimScreen(t)
	frame := render.Render(menu.Default(), 3)
	frame.Footer = "q quit"
	if err := s.Present(frame); err != nil {
		t.Fatalf("present: %v", err)
	}
	if got := rowText(sim, 0, 40); got != "update pkg db" {
		t.Fatalf("expected first row label, got %q", got)
	}
	if got := rowText(sim, 3, 40); got != "[ ] update pkg db" {
		t.Fatalf("expected checkbox row label, got %q", got)
	}
	_, _, style, _ := sim.GetContent(39, 3)
	if style != screenSelectedStyle {
		t.Fatalf("expected highlighted row to span the width")
	}
	_, _, style, _ = sim.GetContent(0, 0)
	if style != screenItemStyle {
		t.Fatalf("expected default style on unfocused row")
	}
	if got := rowText(sim, 5, 40); got != "q quit" {
		t.Fatalf("expected footer below a blank line, got %q", got)
	}
}

func TestScreenReadAfterLeave(t *testing.T) {
	s, _ := newSimScreen(t)
	if err := s.Leave(); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if _, err := s.ReadKey(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := s.Present(render.Frame{}); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected present after leave to fail, got %v", err)
	}
	if err := s.Leave(); err != nil {
		t.Fatalf("expected second leave to be a no-op, got %v", err)
	}
}
