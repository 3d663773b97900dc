package ui

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/nmaint/nmaint/internal/menu"
	"github.com/nmaint/nmaint/internal/render"
	"github.com/nmaint/nmaint/internal/terminal"
	"github.com/nmaint/nmaint/internal/theme"
)

func newTestProgram(input string) *Program {
	return NewProgram(theme.Default(),
		tea.WithInput(strings.NewReader(input)),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
}

func TestProgramRoundTrip(t *testing.T) {
	p := newTestProgram("j")
	if err := p.Enter(); err != nil {
		t.Fatalf("enter: %v", err)
	}
	if err := p.Present(render.Render(menu.Default(), 0)); err != nil {
		t.Fatalf("present: %v", err)
	}
	var key terminal.Key
	for {
		k, err := p.ReadKey()
		if err != nil {
			t.Fatalf("read key: %v", err)
		}
		if k.Name == "resize" {
			continue
		}
		key = k
		break
	}
	if key != terminal.RuneKey('j') {
		t.Fatalf("expected j, got %#v", key)
	}
	if err := p.Leave(); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if err := p.Leave(); err != nil {
		t.Fatalf("expected second leave to be a no-op, got %v", err)
	}
	if _, err := p.ReadKey(); !errors.Is(err, terminal.ErrClosed) {
		t.Fatalf("expected ErrClosed after leave, got %v", err)
	}
	if err := p.Present(render.Frame{}); !errors.Is(err, terminal.ErrClosed) {
		t.Fatalf("expected ErrClosed from present after leave, got %v", err)
	}
}

func TestProgramSplitsTypedBurst(t *testing.T) {
	p := newTestProgram("jjj q")
	if err := p.Enter(); err != nil {
		t.Fatalf("enter: %v", err)
	}
	defer func() { _ = p.Leave() }()
	var got []string
	for len(got) < 5 {
		k, err := p.ReadKey()
		if err != nil {
			t.Fatalf("read key after %v: %v", got, err)
		}
		if k.Name == "resize" {
			continue
		}
		got = append(got, k.String())
	}
	want := []string{"j", "j", "j", " ", "q"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
}

