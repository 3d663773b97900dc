package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nmaint/nmaint/internal/render"
	"github.com/nmaint/nmaint/internal/terminal"
	"github.com/nmaint/nmaint/internal/theme"
)

// Program adapts a Bubble Tea program to terminal.Device.
type Program struct {
	styles  *theme.Styles
	opts    []tea.ProgramOption
	program *tea.Program
	keys    *KeyQueue
	done    chan struct{}
	err     error
	active  bool
}

// NewProgram prepares a Bubble Tea driver. opts are appended after
// tea.WithAltScreen.
func NewProgram(styles *theme.Styles, opts ...tea.ProgramOption) *Program {
	return &Program{styles: styles, opts: opts}
}

// Enter implements terminal.Device.
func (p *Program) Enter() error {
	p.keys = NewKeyQueue()
	p.done = make(chan struct{})
	ready := make(chan struct{})
	model := NewModel(p.styles, p.keys, func() { close(ready) })
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, p.opts...)
	p.program = tea.NewProgram(model, opts...)
	go func() {
		_, err := p.program.Run()
		p.err = err
		close(p.done)
	}()
	select {
	case <-ready:
		p.active = true
		return nil
	case <-p.done:
		if p.err == nil {
			return fmt.Errorf("start program: %w", terminal.ErrClosed)
		}
		return fmt.Errorf("start program: %w", p.err)
	}
}

// Leave implements terminal.Device.
func (p *Program) Leave() error {
	if !p.active {
		return nil
	}
	p.active = false
	p.program.Quit()
	<-p.done
	if errors.Is(p.err, tea.ErrProgramKilled) {
		return nil
	}
	return p.err
}

// ReadKey implements terminal.Device.
func (p *Program) ReadKey() (terminal.Key, error) {
	if !p.active {
		return terminal.Key{}, terminal.ErrClosed
	}
	if k, ok := p.keys.Wait(p.done); ok {
		return k, nil
	}
	if p.err != nil {
		return terminal.Key{}, fmt.Errorf("%w: %w", terminal.ErrClosed, p.err)
	}
	return terminal.Key{}, terminal.ErrClosed
}

// Present implements terminal.Device.
func (p *Program) Present(frame render.Frame) error {
	if !p.active {
		return terminal.ErrClosed
	}
	select {
	case <-p.done:
		return terminal.ErrClosed
	default:
	}
	p.program.Send(frameMsg{frame: frame})
	return nil
}
