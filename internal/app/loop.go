package app

import (
	"errors"
	"fmt"

	"github.com/nmaint/nmaint/internal/input"
	"github.com/nmaint/nmaint/internal/logging"
	"github.com/nmaint/nmaint/internal/logging/events"
	"github.com/nmaint/nmaint/internal/menu"
	"github.com/nmaint/nmaint/internal/render"
	"github.com/nmaint/nmaint/internal/terminal"
	"github.com/nmaint/nmaint/internal/ui/state"
)

var (
	// ErrTerminalInit reports that the terminal could not be switched into raw
	// mode on the alternate screen.
	ErrTerminalInit = errors.New("terminal init failed")
	// ErrInputFault reports that reading the next key failed.
	ErrInputFault = errors.New("input read failed")
	// ErrRenderFault reports that a frame could not be presented.
	ErrRenderFault = errors.New("render failed")
)

// State is the lifecycle stage of a Loop.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Dispatcher receives the meaning of an activated Action entry.
type Dispatcher interface {
	Dispatch(menu.Meaning) error
}

// Loop owns the menu, the focus and the running flag for one session.
type Loop struct {
	device     terminal.Device
	driver     string
	model      menu.Model
	focus      state.Focus
	running    bool
	state      State
	keys       input.KeyMap
	dispatcher Dispatcher
	footer     string
}

// Option configures a Loop.
type Option func(*Loop)

// WithDispatcher routes activated Action entries to d.
func WithDispatcher(d Dispatcher) Option {
	return func(l *Loop) { l.dispatcher = d }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km input.KeyMap) Option {
	return func(l *Loop) { l.keys = km }
}

// WithFooter shows footer below the menu rows.
func WithFooter(footer string) Option {
	return func(l *Loop) { l.footer = footer }
}

// WithDriverName labels trace entries with the driver in use.
func WithDriverName(name string) Option {
	return func(l *Loop) { l.driver = name }
}

// NewLoop builds a loop over device and model. The loop takes ownership of
// model for its lifetime.
func NewLoop(device terminal.Device, model menu.Model, opts ...Option) *Loop {
	l := &Loop{
		device: device,
		model:  model,
		focus:  state.NewFocus(len(model)),
		keys:   input.DefaultKeyMap,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run acquires the terminal, processes keys until Quit and releases the
// terminal on every path out, including errors and panics.
func (l *Loop) Run() error {
	if l.state != Idle {
		return fmt.Errorf("loop already %s", l.state)
	}
	if err := l.device.Enter(); err != nil {
		events.Session.AcquireFailed(l.driver, err)
		return fmt.Errorf("%w: %w", ErrTerminalInit, err)
	}
	events.Session.Acquire(l.driver)
	l.state = Running
	l.running = true
	l.focus = state.NewFocus(len(l.model))
	defer func() {
		rerr := l.device.Leave()
		l.state = Stopped
		events.Session.Release(l.driver, rerr)
		if rerr != nil {
			// logged only; never replaces the loop error
			logging.Error(fmt.Errorf("restore terminal: %w", rerr))
		}
	}()

	for l.running {
		if err := l.present(); err != nil {
			return fmt.Errorf("%w: %w", ErrRenderFault, err)
		}
		cmd, err := l.nextCommand()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInputFault, err)
		}
		l.Apply(cmd)
	}
	return nil
}

func (l *Loop) present() error {
	frame := render.Render(l.model, l.focus.Index)
	frame.Footer = l.footer
	return l.device.Present(frame)
}

func (l *Loop) nextCommand() (input.Command, error) {
	key, err := l.device.ReadKey()
	if err != nil {
		return input.None, err
	}
	cmd := l.keys.Decode(key)
	events.UI.Key(key.String(), cmd.String())
	return cmd, nil
}

// Apply performs cmd against the loop state.
func (l *Loop) Apply(cmd input.Command) {
	switch cmd {
	case input.FocusUp:
		if l.focus.MoveUp() {
			events.UI.Focus(l.focus.Index)
		}
	case input.FocusDown:
		if l.focus.MoveDown() {
			events.UI.Focus(l.focus.Index)
		}
	case input.Toggle:
		l.toggle()
	case input.Quit:
		l.running = false
	}
}

func (l *Loop) toggle() {
	idx := l.focus.Index
	if idx < 0 || idx >= len(l.model) {
		return
	}
	entry := &l.model[idx]
	if entry.Toggle() {
		on, _ := entry.Checked()
		events.UI.Toggle(idx, entry.Meaning.Label(), on)
		return
	}
	if entry.IsAction() && l.dispatcher != nil {
		if err := l.dispatcher.Dispatch(entry.Meaning); err != nil {
			events.Action.Error(err)
			logging.Error(err)
		}
	}
}

// State reports the lifecycle stage.
func (l *Loop) State() State {
	return l.state
}

// Focus returns the index of the highlighted entry.
func (l *Loop) Focus() int {
	return l.focus.Index
}

// Running reports whether the loop will read another key.
func (l *Loop) Running() bool {
	return l.running
}

// Model returns the menu owned by the loop.
func (l *Loop) Model() menu.Model {
	return l.model
}
