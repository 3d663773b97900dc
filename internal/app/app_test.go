package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nmaint/nmaint/internal/logging"
	"github.com/nmaint/nmaint/internal/menu"
	"github.com/nmaint/nmaint/internal/terminal"
	"github.com/nmaint/nmaint/internal/theme"
	"github.com/nmaint/nmaint/internal/ui"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "nmaint-app")
	if err != nil {
		panic(err)
	}
	logging.Configure(filepath.Join(dir, "nmaint.log"))
	code := m.Run()
	_ = logging.Close()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestNewDeviceSelectsDriver(t *testing.T) {
	styles := theme.Default()
	dev, err := newDevice(DriverTTY, styles)
	if err != nil {
		t.Fatalf("tty driver: %v", err)
	}
	if _, ok := dev.(*terminal.TTY); !ok {
		t.Fatalf("expected *terminal.TTY, got %T", dev)
	}
	dev, err = newDevice("", styles)
	if err != nil {
		t.Fatalf("default driver: %v", err)
	}
	if _, ok := dev.(*terminal.TTY); !ok {
		t.Fatalf("expected tty as the default driver, got %T", dev)
	}
	dev, err = newDevice(DriverTea, styles)
	if err != nil {
		t.Fatalf("tea driver: %v", err)
	}
	if _, ok := dev.(*ui.Program); !ok {
		t.Fatalf("expected *ui.Program, got %T", dev)
	}
}

func TestRunRejectsUnknownDriver(t *testing.T) {
	err := Run(Config{Driver: "curses"})
	if !errors.Is(err, ErrTerminalInit) {
		t.Fatalf("expected ErrTerminalInit, got %v", err)
	}
}

func TestLoopOverTeaDriverNavigatesAndToggles(t *testing.T) {
	device := ui.NewProgram(theme.Default(),
		tea.WithInput(strings.NewReader("jjj q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	loop := NewLoop(device, menu.Default())
	if err := loop.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if loop.Focus() != 3 {
		t.Fatalf("expected focus 3, got %d", loop.Focus())
	}
	if on, ok := loop.Model()[3].Checked(); !ok || !on {
		t.Fatalf("expected checkbox at 3 to be checked")
	}
	if loop.State() != Stopped {
		t.Fatalf("expected stopped, got %s", loop.State())
	}
}

