package app

import (
	"fmt"
	"os"

	"github.com/nmaint/nmaint/internal/action"
	"github.com/nmaint/nmaint/internal/input"
	"github.com/nmaint/nmaint/internal/logging/events"
	"github.com/nmaint/nmaint/internal/menu"
	"github.com/nmaint/nmaint/internal/terminal"
	"github.com/nmaint/nmaint/internal/theme"
	"github.com/nmaint/nmaint/internal/ui"
)

const (
	DriverTTY   = "tty"
	DriverTcell = "tcell"
	DriverTea   = "tea"
)

// Drivers lists the accepted values for Config.Driver.
var Drivers = []string{DriverTTY, DriverTcell, DriverTea}

// Config describes user-provided application options.
type Config struct {
	Driver     string
	ShowFooter bool
}

// Run builds the configured terminal driver and runs the menu until the user
// quits.
func Run(cfg Config) error {
	styles := theme.Default()
	device, err := newDevice(cfg.Driver, styles)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalInit, err)
	}
	opts := []Option{
		WithDispatcher(action.New()),
		WithDriverName(cfg.Driver),
	}
	if cfg.ShowFooter {
		opts = append(opts, WithFooter(input.DefaultKeyMap.HelpView(styles, 0)))
	}
	err = NewLoop(device, menu.Default(), opts...).Run()
	events.App.Stop(err)
	return err
}

func newDevice(driver string, styles *theme.Styles) (terminal.Device, error) {
	switch driver {
	case DriverTTY, "":
		return terminal.NewTTY(os.Stdin, os.Stdout, styles), nil
	case DriverTcell:
		screen, err := terminal.NewTerminalScreen()
		if err != nil {
			return nil, err
		}
		return screen, nil
	case DriverTea:
		return ui.NewProgram(styles), nil
	}
	return nil, fmt.Errorf("unknown driver %q", driver)
}
