package main

import (
	"fmt"
	"os"

	"github.com/nmaint/nmaint/internal/app"
	"github.com/nmaint/nmaint/internal/config"
	"github.com/nmaint/nmaint/internal/logging"
	"github.com/nmaint/nmaint/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	os.Exit(run(cfg))
}

// run returns the process exit code so deferred log cleanup runs before exit.
func run(cfg config.Config) int {
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	defer logging.Close()

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]any {
	flags := make(map[string]any, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]any{
		"argv":   cfg.Args,
		"driver": cfg.App.Driver,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	payload["term"] = os.Getenv("TERM")
	payload["tty"] = probeTTY(cfg.App.Driver)
	return payload
}

// ttyReport records whether the terminal files the selected driver opens can
// host raw input and a sized screen.
type ttyReport struct {
	Driver string     `json:"driver"`
	Usable bool       `json:"usable"`
	Probes []ttyProbe `json:"probes"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

type probeTarget struct {
	name string
	role string
	open func() (*os.File, func(), error)
}

func stdFile(f *os.File) func() (*os.File, func(), error) {
	return func() (*os.File, func(), error) { return f, func() {}, nil }
}

// probeTargets lists the files driver reads keys from and draws to. tcell
// opens the controlling terminal itself; the other drivers use stdio.
func probeTargets(driver string) []probeTarget {
	if driver == app.DriverTcell {
		return []probeTarget{{
			name: "/dev/tty",
			role: "input+output",
			open: func() (*os.File, func(), error) {
				f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
				if err != nil {
					return nil, nil, err
				}
				return f, func() { _ = f.Close() }, nil
			},
		}}
	}
	return []probeTarget{
		{name: "stdin", role: "input", open: stdFile(os.Stdin)},
		{name: "stdout", role: "output", open: stdFile(os.Stdout)},
	}
}

func probeTTY(driver string) ttyReport {
	targets := probeTargets(driver)
	report := ttyReport{Driver: driver, Usable: len(targets) > 0}
	for _, target := range targets {
		probe := ttyProbe{Name: target.name, Role: target.role}
		if f, closeFn, err := target.open(); err != nil {
			probe.Error = err.Error()
		} else {
			fd := int(f.Fd())
			probe.IsTerminal = term.IsTerminal(fd)
			if probe.IsTerminal && target.role != "input" {
				if w, h, err := term.GetSize(fd); err != nil {
					probe.Error = err.Error()
				} else {
					probe.Width, probe.Height = w, h
				}
			}
			closeFn()
		}
		report.Usable = report.Usable && probe.IsTerminal
		report.Probes = append(report.Probes, probe)
	}
	return report
}
