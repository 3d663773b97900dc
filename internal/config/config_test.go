package config

import (
	"testing"

	"github.com/nmaint/nmaint/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Driver != app.DriverTTY {
		t.Fatalf("expected tty driver, got %q", cfg.App.Driver)
	}
	if cfg.App.ShowFooter || cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("expected zero defaults, got %#v", cfg)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	env := []string{
		"NMAINT_DRIVER=tcell",
		"NMAINT_FOOTER=true",
		"NMAINT_TRACE=1",
		"NMAINT_LOG_FILE=/tmp/nmaint.log",
		"malformed",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Driver != app.DriverTcell || !cfg.App.ShowFooter {
		t.Fatalf("expected env app config, got %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/nmaint.log" {
		t.Fatalf("expected env logging config, got %#v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	args := []string{"--driver", "tea", "--footer=false", "--log-file", "x.log"}
	cfg, err := LoadArgs(args, []string{"NMAINT_DRIVER=tcell", "NMAINT_FOOTER=true"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Driver != app.DriverTea {
		t.Fatalf("expected tea driver, got %q", cfg.App.Driver)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer flag to win over environment")
	}
	if cfg.Flags["logFile"] != "x.log" {
		t.Fatalf("expected logFile flag recorded, got %q", cfg.Flags["logFile"])
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args copied, got %v", cfg.Args)
	}
}

func TestLoadArgsInvalidBoolEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"NMAINT_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected invalid bool to fall back to false")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--bogus"}, nil); err == nil {
		t.Fatalf("expected unknown flag to fail")
	}
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg, err := LoadArgs([]string{"--driver", "curses"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected unknown driver to be rejected")
	}
}

func TestLoadArgsBlankEnvironmentUsesDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"NMAINT_DRIVER=", "NMAINT_LOG_FILE=  "})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Driver != app.DriverTTY {
		t.Fatalf("expected blank driver to fall back to tty, got %q", cfg.App.Driver)
	}
	if cfg.Logging.FilePath != "" {
		t.Fatalf("expected blank log file to fall back to default, got %q", cfg.Logging.FilePath)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected blank driver env to validate, got %v", err)
	}
}

