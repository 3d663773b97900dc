package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "nmaint.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	sink         io.WriteCloser = newSink(defaultLogFile)
)

func newSink(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}
}

// Error appends err to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	traceMu.Lock()
	defer traceMu.Unlock()
	logger := log.New(sink, "", log.LstdFlags)
	logger.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if !traceEnabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	enc := json.NewEncoder(sink)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	_ = sink.Close()
	if strings.TrimSpace(path) == "" {
		sink = newSink(defaultLogFile)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		sink = newSink(defaultLogFile)
		return
	}
	sink = newSink(path)
}

// Close flushes and releases the log file.
func Close() error {
	traceMu.Lock()
	defer traceMu.Unlock()
	return sink.Close()
}
