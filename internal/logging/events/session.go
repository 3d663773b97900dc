package events

import "github.com/nmaint/nmaint/internal/logging"

// SessionTracer records the terminal session lifecycle.
type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Acquire(driver string) {
	logging.Trace("session.acquire", map[string]interface{}{"driver": driver})
}

func (SessionTracer) AcquireFailed(driver string, err error) {
	logging.Trace("session.acquire-failed", map[string]interface{}{"driver": driver, "error": err.Error()})
}

func (SessionTracer) Release(driver string, err error) {
	payload := map[string]interface{}{"driver": driver}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("session.release", payload)
}
