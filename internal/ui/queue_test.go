package ui

import (
	"testing"
	"time"

	"github.com/nmaint/nmaint/internal/terminal"
)

func TestKeyQueueWaitWakesOnPush(t *testing.T) {
	q := NewKeyQueue()
	done := make(chan struct{})
	got := make(chan terminal.Key, 1)
	go func() {
		k, _ := q.Wait(done)
		got <- k
	}()
	q.Push(terminal.RuneKey('q'))
	select {
	case k := <-got:
		if k != terminal.RuneKey('q') {
			t.Fatalf("expected q, got %#v", k)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected Wait to return after Push")
	}
}

func TestKeyQueueWaitDrainsAfterDone(t *testing.T) {
	q := NewKeyQueue()
	q.Push(terminal.RuneKey('j'))
	done := make(chan struct{})
	close(done)
	if k, ok := q.Wait(done); !ok || k != terminal.RuneKey('j') {
		t.Fatalf("expected queued key before done, got %#v ok=%v", k, ok)
	}
	if _, ok := q.Wait(done); ok {
		t.Fatalf("expected empty queue to report done")
	}
}
