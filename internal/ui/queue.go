package ui

import (
	"sync"

	"github.com/nmaint/nmaint/internal/terminal"
)

// KeyQueue carries keys from the Bubble Tea event loop to ReadKey. Push never
// blocks and never drops: the event loop may be busy delivering a frame that
// the reader is waiting to hand over.
type KeyQueue struct {
	mu     sync.Mutex
	keys   []terminal.Key
	signal chan struct{}
}

// NewKeyQueue returns an empty queue.
func NewKeyQueue() *KeyQueue {
	return &KeyQueue{signal: make(chan struct{}, 1)}
}

// Push appends k and wakes a waiting reader.
func (q *KeyQueue) Push(k terminal.Key) {
	q.mu.Lock()
	q.keys = append(q.keys, k)
	q.mu.Unlock()
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Pop removes the oldest key, reporting false when the queue is empty.
func (q *KeyQueue) Pop() (terminal.Key, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.keys) == 0 {
		return terminal.Key{}, false
	}
	k := q.keys[0]
	q.keys[0] = terminal.Key{}
	q.keys = q.keys[1:]
	return k, true
}

// Wait blocks until a key is available or done is closed. Keys queued before
// done closed are still returned first.
func (q *KeyQueue) Wait(done <-chan struct{}) (terminal.Key, bool) {
	for {
		if k, ok := q.Pop(); ok {
			return k, true
		}
		select {
		case <-q.signal:
		case <-done:
			return q.Pop()
		}
	}
}
