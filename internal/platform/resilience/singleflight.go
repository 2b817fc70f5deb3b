package resilience

import "sync"

// SingleFlight collapses concurrent calls sharing a key into one execution.
// The zero value is ready to use.
type SingleFlight[T any] struct {
	mu    sync.Mutex
	calls map[string]*flight[T]
}

type flight[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Do runs fn once per key among overlapping callers. shared reports whether
// the result came from another caller's execution.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (val T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flight[T])
	}
	if inFlight, ok := g.calls[key]; ok {
		g.mu.Unlock()
		<-inFlight.done
		return inFlight.val, inFlight.err, true
	}

	current := &flight[T]{done: make(chan struct{})}
	g.calls[key] = current
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(current.done)
	}()

	current.val, current.err = fn()
	return current.val, current.err, false
}
