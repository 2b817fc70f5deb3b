package resilience

import (
	"errors"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
)

func newTestBreaker(threshold int, openTimeout time.Duration, now *time.Time) *CircuitBreaker {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   1,
	})
	b.now = func() time.Time { return *now }
	return b
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(2, 5*time.Second, &now)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !crerr.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !crerr.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second half-open probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_DoIgnoresNonFailures(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(1, time.Minute, &now)
	notCounted := errors.New("caller cancelled")

	err := b.Do(func() error { return notCounted }, func(err error) bool { return !errors.Is(err, notCounted) })
	if !errors.Is(err, notCounted) {
		t.Fatalf("expected fn error to be returned, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected breaker to stay closed, got %s", state)
	}

	upstream := errors.New("connection refused")
	_ = b.Do(func() error { return upstream }, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected breaker to open, got %s", state)
	}

	called := false
	err = b.Do(func() error { called = true; return nil }, nil)
	if !crerr.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected rejected call, got err=%v called=%v", err, called)
	}
}

func TestCircuitBreaker_DisabledAdmitsEverything(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		b.RecordFailure()
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("expected disabled breaker to allow, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected disabled breaker to report closed, got %s", state)
	}
}

func TestCircuitBreakerConfig_WithDefaults(t *testing.T) {
	got := CircuitBreakerConfig{Enabled: true, FailureThreshold: -1, OpenTimeout: 2 * time.Second}.withDefaults()
	want := CircuitBreakerConfig{Enabled: true, FailureThreshold: 5, OpenTimeout: 2 * time.Second, HalfOpenMaxReq: 1}
	if got != want {
		t.Fatalf("unexpected config: %+v", got)
	}

	if (CircuitBreakerConfig{}).withDefaults().Enabled {
		t.Fatalf("zero config must stay disabled")
	}
}
