package clients

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_StartsInClosedState(t *testing.T) {
	cb := NewCircuitBreaker(DefaultCircuitBreakerConfig())

	if cb.State() != StateClosed {
		t.Fatalf("expected circuit breaker to start in CLOSED state, got %s", cb.State().String())
	}
}

func TestCircuitBreaker_TripsAndRejects(t *testing.T) {
	var stateChanges []string
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:         "redis-live-metrics",
		MinRequests:  3,
		FailureRatio: 0.5,
		Timeout:      time.Second,
		OnStateChange: func(name string, from, to CircuitBreakerState) {
			stateChanges = append(stateChanges, to.String())
		},
	})

	for i := 0; i < 3; i++ {
		_ = cb.Call(func() error { return errors.New("fail") })
	}

	if cb.State() != StateOpen {
		t.Fatalf("expected OPEN state, got %s", cb.State().String())
	}
	if len(stateChanges) == 0 || stateChanges[0] != "open" {
		t.Fatalf("expected a transition to open, got %v", stateChanges)
	}

	ran := false
	err := cb.Call(func() error { ran = true; return nil })
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open-circuit error, got %v", err)
	}
	if ran {
		t.Fatalf("expected call to be skipped while open")
	}
}

func TestCircuitBreaker_HalfOpenProbeCloses(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:         "probe",
		MinRequests:  3,
		FailureRatio: 0.5,
		Timeout:      50 * time.Millisecond,
	})

	for i := 0; i < 3; i++ {
		_ = cb.Call(func() error { return errors.New("fail") })
	}

	time.Sleep(60 * time.Millisecond)

	if err := cb.Call(func() error { return nil }); err != nil {
		t.Fatalf("expected half-open probe to succeed, got %v", err)
	}
	if cb.State() != StateClosed {
		t.Fatalf("expected CLOSED after successful probe, got %s", cb.State().String())
	}
}

func TestExecuteReturnsTypedValue(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{Name: "typed"})

	got, err := Execute(cb, func() (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("expected 42, got %d (%v)", got, err)
	}

	boom := errors.New("boom")
	got, err = Execute(cb, func() (int, error) { return 1, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got != 0 {
		t.Fatalf("expected zero value on error, got %d", got)
	}
	if cb.Name() != "typed" {
		t.Fatalf("unexpected name %q", cb.Name())
	}
}
