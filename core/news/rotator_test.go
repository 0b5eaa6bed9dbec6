package news

import (
	"testing"
	"time"
)

// waitForIndex polls until the rotator reaches want or the deadline passes.
func waitForIndex(t *testing.T, r *Rotator, want int, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if r.Index() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Index() = %d; want %d within %s", r.Index(), want, timeout)
}

func TestRotator_autoAdvance(t *testing.T) {
	r := NewRotator(3, 10*time.Millisecond)
	defer r.Stop()

	waitForIndex(t, r, 1, time.Second)
	waitForIndex(t, r, 2, time.Second)
	waitForIndex(t, r, 0, time.Second) // wraps around
}

func TestRotator_manualSteps(t *testing.T) {
	r := NewRotator(3, time.Hour)
	defer r.Stop()

	if got := r.Next(); got != 1 {
		t.Errorf("Next() = %d; want 1", got)
	}
	if got := r.Next(); got != 2 {
		t.Errorf("Next() = %d; want 2", got)
	}
	if got := r.Next(); got != 0 {
		t.Errorf("Next() = %d; want 0 (wrap)", got)
	}
	if got := r.Prev(); got != 2 {
		t.Errorf("Prev() = %d; want 2 (wrap backwards)", got)
	}
}

func TestRotator_manualStepRestartsInterval(t *testing.T) {
	r := NewRotator(5, 50*time.Millisecond)
	defer r.Stop()

	// Keep stepping faster than the interval; the automatic tick must never
	// sneak in an extra advance between manual steps.
	for i := 1; i <= 4; i++ {
		time.Sleep(20 * time.Millisecond)
		if got := r.Next(); got != i {
			t.Fatalf("Next() = %d; want %d", got, i)
		}
	}
}

func TestRotator_setCount(t *testing.T) {
	r := NewRotator(5, time.Hour)
	defer r.Stop()

	r.Next()
	r.Next()
	r.Next()
	r.Next() // index 4

	r.SetCount(3)
	if got := r.Index(); got != 1 { // 4 % 3
		t.Errorf("Index() = %d; want 1", got)
	}

	r.SetCount(0)
	if got := r.Index(); got != 0 {
		t.Errorf("Index() = %d; want 0", got)
	}
	if got := r.Next(); got != 0 { // empty carousel stays put
		t.Errorf("Next() = %d; want 0", got)
	}
}

func TestRotator_stopIsIdempotent(t *testing.T) {
	r := NewRotator(3, 5*time.Millisecond)
	r.Stop()
	r.Stop()

	idx := r.Index()
	time.Sleep(30 * time.Millisecond)
	if got := r.Index(); got != idx {
		t.Errorf("Index() = %d after Stop(); want %d", got, idx)
	}
}
