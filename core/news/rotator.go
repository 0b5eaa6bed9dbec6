package news

import (
	"sync"
	"time"
)

// Rotator cycles a carousel index over a fixed number of slides. The index
// advances automatically on an interval; Next and Prev advance immediately
// and restart the interval so a manual step never gets a near-instant
// automatic follow-up.
type Rotator struct {
	interval time.Duration

	mu      sync.Mutex
	count   int
	index   int
	ticker  *time.Ticker
	done    chan struct{}
	stopped bool
}

func NewRotator(count int, interval time.Duration) *Rotator {
	r := &Rotator{
		interval: interval,
		count:    count,
		ticker:   time.NewTicker(interval),
		done:     make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Rotator) run() {
	for {
		select {
		case <-r.ticker.C:
			r.step(1, false)
		case <-r.done:
			return
		}
	}
}

func (r *Rotator) step(delta int, manual bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count > 0 {
		r.index = ((r.index+delta)%r.count + r.count) % r.count
	}
	if manual && !r.stopped {
		r.ticker.Reset(r.interval)
	}
	return r.index
}

// Index returns the current slide position.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// SetCount resizes the carousel, clamping the index back into range.
func (r *Rotator) SetCount(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count = n
	if n <= 0 {
		r.index = 0
	} else if r.index >= n {
		r.index = r.index % n
	}
}

func (r *Rotator) Next() int { return r.step(1, true) }

func (r *Rotator) Prev() int { return r.step(-1, true) }

// Stop cancels automatic rotation. Safe to call more than once.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	r.ticker.Stop()
	close(r.done)
}
