// internal/ratelimit/limiter.go
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter is a process-local fixed-window request counter keyed by
// client identity. A burst across a window boundary can admit up to
// twice the configured max; good enough as an abuse deterrent, not a
// precise quota.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	window time.Duration
	max    int
	now    func() time.Time

	sweepEvery time.Duration
	done       chan struct{}
	stopOnce   sync.Once
}

type Option func(*Limiter)

func WithSweepInterval(d time.Duration) Option {
	return func(l *Limiter) { l.sweepEvery = d }
}

func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a Limiter admitting at most max requests per identity per
// window and starts a janitor goroutine that evicts expired entries.
// Call Stop to halt the janitor.
func New(window time.Duration, max int, opts ...Option) *Limiter {
	l := &Limiter{
		entries:    make(map[string]*entry),
		window:     window,
		max:        max,
		now:        time.Now,
		sweepEvery: 2 * window,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	go l.janitor()
	return l
}

// Allow reports whether a request from identity is admitted within the
// current window.
func (l *Limiter) Allow(identity string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[identity]
	if !ok || now.After(e.resetAt) {
		l.entries[identity] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if e.count >= l.max {
		return false
	}
	e.count++
	return true
}

// Stop halts the janitor goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

func (l *Limiter) janitor() {
	t := time.NewTicker(l.sweepEvery)
	defer t.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-t.C:
			l.sweep()
		}
	}
}

// sweep drops entries whose window has already expired.
func (l *Limiter) sweep() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for k, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, k)
		}
	}
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
