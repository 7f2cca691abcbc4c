// Package notify holds the single transient notification shown to the user.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDuration is how long a message stays up.
const DefaultDuration = 2800 * time.Millisecond

// Toast is the message currently on screen.
type Toast struct {
	Message   string    `json:"message"`
	ShownAt   time.Time `json:"shown_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Toaster shows one message at a time. A new message replaces the current one
// and restarts the dismiss timer; there is no queue.
type Toaster struct {
	mu       sync.Mutex
	current  *Toast
	timer    *time.Timer
	seq      uint64
	duration time.Duration
	logger   *zap.Logger
}

// NewToaster returns a Toaster dismissing messages after d (DefaultDuration
// when d <= 0).
func NewToaster(d time.Duration, logger *zap.Logger) *Toaster {
	if d <= 0 {
		d = DefaultDuration
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Toaster{duration: d, logger: logger}
}

// Show displays msg. Empty messages are ignored.
func (t *Toaster) Show(msg string) {
	if msg == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.seq++
	seq := t.seq
	now := time.Now()
	t.current = &Toast{Message: msg, ShownAt: now, ExpiresAt: now.Add(t.duration)}
	t.timer = time.AfterFunc(t.duration, func() { t.dismiss(seq) })
	t.logger.Debug("Toast shown", zap.String("message", msg))
}

// Current returns the visible toast, or nil.
func (t *Toaster) Current() *Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil
	}
	c := *t.current
	return &c
}

// Dismiss hides the current toast immediately.
func (t *Toaster) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.current = nil
}

// dismiss clears the toast only if no newer one replaced it.
func (t *Toaster) dismiss(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seq != seq {
		return
	}
	t.current = nil
	t.timer = nil
}
