package native

import (
	"sync"

	"go.aimuz.me/mediabar/hotkey"
)

// pressTracker turns a stream of raw press/release events into one trigger per
// physical press, swallowing auto-repeat.
type pressTracker struct {
	mu   sync.Mutex
	down map[hotkey.Key]bool
}

func newPressTracker() *pressTracker {
	return &pressTracker{down: make(map[hotkey.Key]bool)}
}

// press reports whether this press should trigger.
func (p *pressTracker) press(key hotkey.Key) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.down[key] {
		return false
	}
	p.down[key] = true
	return true
}

func (p *pressTracker) release(key hotkey.Key) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.down, key)
}
