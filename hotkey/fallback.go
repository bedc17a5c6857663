package hotkey

import (
	"errors"
	"fmt"
	"sync"
)

// Fallback registers each key on a primary backend and hands keys the
// primary cannot express to a secondary one. Keys the primary rejects for any
// other reason, such as another application owning them, are not retried.
type Fallback struct {
	primary   Backend
	secondary Backend

	mu    sync.Mutex
	owner map[Key]Backend
}

// NewFallback combines primary and secondary into one Backend.
func NewFallback(primary, secondary Backend) *Fallback {
	return &Fallback{
		primary:   primary,
		secondary: secondary,
		owner:     make(map[Key]Backend),
	}
}

func (f *Fallback) Register(key Key, fn func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.owner[key]; ok {
		return nil
	}

	err := f.primary.Register(key, fn)
	if err == nil {
		f.owner[key] = f.primary
		return nil
	}
	if !errors.Is(err, ErrUnsupportedKey) {
		return err
	}

	if err := f.secondary.Register(key, fn); err != nil {
		return fmt.Errorf("register %s on fallback: %w", key, err)
	}
	f.owner[key] = f.secondary
	return nil
}

func (f *Fallback) Unregister(key Key) error {
	f.mu.Lock()
	b, ok := f.owner[key]
	delete(f.owner, key)
	f.mu.Unlock()

	if !ok {
		return nil
	}
	return b.Unregister(key)
}

// Close closes both backends.
func (f *Fallback) Close() error {
	f.mu.Lock()
	f.owner = make(map[Key]Backend)
	f.mu.Unlock()

	return errors.Join(f.primary.Close(), f.secondary.Close())
}

// Owner reports which backend holds key, or nil.
func (f *Fallback) Owner(key Key) Backend {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.owner[key]
}
