//go:build windows || darwin || linux

package native

import (
	"fmt"
	"log/slog"
	"sync"

	hk "golang.design/x/hotkey"

	"go.aimuz.me/mediabar/hotkey"
)

// grabber claims keys exclusively through golang.design/x/hotkey.
type grabber struct {
	opts options

	mu     sync.Mutex
	held   map[hotkey.Key]*grab
	closed bool
}

type grab struct {
	hk   *hk.Hotkey
	done chan struct{}
}

func newGrabber(o options) (hotkey.Backend, error) {
	return &grabber{
		opts: o,
		held: make(map[hotkey.Key]*grab),
	}, nil
}

func (g *grabber) Register(key hotkey.Key, fn func()) error {
	code, ok := grabCodes[key]
	if !ok {
		return fmt.Errorf("register %s: %w", key, hotkey.ErrUnsupportedKey)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return hotkey.ErrClosed
	}
	if _, ok := g.held[key]; ok {
		return nil
	}

	h := hk.New(nil, code)
	var err error
	g.opts.invoke(func() { err = h.Register() })
	if err != nil {
		return fmt.Errorf("register %s: %w", key, err)
	}

	b := &grab{hk: h, done: make(chan struct{})}
	g.held[key] = b
	go b.listen(key, fn)

	slog.Debug("hotkey grabbed", "key", key)
	return nil
}

func (g *grabber) Unregister(key hotkey.Key) error {
	g.mu.Lock()
	b, ok := g.held[key]
	delete(g.held, key)
	g.mu.Unlock()

	if !ok {
		return nil
	}
	return g.release(key, b)
}

func (g *grabber) Close() error {
	g.mu.Lock()
	held := g.held
	g.held = make(map[hotkey.Key]*grab)
	g.closed = true
	g.mu.Unlock()

	var firstErr error
	for key, b := range held {
		if err := g.release(key, b); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (g *grabber) release(key hotkey.Key, b *grab) error {
	close(b.done)

	var err error
	g.opts.invoke(func() { err = b.hk.Unregister() })
	if err != nil {
		return fmt.Errorf("unregister %s: %w", key, err)
	}
	slog.Debug("hotkey released", "key", key)
	return nil
}

func (b *grab) listen(key hotkey.Key, fn func()) {
	keydown := b.hk.Keydown()
	for {
		select {
		case <-b.done:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			select {
			case <-b.done:
				return
			default:
			}
			slog.Debug("hotkey pressed", "key", key)
			fn()
		}
	}
}
