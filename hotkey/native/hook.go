//go:build windows || darwin || linux

package native

import (
	"log/slog"
	"sync"

	hook "github.com/robotn/gohook"

	"go.aimuz.me/mediabar/hotkey"
)

// hooker observes key presses through robotn/gohook. The hook is started on
// the first registration and stopped by Close.
type hooker struct {
	mu       sync.Mutex
	handlers map[hotkey.Key]func()
	events   chan hook.Event
	closed   bool

	presses *pressTracker
}

func newHooker(_ options) (hotkey.Backend, error) {
	return &hooker{
		handlers: make(map[hotkey.Key]func()),
		presses:  newPressTracker(),
	}, nil
}

func (h *hooker) Register(key hotkey.Key, fn func()) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return hotkey.ErrClosed
	}
	if _, ok := h.handlers[key]; ok {
		return nil
	}
	h.handlers[key] = fn

	if h.events == nil {
		h.events = hook.Start()
		go h.loop(h.events)
		slog.Info("keyboard hook started")
	}
	return nil
}

func (h *hooker) Unregister(key hotkey.Key) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.handlers, key)
	return nil
}

func (h *hooker) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.handlers = make(map[hotkey.Key]func())
	started := h.events != nil
	h.mu.Unlock()

	if started {
		hook.End()
		slog.Info("keyboard hook stopped")
	}
	return nil
}

func (h *hooker) loop(events chan hook.Event) {
	for ev := range events {
		key, ok := keyForHookCode(ev.Keycode)
		if !ok {
			continue
		}

		switch ev.Kind {
		case hook.KeyHold:
			if !h.presses.press(key) {
				continue
			}
		case hook.KeyUp:
			h.presses.release(key)
			continue
		default:
			continue
		}

		h.mu.Lock()
		fn := h.handlers[key]
		h.mu.Unlock()

		if fn != nil {
			slog.Debug("hotkey pressed", "key", key)
			fn()
		}
	}
}
