package control

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.aimuz.me/mediabar/hotkey"
	"go.aimuz.me/mediabar/internal/types"
)

// Binding maps one physical key to a playback action.
type Binding struct {
	Key    hotkey.Key
	Action types.Action
}

// The function set has no stop key. This mirrors the shipped behaviour.
var bindings = map[types.KeySet][]Binding{
	types.KeySetMedia: {
		{Key: hotkey.KeyMediaPlayPause, Action: types.ActionPlayPause},
		{Key: hotkey.KeyMediaStop, Action: types.ActionStop},
		{Key: hotkey.KeyMediaNextTrack, Action: types.ActionNext},
		{Key: hotkey.KeyMediaPreviousTrack, Action: types.ActionPrevious},
	},
	types.KeySetFunction: {
		{Key: hotkey.KeyF8, Action: types.ActionPlayPause},
		{Key: hotkey.KeyF9, Action: types.ActionNext},
		{Key: hotkey.KeyF7, Action: types.ActionPrevious},
	},
}

// Bindings returns the fixed key mapping of a set.
func Bindings(set types.KeySet) []Binding {
	return append([]Binding(nil), bindings[set]...)
}

// Registry tracks which key sets are registered with the OS.
type Registry struct {
	mu        sync.Mutex
	shortcuts Shortcuts
	player    Player
	bound     map[types.KeySet]bool
	closed    atomic.Bool
}

// NewRegistry creates a Registry with nothing registered.
func NewRegistry(shortcuts Shortcuts, player Player) *Registry {
	return &Registry{
		shortcuts: shortcuts,
		player:    player,
		bound:     make(map[types.KeySet]bool),
	}
}

// Register binds every key of set. A key that cannot be acquired is logged
// and skipped; the rest of the set is still attempted. Registering a set
// that is already registered does nothing.
func (r *Registry) Register(set types.KeySet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return
	}
	if r.bound[set] {
		slog.Debug("key set already registered", "set", set)
		return
	}

	acquired := 0
	for _, b := range bindings[set] {
		action := b.Action
		err := r.shortcuts.Register(b.Key, func() { r.fire(action) })
		switch {
		case errors.Is(err, hotkey.ErrUnsupportedKey):
			slog.Warn("hotkey not supported by backend", "key", b.Key)
		case err != nil:
			slog.Warn("register hotkey", "key", b.Key, "error", err)
		default:
			acquired++
		}
	}
	r.bound[set] = true
	slog.Info("key set registered", "set", set, "acquired", acquired, "total", len(bindings[set]))
}

// Unregister releases exactly the keys of set. Unregistering a set that is
// not registered does nothing.
func (r *Registry) Unregister(set types.KeySet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.bound[set] {
		return
	}
	r.release(set)
	delete(r.bound, set)
	slog.Info("key set unregistered", "set", set)
}

// UnregisterAll releases every key of every set, whatever was registered,
// and closes the registry. Handlers stop firing before any key is released.
func (r *Registry) UnregisterAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed.Store(true)
	for _, set := range types.KeySets {
		r.release(set)
	}
	clear(r.bound)
	slog.Info("all hotkeys unregistered")
}

// Bound reports whether set is currently registered.
func (r *Registry) Bound(set types.KeySet) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bound[set]
}

func (r *Registry) release(set types.KeySet) {
	for _, b := range bindings[set] {
		if err := r.shortcuts.Unregister(b.Key); err != nil {
			slog.Warn("unregister hotkey", "key", b.Key, "error", err)
		}
	}
}

func (r *Registry) fire(action types.Action) {
	if r.closed.Load() {
		return
	}
	dispatch(r.player, action)
}
