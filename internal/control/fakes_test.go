package control

import (
	"sync"

	"go.aimuz.me/mediabar/hotkey"
	"go.aimuz.me/mediabar/internal/types"
)

// fakeShortcuts behaves like an OS hotkey table.
type fakeShortcuts struct {
	mu         sync.Mutex
	held       map[hotkey.Key]func()
	fail       map[hotkey.Key]error
	registered []hotkey.Key
	released   []hotkey.Key
	duplicates int
}

func newFakeShortcuts() *fakeShortcuts {
	return &fakeShortcuts{
		held: make(map[hotkey.Key]func()),
		fail: make(map[hotkey.Key]error),
	}
}

func (f *fakeShortcuts) Register(key hotkey.Key, fn func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail[key]; err != nil {
		return err
	}
	if _, ok := f.held[key]; ok {
		f.duplicates++
	}
	f.held[key] = fn
	f.registered = append(f.registered, key)
	return nil
}

func (f *fakeShortcuts) Unregister(key hotkey.Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.held, key)
	f.released = append(f.released, key)
	return nil
}

// press simulates the user pressing key; it reports whether a handler ran.
func (f *fakeShortcuts) press(key hotkey.Key) bool {
	f.mu.Lock()
	fn := f.held[key]
	f.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

func (f *fakeShortcuts) isHeld(key hotkey.Key) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.held[key]
	return ok
}

func (f *fakeShortcuts) releasedKeys() []hotkey.Key {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]hotkey.Key(nil), f.released...)
}

type fakePlayer struct {
	mu      sync.Mutex
	actions []types.Action
}

func (p *fakePlayer) record(a types.Action) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.actions = append(p.actions, a)
}

func (p *fakePlayer) PlayPause() { p.record(types.ActionPlayPause) }
func (p *fakePlayer) Next()      { p.record(types.ActionNext) }
func (p *fakePlayer) Previous()  { p.record(types.ActionPrevious) }
func (p *fakePlayer) Stop()      { p.record(types.ActionStop) }

func (p *fakePlayer) calls() []types.Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]types.Action(nil), p.actions...)
}

// fakeTray starts on the default icon, as the real tray does.
type fakeTray struct {
	mu     sync.Mutex
	icon   types.Icon
	pushes int
}

func newFakeTray() *fakeTray {
	return &fakeTray{icon: types.IconDefault}
}

func (t *fakeTray) SetIcon(icon types.Icon) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.icon = icon
	t.pushes++
}

func (t *fakeTray) shown() types.Icon {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.icon
}

func newTestController() (*Controller, *fakeShortcuts, *fakePlayer, *fakeTray) {
	sc := newFakeShortcuts()
	pl := &fakePlayer{}
	tr := newFakeTray()
	return New(sc, pl, tr), sc, pl, tr
}
