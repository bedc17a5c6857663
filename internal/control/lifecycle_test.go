package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.aimuz.me/mediabar/hotkey"
)

type recordedHooks struct {
	calls []string
}

func (r *recordedHooks) hooks() Hooks {
	return Hooks{
		InstallAppMenu:  func() { r.calls = append(r.calls, "app-menu") },
		ShowWindow:      func() { r.calls = append(r.calls, "show") },
		InstallTrayMenu: func() { r.calls = append(r.calls, "tray-menu") },
	}
}

func TestLifecycleReadyShowsWindowAfterDelay(t *testing.T) {
	c, _, _, _ := newTestController()
	rec := &recordedHooks{}
	l := NewLifecycle(c, rec.hooks(), time.Millisecond)

	var delay time.Duration
	var scheduled func()
	l.after = func(d time.Duration, fn func()) {
		delay = d
		scheduled = fn
	}

	l.Ready()
	assert.Equal(t, []string{"app-menu"}, rec.calls, "window is not shown synchronously")
	assert.Equal(t, time.Millisecond, delay)

	require.NotNil(t, scheduled)
	scheduled()
	assert.Equal(t, []string{"app-menu", "show"}, rec.calls)
}

func TestLifecycleWindowCreated(t *testing.T) {
	c, sc, _, _ := newTestController()
	rec := &recordedHooks{}
	l := NewLifecycle(c, rec.hooks(), 0)

	l.WindowCreated()
	l.WindowCreated()

	assert.Equal(t, []string{"tray-menu"}, rec.calls)
	assert.Len(t, sc.registered, 4, "media keys registered once")
	assert.True(t, sc.isHeld(hotkey.KeyMediaStop))
	assert.False(t, sc.isHeld(hotkey.KeyF8))
}

func TestLifecycleQuit(t *testing.T) {
	c, sc, _, _ := newTestController()
	l := NewLifecycle(c, Hooks{}, 0)

	l.WindowCreated()
	l.Quit()
	l.Quit()

	assert.ElementsMatch(t, hotkey.Keys, sc.releasedKeys())
	for _, k := range hotkey.Keys {
		assert.False(t, sc.isHeld(k))
	}
}

func TestLifecycleNilHooks(t *testing.T) {
	c, _, _, _ := newTestController()
	l := NewLifecycle(c, Hooks{}, 0)

	assert.NotPanics(t, func() {
		l.Ready()
		l.WindowCreated()
		l.Quit()
	})
}
