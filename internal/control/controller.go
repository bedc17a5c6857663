package control

import (
	"log/slog"
	"sync"

	"go.aimuz.me/mediabar/internal/types"
)

// Controller owns the preference flags and drives the Registry and the
// Indicator from them. It is the single writer of every flag.
type Controller struct {
	registry  *Registry
	indicator *Indicator

	// opMu serialises operations that touch the OS so a flag and the
	// registration it implies never diverge. It is held across calls into
	// Shortcuts; mu is not.
	opMu sync.Mutex

	mu                sync.Mutex
	mediaKeysBound    bool
	functionKeysBound bool
	shutdown          bool
	observer          func(State)
}

// New creates a Controller in the default state. Nothing is registered until
// RegisterAll is called.
func New(shortcuts Shortcuts, player Player, tray Tray) *Controller {
	def := DefaultState()
	return &Controller{
		registry:          NewRegistry(shortcuts, player),
		indicator:         NewIndicator(tray, def.IndicatorEnabled),
		mediaKeysBound:    def.MediaKeysBound,
		functionKeysBound: def.FunctionKeysBound,
	}
}

// SetObserver installs fn to be called with the new state after every change.
func (c *Controller) SetObserver(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = fn
}

// State returns a snapshot of the controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{
		MediaKeysBound:    c.mediaKeysBound,
		FunctionKeysBound: c.functionKeysBound,
		IndicatorEnabled:  c.indicator.Enabled(),
		Playing:           c.indicator.Playing(),
	}
}

// MenuState returns the checkbox state of the tray menu.
func (c *Controller) MenuState() types.MenuState {
	return c.State().Menu()
}

// ─────────────────────────────────────────────────────────────────────────────
// Hotkeys
// ─────────────────────────────────────────────────────────────────────────────

// RegisterAll registers every key set whose flag is set.
func (c *Controller) RegisterAll() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	state := c.State()
	for _, set := range types.KeySets {
		if state.Bound(set) {
			c.registry.Register(set)
		}
	}
}

// Shutdown releases every global hotkey. Later calls do nothing, and no
// hotkey handler runs once Shutdown has started.
func (c *Controller) Shutdown() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	if c.shutdown {
		c.mu.Unlock()
		return
	}
	c.shutdown = true
	c.mu.Unlock()

	c.registry.UnregisterAll()
}

// ToggleMediaKeys flips the media key binding and returns the new value.
func (c *Controller) ToggleMediaKeys() bool {
	return c.toggleKeys(types.KeySetMedia, &c.mediaKeysBound)
}

// ToggleFunctionKeys flips the function key binding and returns the new value.
func (c *Controller) ToggleFunctionKeys() bool {
	return c.toggleKeys(types.KeySetFunction, &c.functionKeysBound)
}

func (c *Controller) toggleKeys(set types.KeySet, flag *bool) bool {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	bound := *flag
	*flag = !bound
	shutdown := c.shutdown
	c.mu.Unlock()

	if !shutdown {
		if bound {
			c.registry.Unregister(set)
		} else {
			c.registry.Register(set)
		}
	}

	slog.Info("key binding toggled", "set", set, "bound", !bound)
	c.notify()
	return !bound
}

// ─────────────────────────────────────────────────────────────────────────────
// Playback indicator
// ─────────────────────────────────────────────────────────────────────────────

// ToggleIndicator flips the playing indicator and returns the new value.
func (c *Controller) ToggleIndicator() bool {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	enabled := !c.indicator.Enabled()
	c.indicator.SetEnabled(enabled)

	slog.Info("playing indicator toggled", "enabled", enabled)
	c.notify()
	return enabled
}

// ReportPlaying records that the hosted content started playing.
func (c *Controller) ReportPlaying() {
	c.indicator.ReportPlaying()
	slog.Debug("playback reported", "playing", true)
	c.notify()
}

// ReportPaused records that the hosted content paused.
func (c *Controller) ReportPaused() {
	c.indicator.ReportPaused()
	slog.Debug("playback reported", "playing", false)
	c.notify()
}

func (c *Controller) notify() {
	c.mu.Lock()
	fn := c.observer
	state := c.stateLocked()
	c.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}
