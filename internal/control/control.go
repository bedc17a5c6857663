// Package control binds global hotkeys to playback actions in the hosted
// content and keeps the tray icon in step with reported playback state.
//
// Nothing in this package talks to the windowing toolkit directly. The
// hosted page, the OS hotkey facility and the tray icon are reached through
// the Player, Shortcuts and Tray interfaces.
package control

import (
	"go.aimuz.me/mediabar/hotkey"
	"go.aimuz.me/mediabar/internal/types"
)

// Player invokes playback actions inside the hosted content. Calls are
// fire-and-forget; a page that cannot handle them simply ignores them.
type Player interface {
	PlayPause()
	Next()
	Previous()
	Stop()
}

// Shortcuts registers OS-global hotkeys. Unregistering a key that is not
// held must not fail.
type Shortcuts interface {
	Register(key hotkey.Key, fn func()) error
	Unregister(key hotkey.Key) error
}

// Tray displays one of the two tray icons.
type Tray interface {
	SetIcon(icon types.Icon)
}

// State is the complete controller state.
type State struct {
	MediaKeysBound    bool
	FunctionKeysBound bool
	IndicatorEnabled  bool
	Playing           bool
}

// DefaultState is the state at process start.
func DefaultState() State {
	return State{
		MediaKeysBound:    true,
		FunctionKeysBound: false,
		IndicatorEnabled:  true,
		Playing:           false,
	}
}

// Icon returns the tray icon implied by the state.
func (s State) Icon() types.Icon {
	return iconFor(s.IndicatorEnabled, s.Playing)
}

// Menu returns the checkbox state of the tray menu.
func (s State) Menu() types.MenuState {
	return types.MenuState{
		MediaKeysBound:    s.MediaKeysBound,
		FunctionKeysBound: s.FunctionKeysBound,
		IndicatorEnabled:  s.IndicatorEnabled,
	}
}

// Bound reports the flag for a key set.
func (s State) Bound(set types.KeySet) bool {
	switch set {
	case types.KeySetMedia:
		return s.MediaKeysBound
	case types.KeySetFunction:
		return s.FunctionKeysBound
	}
	return false
}

func iconFor(indicator, playing bool) types.Icon {
	if indicator && playing {
		return types.IconPlaying
	}
	return types.IconDefault
}

func dispatch(p Player, a types.Action) {
	switch a {
	case types.ActionPlayPause:
		p.PlayPause()
	case types.ActionNext:
		p.Next()
	case types.ActionPrevious:
		p.Previous()
	case types.ActionStop:
		p.Stop()
	}
}
