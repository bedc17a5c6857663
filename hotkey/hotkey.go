// Package hotkey defines the keys and the backend contract for global
// keyboard shortcuts. The OS backends live in hotkey/native.
//
// Two backends are available. The grab backend claims each key exclusively
// with the platform hotkey API, so acquisition fails when another application
// already owns the key. The hook backend observes every key press through a
// passive keyboard hook and never fails acquisition, at the cost of requiring
// accessibility permission on macOS. The auto backend grabs what the platform
// can express and hooks the rest.
package hotkey

import "errors"

// Key is a platform-independent key name, spelled like an accelerator.
type Key string

const (
	KeyMediaPlayPause     Key = "MediaPlayPause"
	KeyMediaStop          Key = "MediaStop"
	KeyMediaNextTrack     Key = "MediaNextTrack"
	KeyMediaPreviousTrack Key = "MediaPreviousTrack"
	KeyF7                 Key = "F7"
	KeyF8                 Key = "F8"
	KeyF9                 Key = "F9"
)

// Keys lists every key this package knows how to bind.
var Keys = []Key{
	KeyMediaPlayPause,
	KeyMediaStop,
	KeyMediaNextTrack,
	KeyMediaPreviousTrack,
	KeyF7,
	KeyF8,
	KeyF9,
}

// Backend names.
const (
	BackendAuto = "auto"
	BackendGrab = "grab"
	BackendHook = "hook"
)

var (
	// ErrUnsupportedKey is returned when the platform cannot express a key.
	ErrUnsupportedKey = errors.New("key not supported on this platform")
	// ErrUnknownBackend is returned by New for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown hotkey backend")
	// ErrClosed is returned by Register after Close.
	ErrClosed = errors.New("hotkey backend closed")
)

// Backend registers global hotkeys.
//
// Unregister of a key that is not held is a no-op. Close releases every key
// still held; the backend must not be used afterwards.
type Backend interface {
	Register(key Key, fn func()) error
	Unregister(key Key) error
	Close() error
}
