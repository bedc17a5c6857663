// Package native implements hotkey backends on top of the operating system.
package native

import (
	"fmt"

	"go.aimuz.me/mediabar/hotkey"
)

// Option configures a backend.
type Option func(*options)

type options struct {
	invoke func(func())
}

// WithMainThread routes OS registration calls through invoke. macOS requires
// hotkey registration on the main thread, which the GUI toolkit owns.
func WithMainThread(invoke func(func())) Option {
	return func(o *options) {
		o.invoke = invoke
	}
}

// New creates the backend called name. An empty name selects the auto backend.
func New(name string, opts ...Option) (hotkey.Backend, error) {
	o := options{invoke: func(fn func()) { fn() }}
	for _, opt := range opts {
		opt(&o)
	}

	switch name {
	case hotkey.BackendAuto, "":
		primary, err := newGrabber(o)
		if err != nil {
			return nil, err
		}
		secondary, err := newHooker(o)
		if err != nil {
			return nil, err
		}
		return hotkey.NewFallback(primary, secondary), nil
	case hotkey.BackendGrab:
		return newGrabber(o)
	case hotkey.BackendHook:
		return newHooker(o)
	default:
		return nil, fmt.Errorf("%w: %q", hotkey.ErrUnknownBackend, name)
	}
}
