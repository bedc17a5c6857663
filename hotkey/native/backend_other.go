//go:build !windows && !darwin && !linux

package native

import (
	"errors"

	"go.aimuz.me/mediabar/hotkey"
)

var errNoHotkeys = errors.New("global hotkeys are not available on this platform")

func newGrabber(options) (hotkey.Backend, error) { return nil, errNoHotkeys }

func newHooker(options) (hotkey.Backend, error) { return nil, errNoHotkeys }
