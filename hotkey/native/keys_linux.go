package native

import (
	hk "golang.design/x/hotkey"

	"go.aimuz.me/mediabar/hotkey"
)

// XF86Audio* keysyms do not fit the X11 key type used by the grab API, so only
// the function keys are grabbed on Linux. The auto backend hands the media
// keys to the keyboard hook.
var grabCodes = map[hotkey.Key]hk.Key{
	hotkey.KeyF7: hk.KeyF7,
	hotkey.KeyF8: hk.KeyF8,
	hotkey.KeyF9: hk.KeyF9,
}
