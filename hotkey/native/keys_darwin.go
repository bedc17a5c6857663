package native

import (
	hk "golang.design/x/hotkey"

	"go.aimuz.me/mediabar/hotkey"
)

// Media keys arrive as system-defined events on macOS and cannot be claimed
// through the Carbon hotkey API. The auto backend hands them to the keyboard
// hook.
var grabCodes = map[hotkey.Key]hk.Key{
	hotkey.KeyF7: hk.KeyF7,
	hotkey.KeyF8: hk.KeyF8,
	hotkey.KeyF9: hk.KeyF9,
}
