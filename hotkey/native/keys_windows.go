package native

import (
	hk "golang.design/x/hotkey"

	"go.aimuz.me/mediabar/hotkey"
)

// Virtual-key codes for the dedicated media keys.
const (
	vkMediaNextTrack hk.Key = 0xB0
	vkMediaPrevTrack hk.Key = 0xB1
	vkMediaStop      hk.Key = 0xB2
	vkMediaPlayPause hk.Key = 0xB3
)

var grabCodes = map[hotkey.Key]hk.Key{
	hotkey.KeyMediaPlayPause:     vkMediaPlayPause,
	hotkey.KeyMediaStop:          vkMediaStop,
	hotkey.KeyMediaNextTrack:     vkMediaNextTrack,
	hotkey.KeyMediaPreviousTrack: vkMediaPrevTrack,
	hotkey.KeyF7:                 hk.KeyF7,
	hotkey.KeyF8:                 hk.KeyF8,
	hotkey.KeyF9:                 hk.KeyF9,
}
