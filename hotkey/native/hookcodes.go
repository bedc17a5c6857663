package native

import "go.aimuz.me/mediabar/hotkey"

// Virtual key codes reported by the keyboard hook. These are the same on every
// platform the hook supports.
const (
	vcF7            uint16 = 0x0041
	vcF8            uint16 = 0x0042
	vcF9            uint16 = 0x0043
	vcMediaPrevious uint16 = 0xE010
	vcMediaNext     uint16 = 0xE019
	vcMediaPlay     uint16 = 0xE022
	vcMediaStop     uint16 = 0xE024
)

var hookKeycodes = map[uint16]hotkey.Key{
	vcF7:            hotkey.KeyF7,
	vcF8:            hotkey.KeyF8,
	vcF9:            hotkey.KeyF9,
	vcMediaPrevious: hotkey.KeyMediaPreviousTrack,
	vcMediaNext:     hotkey.KeyMediaNextTrack,
	vcMediaPlay:     hotkey.KeyMediaPlayPause,
	vcMediaStop:     hotkey.KeyMediaStop,
}

// keyForHookCode maps a hook keycode to a Key.
func keyForHookCode(code uint16) (hotkey.Key, bool) {
	k, ok := hookKeycodes[code]
	return k, ok
}
