// Package types provides shared type definitions for the application.
package types

// KeySet names one of the two independent groups of global hotkeys.
type KeySet string

const (
	KeySetMedia    KeySet = "media"    // dedicated media keys
	KeySetFunction KeySet = "function" // F7/F8/F9 fallback
)

// KeySets lists every key set in registration order.
var KeySets = []KeySet{KeySetMedia, KeySetFunction}

// Action is a playback action exposed by the hosted content.
type Action string

const (
	ActionPlayPause Action = "playpause"
	ActionNext      Action = "next"
	ActionPrevious  Action = "previous"
	ActionStop      Action = "stop"
)

// Icon identifies which tray image is displayed.
type Icon string

const (
	IconDefault Icon = "default"
	IconPlaying Icon = "playing"
)

// MenuState mirrors the three tray menu checkboxes.
type MenuState struct {
	MediaKeysBound    bool `json:"mediaKeysBound"`
	FunctionKeysBound bool `json:"functionKeysBound"`
	IndicatorEnabled  bool `json:"indicatorEnabled"`
}

// PlaybackState is emitted to the frontend whenever playback is reported.
type PlaybackState struct {
	Playing   bool   `json:"playing"`
	Indicator bool   `json:"indicator"`
	Icon      Icon   `json:"icon"`
	Session   string `json:"session,omitempty"` // Set while playing; new id per play run
}
