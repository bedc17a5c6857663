package control

import (
	"sync"

	"go.aimuz.me/mediabar/internal/types"
)

// Indicator derives the tray icon from the playing state and the "show
// indicator" preference. The icon is pushed only on a report or a toggle.
type Indicator struct {
	tray Tray

	mu      sync.Mutex
	playing bool
	enabled bool

	// pushMu orders icon pushes; each push reads the latest state.
	pushMu sync.Mutex
}

// NewIndicator creates an Indicator that is not playing.
func NewIndicator(tray Tray, enabled bool) *Indicator {
	return &Indicator{tray: tray, enabled: enabled}
}

// ReportPlaying records that playback started.
func (i *Indicator) ReportPlaying() {
	i.report(true)
}

// ReportPaused records that playback paused.
func (i *Indicator) ReportPaused() {
	i.report(false)
}

func (i *Indicator) report(playing bool) {
	i.mu.Lock()
	i.playing = playing
	enabled := i.enabled
	i.mu.Unlock()

	if enabled {
		i.push()
	}
}

// SetEnabled turns the indicator on or off and refreshes the icon. Turning
// it off always shows the default icon; the playing state is kept.
func (i *Indicator) SetEnabled(enabled bool) {
	i.mu.Lock()
	i.enabled = enabled
	i.mu.Unlock()

	i.push()
}

// Enabled reports whether the indicator is on.
func (i *Indicator) Enabled() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.enabled
}

// Playing reports the last reported playback state.
func (i *Indicator) Playing() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.playing
}

// Icon returns the icon the tray should be showing.
func (i *Indicator) Icon() types.Icon {
	i.mu.Lock()
	defer i.mu.Unlock()
	return iconFor(i.enabled, i.playing)
}

func (i *Indicator) push() {
	i.pushMu.Lock()
	defer i.pushMu.Unlock()

	i.tray.SetIcon(i.Icon())
}
