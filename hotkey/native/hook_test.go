//go:build windows || darwin || linux

package native

import (
	"testing"

	hook "github.com/robotn/gohook"
	"github.com/stretchr/testify/assert"

	"go.aimuz.me/mediabar/hotkey"
)

func TestHookerLoop(t *testing.T) {
	const letterA uint16 = 0x001E

	hold := func(code uint16) hook.Event { return hook.Event{Kind: hook.KeyHold, Keycode: code} }
	up := func(code uint16) hook.Event { return hook.Event{Kind: hook.KeyUp, Keycode: code} }

	tests := []struct {
		name   string
		events []hook.Event
		want   []hotkey.Key
	}{
		{
			name:   "press fires",
			events: []hook.Event{hold(vcF8)},
			want:   []hotkey.Key{hotkey.KeyF8},
		},
		{
			name:   "auto-repeat fires once",
			events: []hook.Event{hold(vcF8), hold(vcF8), hold(vcF8)},
			want:   []hotkey.Key{hotkey.KeyF8},
		},
		{
			name:   "release rearms the key",
			events: []hook.Event{hold(vcF8), up(vcF8), hold(vcF8)},
			want:   []hotkey.Key{hotkey.KeyF8, hotkey.KeyF8},
		},
		{
			name:   "media key",
			events: []hook.Event{hold(vcMediaPlay), up(vcMediaPlay)},
			want:   []hotkey.Key{hotkey.KeyMediaPlayPause},
		},
		{
			name:   "unknown keycode is skipped",
			events: []hook.Event{hold(letterA), up(letterA)},
		},
		{
			name:   "unregistered key does not fire",
			events: []hook.Event{hold(vcF9), up(vcF9)},
		},
		{
			name:   "typed events are ignored",
			events: []hook.Event{{Kind: hook.KeyDown, Keycode: vcF8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := newHooker(options{})
			assert.NoError(t, err)
			h := b.(*hooker)

			var got []hotkey.Key
			for _, k := range []hotkey.Key{hotkey.KeyF8, hotkey.KeyMediaPlayPause} {
				h.handlers[k] = func() { got = append(got, k) }
			}

			events := make(chan hook.Event, len(tt.events))
			for _, ev := range tt.events {
				events <- ev
			}
			close(events)
			h.loop(events)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHookerLoopAfterUnregister(t *testing.T) {
	b, err := newHooker(options{})
	assert.NoError(t, err)
	h := b.(*hooker)

	fired := 0
	h.handlers[hotkey.KeyF7] = func() { fired++ }
	assert.NoError(t, h.Unregister(hotkey.KeyF7))

	events := make(chan hook.Event, 1)
	events <- hook.Event{Kind: hook.KeyHold, Keycode: vcF7}
	close(events)
	h.loop(events)

	assert.Zero(t, fired)
}
