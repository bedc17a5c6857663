package app

import "fmt"

// scriptRunner runs JavaScript in the hosted page. *application.WebviewWindow
// satisfies it.
type scriptRunner interface {
	ExecJS(js string)
}

// ScriptPlayer invokes the page's global playback functions by name.
type ScriptPlayer struct {
	target scriptRunner
}

// NewScriptPlayer creates a player driving target.
func NewScriptPlayer(target scriptRunner) *ScriptPlayer {
	return &ScriptPlayer{target: target}
}

func (p *ScriptPlayer) PlayPause() { p.call("playpause") }
func (p *ScriptPlayer) Next()      { p.call("next") }
func (p *ScriptPlayer) Previous()  { p.call("previous") }
func (p *ScriptPlayer) Stop()      { p.call("stop") }

func (p *ScriptPlayer) call(fn string) {
	if p.target == nil {
		return
	}
	p.target.ExecJS(guardedCall(fn))
}

// guardedCall builds a call that does nothing while the page has not defined
// fn yet.
func guardedCall(fn string) string {
	return fmt.Sprintf("typeof window.%[1]s === 'function' && window.%[1]s();", fn)
}
