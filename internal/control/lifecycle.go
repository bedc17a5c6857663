package control

import (
	"log/slog"
	"sync"
	"time"
)

// Hooks are the windowing operations the lifecycle drives.
type Hooks struct {
	// InstallAppMenu sets the platform default application menu.
	InstallAppMenu func()
	// ShowWindow shows the popup window.
	ShowWindow func()
	// InstallTrayMenu installs the right-click handler on the tray icon.
	InstallTrayMenu func()
}

// Lifecycle wires application start, window creation and quit to the
// controller.
type Lifecycle struct {
	ctrl  *Controller
	hooks Hooks
	delay time.Duration

	// after schedules fn; replaced in tests.
	after func(d time.Duration, fn func())

	windowOnce sync.Once
	quitOnce   sync.Once
}

// NewLifecycle creates a Lifecycle. delay is the pause between ready and
// showing the window.
func NewLifecycle(ctrl *Controller, hooks Hooks, delay time.Duration) *Lifecycle {
	return &Lifecycle{
		ctrl:  ctrl,
		hooks: hooks,
		delay: delay,
		after: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// Ready installs the application menu and shows the window after the delay.
// The delay only works around a window-visibility race on some hosts.
func (l *Lifecycle) Ready() {
	if l.hooks.InstallAppMenu != nil {
		l.hooks.InstallAppMenu()
	}
	if l.hooks.ShowWindow != nil {
		l.after(l.delay, l.hooks.ShowWindow)
	}
	slog.Info("application ready")
}

// WindowCreated performs the initial hotkey registration and installs the
// tray right-click handler. Only the first call has an effect.
func (l *Lifecycle) WindowCreated() {
	l.windowOnce.Do(func() {
		l.ctrl.RegisterAll()
		if l.hooks.InstallTrayMenu != nil {
			l.hooks.InstallTrayMenu()
		}
	})
}

// Quit releases every global hotkey. It is safe to call more than once.
func (l *Lifecycle) Quit() {
	l.quitOnce.Do(func() {
		l.ctrl.Shutdown()
		slog.Info("application quitting")
	})
}
