// Package app provides the core application service for Wails bindings.
package app

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v3/pkg/application"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go.aimuz.me/mediabar/assets"
	"go.aimuz.me/mediabar/config"
	"go.aimuz.me/mediabar/hotkey"
	"go.aimuz.me/mediabar/hotkey/native"
	"go.aimuz.me/mediabar/internal/control"
	"go.aimuz.me/mediabar/internal/locale"
	"go.aimuz.me/mediabar/internal/types"
)

// Service provides application functionality bound to Wails.
// The hosted page calls ReportPlaying and ReportPaused; everything else is
// driven from the tray.
type Service struct {
	cfg     *config.Config
	printer *message.Printer

	// UI references - set via Init
	app    *application.App
	window *application.WebviewWindow
	tray   *application.SystemTray

	keys      hotkey.Backend
	ctrl      *control.Controller
	lifecycle *control.Lifecycle
	trayMenu  menuSyncer

	// emit is replaced in tests.
	emit func(name string, data any)

	mu      sync.Mutex
	session string

	shutdownOnce sync.Once

	// Version info (set by caller)
	version string
}

// New creates a new Service. Call Init() after Wails app is created.
func New(version string, cfg *config.Config) *Service {
	s := &Service{
		cfg:     cfg,
		version: version,
		printer: locale.Printer(matchLocale(cfg)),
	}
	s.emit = s.emitEvent
	return s
}

// GetVersion returns the application version.
func (s *Service) GetVersion() string {
	return s.version
}

// Label translates a UI string for the active locale.
func (s *Service) Label(key string) string {
	return s.printer.Sprintf(key)
}

// Init wires the controller to the app, the popup window and the tray.
// Must be called after Wails application is created.
func (s *Service) Init(app *application.App, window *application.WebviewWindow, tray *application.SystemTray) {
	s.app = app
	s.window = window
	s.tray = tray

	s.keys = s.openHotkeys()

	icon := newTrayIcon(tray, assets.ForPlatform(runtime.GOOS))
	s.ctrl = control.New(s.keys, NewScriptPlayer(window), icon)
	s.ctrl.SetObserver(s.publish)

	menu := newTrayMenu(control.NewMenu(s.ctrl, s.quit), s.printer)
	tray.SetMenu(menu.build(app))
	s.trayMenu = menu

	s.lifecycle = control.NewLifecycle(s.ctrl, control.Hooks{
		InstallAppMenu:  s.installAppMenu,
		ShowWindow:      s.showWindow,
		InstallTrayMenu: s.installTrayMenu,
	}, s.cfg.ShowDelay())
}

// Ready runs once the application has started.
func (s *Service) Ready() {
	s.lifecycle.Ready()
}

// WindowCreated runs once the popup window exists.
func (s *Service) WindowCreated() {
	s.lifecycle.WindowCreated()
}

// Shutdown releases every global hotkey and closes the hotkey backend.
func (s *Service) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.lifecycle != nil {
			s.lifecycle.Quit()
		}
		if s.keys != nil {
			if err := s.keys.Close(); err != nil {
				slog.Error("close hotkeys", "error", err)
			}
		}
	})
}

// ServiceShutdown is called by Wails when the application exits.
func (s *Service) ServiceShutdown() error {
	s.Shutdown()
	return nil
}

func (s *Service) openHotkeys() hotkey.Backend {
	var opts []native.Option
	if runtime.GOOS == "darwin" {
		opts = append(opts, native.WithMainThread(application.InvokeSync))
	}

	keys, err := native.New(s.cfg.HotkeyBackend, opts...)
	if err != nil {
		slog.Error("open hotkey backend", "backend", s.cfg.HotkeyBackend, "error", err)
		return nopHotkeys{}
	}
	slog.Info("hotkey backend ready", "backend", s.cfg.HotkeyBackend)
	return keys
}

func (s *Service) installAppMenu() {
	if s.app != nil {
		s.app.Menu.Set(application.DefaultApplicationMenu())
	}
}

// installTrayMenu opens the menu from the click handler. On Linux the tray
// shows the menu natively and this handler only sees middle clicks, so the
// checkboxes are also synced from publish.
func (s *Service) installTrayMenu() {
	if s.tray == nil {
		return
	}
	s.tray.OnRightClick(func() {
		s.trayMenu.sync()
		s.tray.OpenMenu()
	})
}

func (s *Service) showWindow() {
	if s.window != nil {
		s.window.Show()
		s.window.Focus()
	}
}

func (s *Service) quit() {
	s.Shutdown()
	if s.app != nil {
		s.app.Quit()
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Playback state (called from the hosted page)
// ─────────────────────────────────────────────────────────────────────────────

// ReportPlaying tells the host that playback started.
func (s *Service) ReportPlaying() {
	s.mu.Lock()
	if s.session == "" {
		s.session = uuid.NewString()
		slog.Info("playback started", "session", s.session)
	}
	s.mu.Unlock()

	s.ctrl.ReportPlaying()
}

// ReportPaused tells the host that playback paused.
func (s *Service) ReportPaused() {
	s.mu.Lock()
	if s.session != "" {
		slog.Info("playback paused", "session", s.session)
		s.session = ""
	}
	s.mu.Unlock()

	s.ctrl.ReportPaused()
}

// GetMenuState returns the tray menu checkbox state.
func (s *Service) GetMenuState() types.MenuState {
	return s.ctrl.MenuState()
}

// GetPlaybackState returns the last reported playback state.
func (s *Service) GetPlaybackState() types.PlaybackState {
	return s.playbackState(s.ctrl.State())
}

func (s *Service) playbackState(st control.State) types.PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return types.PlaybackState{
		Playing:   st.Playing,
		Indicator: st.IndicatorEnabled,
		Icon:      st.Icon(),
		Session:   s.session,
	}
}

func (s *Service) publish(st control.State) {
	if s.trayMenu != nil {
		s.trayMenu.sync()
	}
	s.emit(EventMenuState, st.Menu())
	s.emit(EventPlaybackState, s.playbackState(st))
}

// emitEvent is a safe wrapper around app.Event.Emit
func (s *Service) emitEvent(name string, data any) {
	if s.app != nil {
		s.app.Event.Emit(name, data)
	}
}

func matchLocale(cfg *config.Config) language.Tag {
	if cfg != nil && cfg.Locale != "" {
		return locale.Match(cfg.Locale)
	}
	return locale.FromEnv()
}

// menuSyncer copies controller state onto a rendered menu.
type menuSyncer interface {
	sync()
}

// nopHotkeys stands in when no hotkey backend could be opened.
type nopHotkeys struct{}

func (nopHotkeys) Register(key hotkey.Key, _ func()) error {
	return fmt.Errorf("register %s: %w", key, hotkey.ErrUnsupportedKey)
}

func (nopHotkeys) Unregister(hotkey.Key) error { return nil }

func (nopHotkeys) Close() error { return nil }
