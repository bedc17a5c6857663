package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"go.aimuz.me/mediabar/config"
	"go.aimuz.me/mediabar/internal/app"
	"go.aimuz.me/mediabar/internal/logging"
)

//go:embed all:frontend/dist
var frontend embed.FS

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info")
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	slog.Info("starting app", "version", version, "commit", commit, "date", date)
	appService := app.New(version, cfg)

	wailsApp := application.New(application.Options{
		Name:        "Mediabar",
		Description: "Media controls in the system tray",
		Services: []application.Service{
			application.NewService(appService),
		},
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(frontend),
		},
		Mac: application.MacOptions{
			ActivationPolicy: application.ActivationPolicyAccessory,
			// Don't quit when the popup is closed (we have a system tray)
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
	})

	// Popup window, created hidden and shown once the app is ready
	popup := wailsApp.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:          "popup",
		Title:         "Mediabar",
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		URL:           cfg.ContentURL,
		Hidden:        true,
		Frameless:     true,
		AlwaysOnTop:   true,
		DisableResize: true,
		Windows: application.WindowsWindow{
			HiddenOnTaskbar: true,
		},
	})

	// Intercept window close: hide instead of destroy so tray can reopen
	popup.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		e.Cancel()
		popup.Hide()
	})
	popup.OnWindowEvent(events.Common.WindowLostFocus, func(*application.WindowEvent) {
		popup.Hide()
	})

	// Tray icon; a left click toggles the popup, a right click opens the menu.
	// Init sets the image.
	systemTray := wailsApp.SystemTray.New()
	systemTray.SetTooltip(appService.Label("Media controls"))
	systemTray.AttachWindow(popup).WindowOffset(5)

	appService.Init(wailsApp, popup, systemTray)

	wailsApp.Event.OnApplicationEvent(events.Common.ApplicationStarted, func(*application.ApplicationEvent) {
		appService.Ready()
		appService.WindowCreated()
	})

	if err := wailsApp.Run(); err != nil {
		slog.Error("run app", "error", err)
	}
}
