// Package assets embeds the tray icons.
package assets

import (
	_ "embed"

	"go.aimuz.me/mediabar/internal/types"
)

var (
	//go:embed iconTemplate.png
	iconTemplate []byte

	//go:embed iconWhite.png
	iconWhite []byte

	//go:embed iconOrange.png
	iconOrange []byte
)

// TrayIcon is an image for the tray plus how to display it.
type TrayIcon struct {
	Data []byte
	// Template marks a monochrome mask the OS recolours for light and dark
	// menu bars.
	Template bool
}

// Icons holds the two tray images for one platform.
type Icons struct {
	Default TrayIcon
	Playing TrayIcon
}

// ForPlatform returns the icons for goos. Windows gets a white icon; every
// other platform gets a template image.
func ForPlatform(goos string) Icons {
	def := TrayIcon{Data: iconTemplate, Template: true}
	if goos == "windows" {
		def = TrayIcon{Data: iconWhite}
	}
	return Icons{
		Default: def,
		Playing: TrayIcon{Data: iconOrange},
	}
}

// Get returns the image for icon.
func (i Icons) Get(icon types.Icon) TrayIcon {
	if icon == types.IconPlaying {
		return i.Playing
	}
	return i.Default
}
