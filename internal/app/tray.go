package app

import (
	"log/slog"
	"sync"

	"github.com/wailsapp/wails/v3/pkg/application"
	"golang.org/x/text/message"

	"go.aimuz.me/mediabar/assets"
	"go.aimuz.me/mediabar/internal/control"
	"go.aimuz.me/mediabar/internal/types"
)

// iconSetter is the part of *application.SystemTray that shows an image.
type iconSetter interface {
	SetIcon(icon []byte) *application.SystemTray
	SetTemplateIcon(icon []byte) *application.SystemTray
}

// trayIcon shows controller icons on a Wails system tray.
type trayIcon struct {
	tray  iconSetter
	icons assets.Icons
}

// newTrayIcon shows the default image straight away.
func newTrayIcon(tray iconSetter, icons assets.Icons) *trayIcon {
	t := &trayIcon{tray: tray, icons: icons}
	t.SetIcon(types.IconDefault)
	return t
}

func (t *trayIcon) SetIcon(icon types.Icon) {
	img := t.icons.Get(icon)
	if img.Template {
		t.tray.SetTemplateIcon(img.Data)
	} else {
		t.tray.SetIcon(img.Data)
	}
}

// trayMenu renders a control.Menu as a Wails menu and keeps the checkboxes
// in step with the controller.
type trayMenu struct {
	model   *control.Menu
	printer *message.Printer

	mu    sync.Mutex
	menu  *application.Menu
	items map[control.MenuItemID]*application.MenuItem
}

func newTrayMenu(model *control.Menu, printer *message.Printer) *trayMenu {
	return &trayMenu{
		model:   model,
		printer: printer,
		items:   make(map[control.MenuItemID]*application.MenuItem),
	}
}

// build creates the Wails menu.
func (m *trayMenu) build(app *application.App) *application.Menu {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.menu = app.NewMenu()
	for _, it := range m.model.Items() {
		id := it.ID
		label := m.printer.Sprintf(it.Label)

		var item *application.MenuItem
		if it.Checkbox {
			item = m.menu.AddCheckbox(label, it.Checked)
		} else {
			m.menu.AddSeparator()
			item = m.menu.Add(label)
		}
		item.OnClick(func(*application.Context) {
			if err := m.model.Click(id); err != nil {
				slog.Error("tray menu click", "item", id, "error", err)
			}
		})
		m.items[id] = item
	}
	return m.menu
}

// sync copies the controller flags onto the checkboxes.
func (m *trayMenu) sync() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.menu == nil {
		return
	}
	for _, it := range m.model.Items() {
		if item := m.items[it.ID]; item != nil && it.Checkbox {
			item.SetChecked(it.Checked)
		}
	}
	m.menu.Update()
}
