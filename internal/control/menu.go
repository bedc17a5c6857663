package control

import "fmt"

// MenuItemID identifies a tray menu entry.
type MenuItemID string

const (
	MenuBindMediaKeys    MenuItemID = "bind-media-keys"
	MenuBindFunctionKeys MenuItemID = "bind-function-keys"
	MenuShowIndicator    MenuItemID = "show-indicator"
	MenuQuit             MenuItemID = "quit"
)

// MenuItem is one entry of the tray context menu. Label is the English
// text and doubles as the translation key.
type MenuItem struct {
	ID       MenuItemID
	Label    string
	Checkbox bool
	Checked  bool
}

// Menu is the tray context menu model.
type Menu struct {
	ctrl *Controller
	quit func()
}

// NewMenu creates the menu for ctrl. quit is called by the Quit entry.
func NewMenu(ctrl *Controller, quit func()) *Menu {
	return &Menu{ctrl: ctrl, quit: quit}
}

// Items returns the entries in display order, with checkbox state read from
// the controller at call time.
func (m *Menu) Items() []MenuItem {
	s := m.ctrl.State()
	return []MenuItem{
		{ID: MenuBindMediaKeys, Label: "Bind Media Keys", Checkbox: true, Checked: s.MediaKeysBound},
		{ID: MenuBindFunctionKeys, Label: "Bind Function Keys", Checkbox: true, Checked: s.FunctionKeysBound},
		{ID: MenuShowIndicator, Label: "Show Playing Indicator", Checkbox: true, Checked: s.IndicatorEnabled},
		{ID: MenuQuit, Label: "Quit"},
	}
}

// Click performs the action of the entry id.
func (m *Menu) Click(id MenuItemID) error {
	switch id {
	case MenuBindMediaKeys:
		m.ctrl.ToggleMediaKeys()
	case MenuBindFunctionKeys:
		m.ctrl.ToggleFunctionKeys()
	case MenuShowIndicator:
		m.ctrl.ToggleIndicator()
	case MenuQuit:
		if m.quit != nil {
			m.quit()
		}
	default:
		return fmt.Errorf("unknown menu item: %s", id)
	}
	return nil
}
