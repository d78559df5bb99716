package components

import (
	"image"
	"image/color"

	"github.com/yohamta/donburi"
)

// OptionData is one selectable menu entry.
// Text, Rect and Order are fixed once laid out; Color follows the selection.
type OptionData struct {
	Text  string
	Rect  image.Rectangle
	Order int
	Color color.Color
}

// MenuData stores the current state of the main menu
type MenuData struct {
	Options       []OptionData // Indexed by position, never empty
	ActiveIndex   int          // Currently highlighted option
	Shown         bool         // False while a sub-view replaces the menu
	QuitRequested bool         // Set when the quit option is confirmed
}

// Active returns the currently highlighted option
func (m *MenuData) Active() *OptionData {
	return &m.Options[m.ActiveIndex]
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
