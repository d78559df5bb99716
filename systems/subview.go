package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SubView is the panel shown in place of the main menu
type SubView interface {
	Title() string
	SetTitle(title string)
	Update()
	Draw(screen *ebiten.Image)
}

// NewUpdateSubView keeps the sub-view panel in sync with the option that opened it.
// Runs after the menu system so the panel is ready on the frame it is opened.
func NewUpdateSubView(sv SubView) ecs.System {
	return func(e *ecs.ECS) {
		menu, ok := GetMenu(e)
		if !ok || menu.Shown {
			return
		}
		if title := menu.Active().Text; sv.Title() != title {
			sv.SetTitle(title)
		}
		sv.Update()
	}
}

// NewDrawSubView draws the panel only while the main menu is hidden
func NewDrawSubView(sv SubView) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		menu, ok := GetMenu(e)
		if !ok || menu.Shown {
			return
		}
		sv.Draw(screen)
	}
}
