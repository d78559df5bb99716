package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/titlemenu/components"
	cfg "github.com/automoto/titlemenu/config"
	"github.com/automoto/titlemenu/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// GetOrCreateStarted returns the singleton Started component, creating if needed
func GetOrCreateStarted(e *ecs.ECS, label string) *components.StartedData {
	if _, ok := components.Started.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Started))
		components.Started.SetValue(ent, components.StartedData{Label: label})
	}

	ent, _ := components.Started.First(e.World)
	return components.Started.Get(ent)
}

// NewUpdateStarted returns to the menu when back is pressed
func NewUpdateStarted(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawStarted renders the started screen
func DrawStarted(e *ecs.ECS, screen *ebiten.Image) {
	started, ok := components.Started.First(e.World)
	if !ok {
		return
	}
	data := components.Started.Get(started)

	screen.Fill(cfg.Started.BackgroundColor)
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	titleFont := fonts.Title.Get()
	title := fmt.Sprintf("%s selected", data.Label)
	drawCentered(screen, title, titleFont, width, height/2, cfg.Started.TextColor)

	hintFont := fonts.Small.Get()
	drawCentered(screen, cfg.Started.Hint, hintFont, width, height-12, cfg.Menu.HintColor)
}

// drawCentered draws s horizontally centered with its baseline at y
func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, clr color.Color) {
	_, adv := font.BoundString(face, s)
	x := (width - adv.Ceil()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
