package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/titlemenu/config"
	"github.com/automoto/titlemenu/fonts"
	"github.com/automoto/titlemenu/systems"
	"github.com/automoto/titlemenu/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions and shutdown
type SceneChanger interface {
	ChangeScene(scene interface{})
	RequestQuit()
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	err          error
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	if ms.err != nil {
		log.Printf("[menu] %v", ms.err)
		ms.sceneChanger.RequestQuit()
		return
	}
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	txt := systems.MenuText(fonts.Menu.Get(), cfg.C.Width, cfg.C.Height)
	if _, err := systems.NewMenu(ms.ecs, txt, cfg.Menu.MenuOptions); err != nil {
		ms.err = fmt.Errorf("build main menu: %w", err)
		return
	}

	subView, err := ui.NewSubViewUI()
	if err != nil {
		ms.err = err
		return
	}

	onSelect := func(label string) {
		ms.sceneChanger.ChangeScene(NewStartedScene(ms.sceneChanger, label))
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(txt, onSelect, ms.sceneChanger.RequestQuit))
	ms.ecs.AddSystem(systems.NewUpdateSubView(subView))

	// Sub-view draws on top of the menu layer
	ms.ecs.AddRenderer(cfg.Default, systems.NewDrawMenu(txt))
	ms.ecs.AddRenderer(cfg.Overlay, systems.NewDrawSubView(subView))
}
