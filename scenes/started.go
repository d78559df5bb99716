package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/titlemenu/config"
	"github.com/automoto/titlemenu/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartedScene is shown once the first menu option is confirmed
type StartedScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	label        string
	once         sync.Once
}

// NewStartedScene creates a started scene for the chosen label
func NewStartedScene(sc SceneChanger, label string) *StartedScene {
	return &StartedScene{sceneChanger: sc, label: label}
}

func (ss *StartedScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *StartedScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *StartedScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())
	systems.GetOrCreateStarted(ss.ecs, ss.label)

	createMenuScene := func() interface{} {
		return NewMenuScene(ss.sceneChanger)
	}

	// Input runs first so back is seen on the same frame
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateStarted(ss.sceneChanger, createMenuScene))

	ss.ecs.AddRenderer(cfg.Default, systems.DrawStarted)
}
