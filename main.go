package main

import (
	"flag"
	"log"
	"strings"

	"github.com/automoto/titlemenu/config"
	"github.com/automoto/titlemenu/fonts"
	"github.com/automoto/titlemenu/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// RequestQuit makes the next Update end the game loop
func (g *Game) RequestQuit() {
	g.quit = true
}

func NewGame() *Game {
	g := &Game{}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewStartedScene(g, config.Menu.MenuOptions[0])
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	if g.quit {
		log.Println("[game] shutting down")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	width := flag.Int("width", config.C.Width, "Logical screen width")
	height := flag.Int("height", config.C.Height, "Logical screen height")
	fontSize := flag.Float64("font-size", config.Menu.FontSize, "Menu font size, also the spacing between options")
	options := flag.String("options", strings.Join(config.Menu.MenuOptions, ","), "Comma separated menu option labels")
	skipMenu := flag.Bool("skip-menu", config.Debug.SkipMenu, "Skip the menu and open the started screen")
	flag.Parse()

	config.C.Width = *width
	config.C.Height = *height
	config.Menu.FontSize = *fontSize
	config.Menu.MenuOptions = splitOptions(*options)
	config.Debug.SkipMenu = *skipMenu

	if len(config.Menu.MenuOptions) == 0 {
		log.Fatalf("[game] no menu options given")
	}

	if err := fonts.LoadDefaults(config.Menu.FontSize, config.SubView.TitleFontSize, config.Menu.HintFontSize); err != nil {
		log.Fatalf("[game] failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Title Menu")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

// splitOptions turns a comma separated flag value into trimmed, non-empty labels
func splitOptions(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
