package systems

import (
	"errors"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/automoto/titlemenu/components"
	cfg "github.com/automoto/titlemenu/config"
	"github.com/automoto/titlemenu/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Option positions with a bound confirm action
const (
	OptionStart   = 0
	OptionSubView = 1
	OptionNoop    = 2
	OptionQuit    = 3
)

// ErrNoOptions is returned when a menu is built without any labels
var ErrNoOptions = errors.New("menu needs at least one option")

// Canvas receives one draw call per menu option
type Canvas interface {
	DrawLabel(label string, rect image.Rectangle, clr color.Color)
}

// NewMenu lays out the labels and stores the resulting state on a new menu entity.
func NewMenu(e *ecs.ECS, txt *fonts.Text, labels []string) (*components.MenuData, error) {
	if len(labels) == 0 {
		return nil, ErrNoOptions
	}

	ent := e.World.Entry(e.World.Create(components.Menu))
	components.Menu.SetValue(ent, components.MenuData{
		Options:     CreateOptions(txt, labels, 0),
		ActiveIndex: 0,
		Shown:       true,
	})
	return components.Menu.Get(ent), nil
}

// GetMenu returns the singleton Menu component if one exists
func GetMenu(e *ecs.ECS) (*components.MenuData, bool) {
	ent, ok := components.Menu.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Menu.Get(ent), true
}

// CreateOptions computes each label's rectangle and color.
// Labels are centered horizontally and stacked one FontSize apart around the
// vertical middle of the surface. half stays fractional for odd counts.
func CreateOptions(txt *fonts.Text, labels []string, active int) []components.OptionData {
	half := float64(len(labels)) / 2
	step := float64(txt.FontSize)
	options := make([]components.OptionData, len(labels))

	for i, label := range labels {
		size := txt.Measure(label)
		x := math.Floor(float64(txt.Width)/2 - float64(size.X)/2)
		// Snap the centred position first, then the offset, so every
		// option lands on the same pixel grid even for half-line offsets.
		y := math.Floor(float64(txt.Height)/2 - float64(size.Y)/2)

		idx := float64(i)
		if idx < half {
			y = math.Floor(y - step*(half-idx))
		} else {
			y = math.Floor(y + step*(idx-half))
		}

		topLeft := image.Pt(int(x), int(y))
		options[i] = components.OptionData{
			Text:  label,
			Rect:  image.Rectangle{Min: topLeft, Max: topLeft.Add(size)},
			Order: i,
			Color: txt.ColorFor(i == active),
		}
	}

	return options
}

// HandleKeyPress applies a key event to the shown menu.
// It reports true only when the first option is confirmed.
func HandleKeyPress(m *components.MenuData, txt *fonts.Text, ev components.KeyEvent) bool {
	switch ev.Key {
	case components.KeyUp:
		MoveUp(m, txt)
	case components.KeyDown:
		MoveDown(m, txt)
	case components.KeyConfirm:
		switch m.ActiveIndex {
		case OptionStart:
			return true
		case OptionSubView:
			m.Shown = false
		case OptionNoop:
			// Nothing is bound to this entry yet.
		case OptionQuit:
			m.QuitRequested = true
		}
	}
	return false
}

// HandleReturn brings the menu back after a sub-view when confirm is pressed.
func HandleReturn(m *components.MenuData, ev components.KeyEvent) {
	if ev.Key == components.KeyConfirm {
		m.Shown = true
	}
}

// MoveDown highlights the next option. It reports false at the last entry.
func MoveDown(m *components.MenuData, txt *fonts.Text) bool {
	if m.ActiveIndex == len(m.Options)-1 {
		return false
	}
	setActive(m, txt, m.ActiveIndex+1)
	return true
}

// MoveUp highlights the previous option. It reports false at the first entry.
func MoveUp(m *components.MenuData, txt *fonts.Text) bool {
	if m.ActiveIndex == 0 {
		return false
	}
	setActive(m, txt, m.ActiveIndex-1)
	return true
}

// setActive recolors only the previous and the new active entries
func setActive(m *components.MenuData, txt *fonts.Text, index int) {
	m.Options[m.ActiveIndex].Color = txt.ColorFor(false)
	m.ActiveIndex = index
	m.Options[m.ActiveIndex].Color = txt.ColorFor(true)
}

// RenderOptions issues one draw per option at its precomputed rectangle.
func RenderOptions(m *components.MenuData, dst Canvas) {
	for _, opt := range m.Options {
		dst.DrawLabel(opt.Text, opt.Rect, opt.Color)
	}
}

// NewUpdateMenu creates an UpdateMenu system. onSelect fires when the first
// option is confirmed and onQuit once the quit option is confirmed.
func NewUpdateMenu(txt *fonts.Text, onSelect func(label string), onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu, ok := GetMenu(e)
		if !ok {
			return
		}
		input := GetOrCreateInput(e)

		for _, ev := range MenuKeyEvents(input) {
			if !menu.Shown {
				HandleReturn(menu, ev)
				if menu.Shown {
					log.Printf("[menu] returned from %q", menu.Active().Text)
				}
				continue
			}

			if HandleKeyPress(menu, txt, ev) {
				log.Printf("[menu] selected %q", menu.Active().Text)
				if onSelect != nil {
					onSelect(menu.Active().Text)
				}
				return
			}
			if !menu.Shown {
				log.Printf("[menu] opened %q", menu.Active().Text)
			}
			if menu.QuitRequested {
				log.Println("[menu] quit requested")
				if onQuit != nil {
					onQuit()
				}
				return
			}
		}
	}
}

// screenCanvas draws labels onto an ebiten image with the menu's text base
type screenCanvas struct {
	screen *ebiten.Image
	txt    *fonts.Text
}

func (c *screenCanvas) DrawLabel(label string, rect image.Rectangle, clr color.Color) {
	// text.Draw positions by baseline, rects are top-left anchored
	text.Draw(c.screen, label, c.txt.Face, rect.Min.X, rect.Min.Y+c.txt.Ascent(), clr)
}

// NewDrawMenu creates the main menu renderer drawing labels with txt
func NewDrawMenu(txt *fonts.Text) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		drawMenu(e, screen, txt)
	}
}

func drawMenu(e *ecs.ECS, screen *ebiten.Image, txt *fonts.Text) {
	menu, ok := GetMenu(e)
	if !ok || !menu.Shown {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	RenderOptions(menu, &screenCanvas{screen: screen, txt: txt})

	// Navigation hint at bottom based on input method
	input := GetOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	_, adv := font.BoundString(hintFont, hint)
	hintX := int((width - float64(adv.Ceil())) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Menu.HintColor)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// MenuText builds the text base for a menu drawn with face on a width x height surface
func MenuText(face font.Face, width, height int) *fonts.Text {
	return &fonts.Text{
		Face:        face,
		FontSize:    int(cfg.Menu.FontSize),
		TextColor:   cfg.Menu.TextColorNormal,
		ActiveColor: cfg.Menu.TextColorSelected,
		Width:       width,
		Height:      height,
	}
}

