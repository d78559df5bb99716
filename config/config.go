package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds the logical screen size
type Config struct {
	Width  int
	Height int
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	HintColor         color.RGBA
	FontSize          float64 // Point size, also used as the line step between options
	HintFontSize      float64
	MenuOptions       []string
}

// SubViewConfig contains the panel shown while the main menu is hidden
type SubViewConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleFontSize   float64
	TextFontSize    float64
	Padding         int
	Spacing         int
	ReturnHint      string
}

// StartedConfig contains the screen shown after the first option is confirmed
type StartedConfig struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	Hint            string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the started screen
}

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Global configuration instances
var C *Config
var Menu MenuConfig
var SubView SubViewConfig
var Started StartedConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Teal         = color.RGBA{R: 0, G: 158, B: 138, A: 255} // Active menu option
	Grey         = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	Navy         = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	DarkPanel    = color.RGBA{R: 30, G: 30, B: 45, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Menu = MenuConfig{
		BackgroundColor:   Navy,
		TextColorNormal:   White,
		TextColorSelected: Teal,
		HintColor:         Grey,
		FontSize:          24,
		HintFontSize:      12,
		MenuOptions:       []string{"Start", "Options", "Credits", "Quit"},
	}

	SubView = SubViewConfig{
		BackgroundColor: BlackOverlay,
		PanelColor:      DarkPanel,
		TitleColor:      Teal,
		TextColor:       White,
		TitleFontSize:   20,
		TextFontSize:    12,
		Padding:         12,
		Spacing:         8,
		ReturnHint:      "Press Enter to return",
	}

	Started = StartedConfig{
		BackgroundColor: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		TextColor:       White,
		Hint:            "Esc: Back to menu",
	}

	// Defaults, can be overridden by CLI flags
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
