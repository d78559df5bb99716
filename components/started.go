package components

import "github.com/yohamta/donburi"

// StartedData stores what the started screen shows
type StartedData struct {
	Label string // Menu option that led here
}

var Started = donburi.NewComponentType[StartedData]()
