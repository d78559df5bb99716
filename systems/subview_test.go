package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeSubView struct {
	title     string
	setCalls  int
	updates   int
	drawCalls int
}

func (f *fakeSubView) Title() string { return f.title }

func (f *fakeSubView) SetTitle(title string) {
	f.title = title
	f.setCalls++
}

func (f *fakeSubView) Update() { f.updates++ }

func (f *fakeSubView) Draw(_ *ebiten.Image) { f.drawCalls++ }

func TestUpdateSubView(t *testing.T) {
	tests := []struct {
		name        string
		shown       bool
		active      int
		frames      int
		wantTitle   string
		wantSets    int
		wantUpdates int
	}{
		{"menu shown leaves panel alone", true, 1, 1, "", 0, 0},
		{"hidden syncs active label", false, 1, 1, "Options", 1, 1},
		{"title set once across frames", false, 2, 3, "Credits", 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m, _ := newTestMenu(t, mainLabels)
			m.ActiveIndex = tt.active
			m.Shown = tt.shown

			sv := &fakeSubView{}
			system := NewUpdateSubView(sv)
			for i := 0; i < tt.frames; i++ {
				system(e)
			}

			if sv.title != tt.wantTitle {
				t.Errorf("expected title %q, got %q", tt.wantTitle, sv.title)
			}
			if sv.setCalls != tt.wantSets {
				t.Errorf("expected %d SetTitle calls, got %d", tt.wantSets, sv.setCalls)
			}
			if sv.updates != tt.wantUpdates {
				t.Errorf("expected %d updates, got %d", tt.wantUpdates, sv.updates)
			}
		})
	}
}

func TestUpdateSubView_FollowsNewSelection(t *testing.T) {
	e, m, _ := newTestMenu(t, mainLabels)
	sv := &fakeSubView{}
	system := NewUpdateSubView(sv)

	m.ActiveIndex = 1
	m.Shown = false
	system(e)

	m.Shown = true
	m.ActiveIndex = 2
	m.Shown = false
	system(e)

	if sv.title != "Credits" {
		t.Errorf("expected title Credits, got %q", sv.title)
	}
}

func TestDrawSubView_OnlyWhileHidden(t *testing.T) {
	e, m, _ := newTestMenu(t, mainLabels)
	sv := &fakeSubView{}
	draw := NewDrawSubView(sv)

	draw(e, nil)
	if sv.drawCalls != 0 {
		t.Fatalf("expected no draw while menu shown, got %d", sv.drawCalls)
	}

	m.Shown = false
	draw(e, nil)
	if sv.drawCalls != 1 {
		t.Errorf("expected one draw while hidden, got %d", sv.drawCalls)
	}
}
