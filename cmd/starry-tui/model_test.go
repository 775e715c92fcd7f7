package main

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/sky"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	cfg := config.DefaultSkyConfig()
	cfg.Fireworks.SpawnChance = 0
	s, err := sky.New(cfg, rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("sky.New failed: %v", err)
	}
	return newModel(s)
}

func TestModel_ResizeMapsCellsToPixels(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Loading sky..." {
		t.Errorf("View before size = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 25})
	m = next.(model)

	w, h := m.sky.Size()
	if w != 80*cellWidth || h != 24*cellHeight {
		t.Errorf("sky size = %.0fx%.0f, want %dx%d", w, h, 80*cellWidth, 24*cellHeight)
	}
	// 640 像素宽小于分界宽度，按移动端数量生成
	if got := m.sky.Stats().Stars; got != 100 {
		t.Errorf("stars = %d, want 100", got)
	}

	view := m.View()
	if lines := strings.Count(view, "\n"); lines != 24 {
		t.Errorf("view has %d newlines, want 24", lines)
	}
}

func TestModel_MouseLaunchesFirework(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)

	next, _ = m.Update(tea.MouseMsg{X: 10, Y: 30, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(model)
	next, _ = m.Update(tea.MouseMsg{X: 10, Y: 30, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = next.(model)

	if got := m.sky.Stats().Fireworks; got != 1 {
		t.Errorf("fireworks = %d, want 1", got)
	}
}

func TestModel_FrameAdvancesSky(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(model)

	next, cmd := m.Update(frameMsg{})
	m = next.(model)
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}
	if m.sky.Tick() != 1 {
		t.Errorf("tick = %d, want 1", m.sky.Tick())
	}
}

func TestModel_Keys(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if !next.(model).showStats {
		t.Error("s should toggle stats")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
