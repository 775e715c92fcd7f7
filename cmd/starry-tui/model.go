package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gonewx/starry/pkg/render"
	"github.com/gonewx/starry/pkg/sky"
)

const (
	// 每个字符格代表的逻辑像素
	cellWidth  = 8
	cellHeight = 16

	frameInterval = time.Second / 30
)

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#fffff0")).
	Background(lipgloss.Color("#1e1b4b")).
	Padding(0, 1)

// frameMsg 动画帧
type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// model 终端夜空
// 最后一行留给状态栏，其余行是画布
type model struct {
	sky       *sky.Sky
	canvas    *render.CellCanvas
	showStats bool
}

func newModel(s *sky.Sky) model {
	return model{sky: s}
}

func (m model) Init() tea.Cmd {
	return nextFrame()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.showStats = !m.showStats
		}

	case tea.WindowSizeMsg:
		rows := max(msg.Height-1, 1)
		m.canvas = render.NewCellCanvas(msg.Width, rows, cellWidth, cellHeight)
		m.sky.Resize(float64(msg.Width*cellWidth), float64(rows*cellHeight))

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.sky.Launch((float64(msg.X)+0.5)*cellWidth, (float64(msg.Y)+0.5)*cellHeight)
		}

	case frameMsg:
		m.sky.Update()
		return m, nextFrame()
	}

	return m, nil
}

func (m model) View() string {
	if m.canvas == nil {
		return "Loading sky..."
	}

	m.canvas.Reset()
	m.sky.Draw(m.canvas)

	status := "click: firework  s: stats  q: quit"
	if m.showStats {
		status = m.sky.Stats().String()
	}
	return m.canvas.String() + "\n" + statusStyle.Render(status)
}
