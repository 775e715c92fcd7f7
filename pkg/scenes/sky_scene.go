package scenes

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/starry/pkg/render"
	"github.com/gonewx/starry/pkg/sky"
	"github.com/gonewx/starry/pkg/utils"
)

// SkyScene 夜空场景
//
// 每帧读取指针按下事件发射烟花，再推进一帧动画。
// 绘制时按设备像素比把逻辑坐标放大到后备缓冲区。
type SkyScene struct {
	sky       *sky.Sky
	scale     float64
	showStats bool

	presses  []utils.PointerPress
	launched int // 尚未被 TakeLaunched 取走的发射数
}

// NewSkyScene 创建夜空场景
func NewSkyScene(s *sky.Sky) (*SkyScene, error) {
	if s == nil {
		return nil, errors.New("sky scene requires a sky")
	}
	return &SkyScene{
		sky:   s,
		scale: 1,
	}, nil
}

// Sky 返回场景持有的夜空
func (s *SkyScene) Sky() *sky.Sky {
	return s.sky
}

// SetScale 设置后备缓冲区像素与逻辑像素之比
func (s *SkyScene) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.scale = scale
}

// Scale 返回当前缩放比
func (s *SkyScene) Scale() float64 {
	return s.scale
}

// SetShowStats 设置统计叠加层开关
func (s *SkyScene) SetShowStats(show bool) {
	s.showStats = show
}

// ShowStats 返回统计叠加层开关
func (s *SkyScene) ShowStats() bool {
	return s.showStats
}

// HandlePress 处理一次指针按下（逻辑坐标）
func (s *SkyScene) HandlePress(p utils.PointerPress) {
	s.sky.Launch(p.X, p.Y)
	s.launched++
}

// TakeLaunched 返回并清零自上次调用以来的发射数
func (s *SkyScene) TakeLaunched() int {
	n := s.launched
	s.launched = 0
	return n
}

// Update 处理本帧的指针按下并推进一帧动画
func (s *SkyScene) Update() {
	s.presses = utils.AppendJustPressedPointers(s.presses[:0], s.scale)
	for _, p := range s.presses {
		s.HandlePress(p)
	}
	s.sky.Update()
}

// Draw 以当前缩放比绘制到 screen
func (s *SkyScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	s.sky.Draw(render.NewEbitenCanvas(screen, s.scale))

	if s.showStats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nFPS: %.1f  TPS: %.1f",
			s.sky.Stats(), ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}
