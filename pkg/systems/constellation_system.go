package systems

import (
	"math"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
	"github.com/gonewx/starry/pkg/entities"
	"github.com/gonewx/starry/pkg/utils"
)

// ConstellationSystem 管理北斗七星
//
// 屏幕坐标只在 Resize 时重新计算；逐帧的摇摆偏移和闪烁由 Sway / Blink 给出，
// 在绘制时叠加。
type ConstellationSystem struct {
	entityManager *ecs.EntityManager
	config        *config.SkyConfig
	entityID      ecs.EntityID
}

// NewConstellationSystem 创建星座系统并生成星座实体
func NewConstellationSystem(em *ecs.EntityManager, cfg *config.SkyConfig) *ConstellationSystem {
	return &ConstellationSystem{
		entityManager: em,
		config:        cfg,
		entityID:      entities.NewConstellationEntity(em, &cfg.Constellation),
	}
}

// SetConfig 替换配置并重建星座实体
// 重建后屏幕坐标为零值，调用方需要再执行一次 Resize
func (s *ConstellationSystem) SetConfig(cfg *config.SkyConfig) {
	s.config = cfg
	s.entityManager.DestroyEntity(s.entityID)
	s.entityManager.RemoveMarkedEntities()
	s.entityID = entities.NewConstellationEntity(s.entityManager, &cfg.Constellation)
}

// Resize 按视口尺寸重新计算各顶点的屏幕坐标
// 移动端布局整体右移 MobileOffsetX（视口宽度比例）
func (s *ConstellationSystem) Resize(width, height float64) {
	constellation, ok := ecs.GetComponent[*components.ConstellationComponent](s.entityManager, s.entityID)
	if !ok {
		return
	}

	offsetX := 0.0
	if s.config.IsMobile(width) {
		offsetX = s.config.Constellation.MobileOffsetX
	}

	for i, p := range constellation.Normalized {
		constellation.Screen[i] = components.Vec2{
			X: (p.X + offsetX) * width,
			Y: p.Y * height,
		}
	}
}

// Points 返回当前的屏幕坐标（不含摇摆偏移）
func (s *ConstellationSystem) Points() []components.Vec2 {
	constellation, ok := ecs.GetComponent[*components.ConstellationComponent](s.entityManager, s.entityID)
	if !ok {
		return nil
	}
	return constellation.Screen
}

// Sway 返回指定帧全体顶点共享的摇摆偏移
func (s *ConstellationSystem) Sway(tick uint64) (float64, float64) {
	c := &s.config.Constellation
	phase := float64(tick) * c.SwaySpeed
	return math.Sin(phase) * c.SwayX, math.Cos(phase) * c.SwayY
}

// Blink 返回第 i 个顶点在指定帧的亮度，位于 [0, 1]
func (s *ConstellationSystem) Blink(tick uint64, i int) float64 {
	return utils.Clamp01(0.6 + 0.4*math.Sin(float64(tick)*s.config.Constellation.BlinkSpeed+float64(i)))
}
