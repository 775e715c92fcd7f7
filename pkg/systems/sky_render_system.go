package systems

import (
	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
	"github.com/gonewx/starry/pkg/render"
	"github.com/gonewx/starry/pkg/utils"
)

const (
	// 流星尾迹终点 = 头部 - 速度 × Length / meteorTailDivisor
	meteorTailDivisor = 10
	// 渐变只覆盖头部之后 meteorFadeSpan 个速度长度，更远的尾迹完全透明
	meteorFadeSpan = 5
)

// SkyRenderSystem 每帧完整重绘夜空
//
// 绘制顺序（从后到前）：
//  1. 背景竖直渐变
//  2. 星星
//  3. 星座（先连线，再逐个顶点绘制光晕和核心）
//  4. 流星
//  5. 烟花（上升中的弹头或爆炸粒子）
type SkyRenderSystem struct {
	entityManager *ecs.EntityManager
	config        *config.SkyConfig
	constellation *ConstellationSystem
}

// NewSkyRenderSystem 创建夜空渲染系统
func NewSkyRenderSystem(em *ecs.EntityManager, cfg *config.SkyConfig, constellation *ConstellationSystem) *SkyRenderSystem {
	return &SkyRenderSystem{
		entityManager: em,
		config:        cfg,
		constellation: constellation,
	}
}

// SetConfig 替换配置
func (s *SkyRenderSystem) SetConfig(cfg *config.SkyConfig) {
	s.config = cfg
}

// Draw 在画布上绘制一帧
func (s *SkyRenderSystem) Draw(canvas render.Canvas, tick uint64, width, height float64) {
	s.drawBackground(canvas, width, height)
	s.drawStars(canvas, tick)
	s.drawConstellation(canvas, tick)
	s.drawMeteors(canvas)
	s.drawFireworks(canvas)
}

func (s *SkyRenderSystem) drawBackground(canvas render.Canvas, width, height float64) {
	canvas.FillVerticalGradient(0, 0, width, height,
		config.MustColor(s.config.Background.Top),
		config.MustColor(s.config.Background.Bottom))
}

func (s *SkyRenderSystem) drawStars(canvas render.Canvas, tick uint64) {
	white := config.MustColor("#ffffff")
	ids := ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		canvas.FillCircle(pos.X, pos.Y, star.Radius, render.WithAlpha(white, StarAlpha(star, tick)))
	}
}

func (s *SkyRenderSystem) drawConstellation(canvas render.Canvas, tick uint64) {
	points := s.constellation.Points()
	if len(points) == 0 {
		return
	}
	c := &s.config.Constellation
	swayX, swayY := s.constellation.Sway(tick)

	line := render.WithAlpha(config.MustColor(c.LineColor), c.LineAlpha)
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		canvas.StrokeLine(prev.X+swayX, prev.Y+swayY, cur.X+swayX, cur.Y+swayY, c.LineWidth, line)
	}

	glow := config.MustColor(c.GlowColor)
	core := config.MustColor(c.CoreColor)
	for i, p := range points {
		blink := s.constellation.Blink(tick, i)
		x, y := p.X+swayX, p.Y+swayY
		canvas.FillCircle(x, y, c.GlowRadius, render.WithAlpha(glow, blink*0.2))
		canvas.FillCircle(x, y, c.CoreRadius, render.WithAlpha(core, blink))
	}
}

func (s *SkyRenderSystem) drawMeteors(canvas render.Canvas) {
	white := config.MustColor("#ffffff")
	ids := ecs.GetEntitiesWith2[*components.MeteorComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		meteor, _ := ecs.GetComponent[*components.MeteorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}

		head := utils.Clamp01(meteor.Alpha)
		span := min(meteor.Length/meteorTailDivisor, meteorFadeSpan)
		if span <= 0 {
			continue
		}
		tailX := pos.X - vel.VX*span
		tailY := pos.Y - vel.VY*span
		canvas.StrokeGradientLine(pos.X, pos.Y, tailX, tailY, meteor.Thickness,
			render.WithAlpha(white, head),
			render.WithAlpha(white, head*(1-span/meteorFadeSpan)))
	}
}

func (s *SkyRenderSystem) drawFireworks(canvas render.Canvas) {
	cfg := &s.config.Fireworks
	ids := ecs.GetEntitiesWith2[*components.FireworkComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		fw, _ := ecs.GetComponent[*components.FireworkComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		switch fw.State {
		case components.FireworkAscending:
			canvas.FillCircle(pos.X, pos.Y, cfg.HeadRadius, fw.Color)
		case components.FireworkExploded:
			for _, p := range fw.Particles {
				canvas.FillCircle(p.X, p.Y, cfg.ParticleRadius, render.WithAlpha(p.Color, utils.Clamp01(p.Alpha)))
			}
		}
	}
}
