// Package sky 组装夜空动画：星空、北斗七星、流星和烟花
//
// Sky 持有全部实体，由外部帧循环驱动：每帧先 Update 再 Draw。
// 视口尺寸变化、指针发射和配置替换都在两帧之间调用，不与 Update 并发。
package sky

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
	"github.com/gonewx/starry/pkg/render"
	"github.com/gonewx/starry/pkg/systems"
)

// ErrNilConfig 未提供配置
var ErrNilConfig = errors.New("sky config is nil")

// Sky 夜空动画世界
type Sky struct {
	config        *config.SkyConfig
	rng           *rand.Rand
	entityManager *ecs.EntityManager

	starField     *systems.StarFieldSystem
	constellation *systems.ConstellationSystem
	meteors       *systems.MeteorSystem
	fireworks     *systems.FireworkSystem
	renderer      *systems.SkyRenderSystem

	tick          uint64
	width, height float64
	launched      int
}

// Stats 当前帧的统计信息
type Stats struct {
	Tick      uint64
	Width     float64
	Height    float64
	Stars     int
	Meteors   int
	Fireworks int
	Particles int
	// Entities 存活实体总数（星星、星座、流星、烟花）
	Entities int
	// Launched 指针发射的烟花总数（不含自动发射）
	Launched int
}

// New 创建夜空
//
// 参数:
//   - cfg: 已验证的配置，不能为 nil
//   - rng: 随机源，nil 时使用按时间播种的随机源
//
// 返回的 Sky 尚无尺寸，需要先调用 Resize 才会生成星星。
func New(cfg *config.SkyConfig, rng *rand.Rand) (*Sky, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sky config: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	em := ecs.NewEntityManager()
	constellation := systems.NewConstellationSystem(em, cfg)

	return &Sky{
		config:        cfg,
		rng:           rng,
		entityManager: em,
		starField:     systems.NewStarFieldSystem(em, rng, cfg),
		constellation: constellation,
		meteors:       systems.NewMeteorSystem(em, rng, cfg),
		fireworks:     systems.NewFireworkSystem(em, rng, cfg),
		renderer:      systems.NewSkyRenderSystem(em, cfg, constellation),
	}, nil
}

// Resize 设置视口逻辑尺寸
//
// 重新生成星星并重新计算星座坐标。已有的流星和烟花保留原坐标。
// 非正尺寸被忽略（窗口最小化时 ebiten 可能报告 0）。
func (s *Sky) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height

	stars := s.starField.Regenerate(width, height)
	s.constellation.Resize(width, height)

	log.Printf("[Sky] 视口尺寸: %.0fx%.0f, 星星数量: %d", width, height, stars)
}

// Size 返回当前视口逻辑尺寸
func (s *Sky) Size() (float64, float64) {
	return s.width, s.height
}

// Tick 返回已执行的帧数
func (s *Sky) Tick() uint64 {
	return s.tick
}

// Update 推进一帧
// 尚未设置尺寸时不做任何事
func (s *Sky) Update() {
	if s.width <= 0 || s.height <= 0 {
		return
	}
	s.tick++

	s.meteors.Update(s.width, s.height)
	s.fireworks.Update(s.width, s.height)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 在画布上完整重绘当前帧
// canvas 为 nil 或尚未设置尺寸时不绘制
func (s *Sky) Draw(canvas render.Canvas) {
	if canvas == nil || s.width <= 0 || s.height <= 0 {
		return
	}
	s.renderer.Draw(canvas, s.tick, s.width, s.height)
}

// Launch 从指针位置 (x, y) 发射一枚烟花
func (s *Sky) Launch(x, y float64) {
	if s.height <= 0 {
		return
	}
	id := s.fireworks.Launch(x, y, s.height)
	s.launched++
	log.Printf("[Sky] 发射烟花: id=%d, x=%.1f, y=%.1f", id, x, y)
}

// Config 返回当前配置
func (s *Sky) Config() *config.SkyConfig {
	return s.config
}

// SetConfig 热替换配置
//
// 星星和星座按新配置以当前尺寸重建；流星和烟花保留，后续帧使用新参数。
// 配置无效时返回错误并保留旧配置。
func (s *Sky) SetConfig(cfg *config.SkyConfig) error {
	if cfg == nil {
		return ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid sky config: %w", err)
	}

	s.config = cfg
	s.starField.SetConfig(cfg)
	s.constellation.SetConfig(cfg)
	s.meteors.SetConfig(cfg)
	s.fireworks.SetConfig(cfg)
	s.renderer.SetConfig(cfg)

	if s.width > 0 && s.height > 0 {
		s.Resize(s.width, s.height)
	}
	log.Printf("[Sky] 配置已更新")
	return nil
}

// Stats 返回当前统计信息
func (s *Sky) Stats() Stats {
	return Stats{
		Tick:      s.tick,
		Width:     s.width,
		Height:    s.height,
		Stars:     ecs.CountWith[*components.StarComponent](s.entityManager),
		Meteors:   ecs.CountWith[*components.MeteorComponent](s.entityManager),
		Fireworks: ecs.CountWith[*components.FireworkComponent](s.entityManager),
		Particles: s.fireworks.ParticleCount(),
		Entities:  s.entityManager.EntityCount(),
		Launched:  s.launched,
	}
}

// String 返回单行统计，用于调试叠加层
func (st Stats) String() string {
	return fmt.Sprintf("tick %d  %.0fx%.0f  stars %d  meteors %d  fireworks %d  particles %d  entities %d  launched %d",
		st.Tick, st.Width, st.Height, st.Stars, st.Meteors, st.Fireworks, st.Particles, st.Entities, st.Launched)
}
