package systems

import (
	"math"
	"math/rand/v2"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
	"github.com/gonewx/starry/pkg/entities"
	"github.com/gonewx/starry/pkg/utils"
)

// FireworkSystem 驱动烟花状态机
//
// 状态转换：
//   - Ascending: 每帧向目标点逼近剩余距离的 Ease 比例，
//     帧初纵向距离小于 ExplodeThreshold 时在本帧爆炸
//   - Exploded: 粒子受重力下落并淡出，淡出的粒子被移除
//   - Done: 粒子全部消失，实体在本帧被标记删除
//
// 烟花数量没有硬上限，仅由每帧的生成概率控制。
type FireworkSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	config        *config.SkyConfig
}

// NewFireworkSystem 创建烟花系统
func NewFireworkSystem(em *ecs.EntityManager, rng *rand.Rand, cfg *config.SkyConfig) *FireworkSystem {
	return &FireworkSystem{
		entityManager: em,
		rng:           rng,
		config:        cfg,
	}
}

// SetConfig 替换配置，已存在的烟花沿用自身颜色和目标点
func (s *FireworkSystem) SetConfig(cfg *config.SkyConfig) {
	s.config = cfg
}

// Launch 从 (x, y) 发射一枚烟花
// 目标点横坐标与发射点相同，纵坐标为视口高度的随机比例
func (s *FireworkSystem) Launch(x, y, height float64) ecs.EntityID {
	cfg := &s.config.Fireworks
	targetY := height * cfg.TargetHeight.Rand(s.rng)
	clr := entities.RandomFireworkColor(s.rng, cfg)
	return entities.NewFireworkEntity(s.entityManager, x, y, x, targetY, clr)
}

// Update 执行一帧烟花逻辑：先推进已有烟花，再按概率从视口底部自动发射
func (s *FireworkSystem) Update(width, height float64) {
	ids := ecs.GetEntitiesWith2[*components.FireworkComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		fw, _ := ecs.GetComponent[*components.FireworkComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		switch fw.State {
		case components.FireworkAscending:
			s.ascend(fw, pos)
		case components.FireworkExploded:
			s.fall(fw)
		}

		if fw.State == components.FireworkDone {
			s.entityManager.DestroyEntity(id)
		}
	}

	if s.rng.Float64() < s.config.Fireworks.SpawnChance {
		s.Launch(s.rng.Float64()*width, height, height)
	}
}

func (s *FireworkSystem) ascend(fw *components.FireworkComponent, pos *components.PositionComponent) {
	cfg := &s.config.Fireworks

	// 距离在移动前测量
	dx := fw.TargetX - pos.X
	dy := fw.TargetY - pos.Y
	pos.X += dx * cfg.Ease
	pos.Y += dy * cfg.Ease

	if math.Abs(dy) < cfg.ExplodeThreshold {
		s.explode(fw, pos)
	}
}

// explode 进入 Exploded 状态，在当前位置生成全部粒子
func (s *FireworkSystem) explode(fw *components.FireworkComponent, pos *components.PositionComponent) {
	cfg := &s.config.Fireworks

	fw.Particles = make([]components.Particle, cfg.ParticleCount)
	for i := range fw.Particles {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := cfg.ParticleSpeed.Rand(s.rng)
		fw.Particles[i] = components.Particle{
			X:     pos.X,
			Y:     pos.Y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Alpha: 1,
			Color: fw.Color,
		}
	}
	fw.State = components.FireworkExploded
}

func (s *FireworkSystem) fall(fw *components.FireworkComponent) {
	cfg := &s.config.Fireworks

	alive := fw.Particles[:0]
	for _, p := range fw.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += cfg.Gravity
		p.Alpha -= cfg.Fade
		if !utils.Faded(p.Alpha) {
			alive = append(alive, p)
		}
	}
	fw.Particles = alive

	if len(fw.Particles) == 0 {
		fw.State = components.FireworkDone
	}
}

// ParticleCount 统计全部烟花的存活粒子数
func (s *FireworkSystem) ParticleCount() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.FireworkComponent](s.entityManager) {
		fw, _ := ecs.GetComponent[*components.FireworkComponent](s.entityManager, id)
		n += len(fw.Particles)
	}
	return n
}
