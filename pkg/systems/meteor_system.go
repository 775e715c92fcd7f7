package systems

import (
	"math/rand/v2"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
	"github.com/gonewx/starry/pkg/entities"
	"github.com/gonewx/starry/pkg/utils"
)

// MeteorSystem 生成、移动并回收流星
type MeteorSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	config        *config.SkyConfig
}

// NewMeteorSystem 创建流星系统
func NewMeteorSystem(em *ecs.EntityManager, rng *rand.Rand, cfg *config.SkyConfig) *MeteorSystem {
	return &MeteorSystem{
		entityManager: em,
		rng:           rng,
		config:        cfg,
	}
}

// SetConfig 替换配置
func (s *MeteorSystem) SetConfig(cfg *config.SkyConfig) {
	s.config = cfg
}

// Update 执行一帧流星逻辑
//
// 先按概率生成（活跃数量未达上限时），再移动全部流星并衰减透明度。
// 透明度耗尽或飞出视口（下方或左方超出余量）的流星被标记删除，
// 在帧末 RemoveMarkedEntities 时移除。
func (s *MeteorSystem) Update(width, height float64) {
	cfg := &s.config.Meteors

	if ecs.CountWith[*components.MeteorComponent](s.entityManager) < cfg.MaxActive &&
		s.rng.Float64() < cfg.SpawnChance {
		entities.NewMeteorEntity(s.entityManager, s.rng, cfg, width)
	}

	ids := ecs.GetEntitiesWith2[*components.MeteorComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		meteor, _ := ecs.GetComponent[*components.MeteorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.X += vel.VX
		pos.Y += vel.VY
		meteor.Alpha -= cfg.Fade

		if utils.Faded(meteor.Alpha) || pos.Y > height+cfg.Margin || pos.X < -cfg.Margin {
			s.entityManager.DestroyEntity(id)
		}
	}
}
