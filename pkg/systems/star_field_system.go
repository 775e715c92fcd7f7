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

// StarFieldSystem 管理背景星星
// 星星创建后不再变化，视口尺寸变化时整批重新生成
type StarFieldSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	config        *config.SkyConfig
}

// NewStarFieldSystem 创建星空系统
func NewStarFieldSystem(em *ecs.EntityManager, rng *rand.Rand, cfg *config.SkyConfig) *StarFieldSystem {
	return &StarFieldSystem{
		entityManager: em,
		rng:           rng,
		config:        cfg,
	}
}

// SetConfig 替换配置，下一次 Regenerate 生效
func (s *StarFieldSystem) SetConfig(cfg *config.SkyConfig) {
	s.config = cfg
}

// Regenerate 按视口尺寸重新生成全部星星
//
// 旧星星立即移除（不等到帧末清理），返回新生成的数量。
// 数量由视口宽度决定：小于分界宽度时使用移动端数量。
func (s *StarFieldSystem) Regenerate(width, height float64) int {
	for _, id := range ecs.GetEntitiesWith1[*components.StarComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	count := s.config.StarCount(width)
	for i := 0; i < count; i++ {
		entities.NewStarEntity(s.entityManager, s.rng, &s.config.Stars, width, height)
	}
	return count
}

// StarAlpha 计算星星在指定帧的透明度，结果位于 [0, 1]
func StarAlpha(star *components.StarComponent, tick uint64) float64 {
	return utils.Clamp01(0.5 + 0.5*math.Sin(float64(tick)*star.Speed+star.Phase))
}
