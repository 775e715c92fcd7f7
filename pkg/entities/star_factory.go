package entities

import (
	"math"
	"math/rand/v2"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
)

// NewStarEntity 创建一颗随机背景星星
// 参数:
//   - manager: EntityManager 实例
//   - rng: 随机源
//   - cfg: 星星配置（半径、闪烁速度范围）
//   - width, height: 视口尺寸，星星在其中均匀分布
//
// 返回: 创建的实体ID
func NewStarEntity(manager *ecs.EntityManager, rng *rand.Rand, cfg *config.StarConfig, width, height float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: rng.Float64() * width,
		Y: rng.Float64() * height,
	})

	manager.AddComponent(id, &components.StarComponent{
		Radius: cfg.Radius.Rand(rng),
		Phase:  rng.Float64() * 2 * math.Pi,
		Speed:  cfg.TwinkleSpeed.Rand(rng),
	})

	return id
}
