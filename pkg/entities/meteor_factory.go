package entities

import (
	"math/rand/v2"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
)

// NewMeteorEntity 创建一颗流星
// 流星从视口上方的随机横向位置出发，向左下方划过
//
// 参数:
//   - manager: EntityManager 实例
//   - rng: 随机源
//   - cfg: 流星配置
//   - width: 视口宽度
//
// 返回: 创建的实体ID
func NewMeteorEntity(manager *ecs.EntityManager, rng *rand.Rand, cfg *config.MeteorConfig, width float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: rng.Float64() * width,
		Y: cfg.SpawnY,
	})

	manager.AddComponent(id, &components.VelocityComponent{
		VX: cfg.VelocityX.Rand(rng),
		VY: cfg.VelocityY.Rand(rng),
	})

	manager.AddComponent(id, &components.MeteorComponent{
		Length:    cfg.Length.Rand(rng),
		Alpha:     1,
		Thickness: cfg.Thickness.Rand(rng),
	})

	return id
}
