package entities

import (
	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
)

// NewConstellationEntity 创建星座实体
// 屏幕坐标在首次 Resize 之前为空
func NewConstellationEntity(manager *ecs.EntityManager, cfg *config.ConstellationConfig) ecs.EntityID {
	id := manager.CreateEntity()

	normalized := make([]components.Vec2, len(cfg.Points))
	for i, p := range cfg.Points {
		normalized[i] = components.Vec2{X: p.X, Y: p.Y}
	}

	manager.AddComponent(id, &components.ConstellationComponent{
		Normalized: normalized,
		Screen:     make([]components.Vec2, len(cfg.Points)),
	})

	return id
}
