package entities

import (
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
)

// NewFireworkEntity 创建一枚处于上升状态的烟花
// 参数:
//   - manager: EntityManager 实例
//   - startX, startY: 发射点
//   - targetX, targetY: 爆炸目标点
//   - clr: 烟花颜色，爆炸后的粒子继承此颜色
//
// 返回: 创建的实体ID
func NewFireworkEntity(manager *ecs.EntityManager, startX, startY, targetX, targetY float64, clr color.NRGBA) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: startX,
		Y: startY,
	})

	manager.AddComponent(id, &components.FireworkComponent{
		StartX:  startX,
		StartY:  startY,
		TargetX: targetX,
		TargetY: targetY,
		Color:   clr,
		State:   components.FireworkAscending,
	})

	return id
}

// RandomFireworkColor 在配置的色相范围内随机取一个颜色（默认为暖色）
func RandomFireworkColor(rng *rand.Rand, cfg *config.FireworkConfig) color.NRGBA {
	hue := cfg.Hue.Rand(rng)
	r, g, b := colorful.Hsl(hue, cfg.Saturation, cfg.Lightness).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
