package systems

import (
	"math/rand/v2"

	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
)

// newQuietConfig 返回关闭自动生成的配置，便于逐帧验证
func newQuietConfig() *config.SkyConfig {
	cfg := config.DefaultSkyConfig()
	cfg.Meteors.SpawnChance = 0
	cfg.Fireworks.SpawnChance = 0
	return cfg
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// step 执行一帧更新并在帧末清理实体，与 sky.Sky 的帧序一致
func step(em *ecs.EntityManager, update func()) {
	update()
	em.RemoveMarkedEntities()
}
