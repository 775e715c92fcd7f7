package systems

import (
	"testing"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/ecs"
)

// addMeteor 在指定位置放置一颗满透明度的流星
func addMeteor(em *ecs.EntityManager, x, y, vx, vy float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.MeteorComponent{Length: 100, Alpha: 1, Thickness: 1})
	return id
}

func TestMeteorSystem_FadesOutInFiftyTicks(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewMeteorSystem(em, newTestRand(), newQuietConfig())
	id := addMeteor(em, 500, -50, -6, 6)

	for tick := 1; tick <= 49; tick++ {
		step(em, func() { system.Update(1000, 1000) })
		if !em.Exists(id) {
			t.Fatalf("meteor removed too early at tick %d", tick)
		}
	}

	step(em, func() { system.Update(1000, 1000) })
	if em.Exists(id) {
		t.Fatal("meteor should be removed after 50 ticks")
	}
}

func TestMeteorSystem_RemovedWhenLeavingViewport(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		vx, vy float64
	}{
		{"left edge", -199, 100, -3, 3},
		{"bottom edge", 500, 1199, -3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewMeteorSystem(em, newTestRand(), newQuietConfig())
			id := addMeteor(em, tt.x, tt.y, tt.vx, tt.vy)

			step(em, func() { system.Update(1000, 1000) })
			if em.Exists(id) {
				t.Error("meteor outside the margin should be removed")
			}
		})
	}
}

func TestMeteorSystem_RespectsActiveCap(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := newQuietConfig()
	cfg.Meteors.SpawnChance = 1
	system := NewMeteorSystem(em, newTestRand(), cfg)

	for tick := 0; tick < 500; tick++ {
		step(em, func() { system.Update(1280, 800) })
		if n := ecs.CountWith[*components.MeteorComponent](em); n > cfg.Meteors.MaxActive {
			t.Fatalf("tick %d: %d meteors active, cap is %d", tick, n, cfg.Meteors.MaxActive)
		}
	}
}

func TestMeteorSystem_SpawnAttributes(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := newQuietConfig()
	cfg.Meteors.SpawnChance = 1
	system := NewMeteorSystem(em, newTestRand(), cfg)

	system.Update(1280, 800)
	ids := ecs.GetEntitiesWith1[*components.MeteorComponent](em)
	if len(ids) != 1 {
		t.Fatalf("expected 1 meteor after one tick, got %d", len(ids))
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, ids[0])
	meteor, _ := ecs.GetComponent[*components.MeteorComponent](em, ids[0])
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[0])

	if vel.VX < -6 || vel.VX >= -3 || vel.VY < 3 || vel.VY >= 6 {
		t.Errorf("velocity out of range: (%.2f, %.2f)", vel.VX, vel.VY)
	}
	if meteor.Length < 50 || meteor.Length >= 150 {
		t.Errorf("length %.2f out of range", meteor.Length)
	}
	// 生成后在同一帧内移动过一次
	if got, want := pos.Y, cfg.Meteors.SpawnY+vel.VY; got != want {
		t.Errorf("y after first tick = %.3f, want %.3f", got, want)
	}
}

func TestMeteorSystem_NoSpawnWhenChanceZero(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewMeteorSystem(em, newTestRand(), newQuietConfig())

	for tick := 0; tick < 1000; tick++ {
		step(em, func() { system.Update(1280, 800) })
	}
	if n := ecs.CountWith[*components.MeteorComponent](em); n != 0 {
		t.Errorf("expected no meteors, got %d", n)
	}
}
