package entities

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/ecs"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestNewStarEntityWithinBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	rng := newTestRand()
	cfg := config.DefaultSkyConfig()

	for i := 0; i < 500; i++ {
		id := NewStarEntity(em, rng, &cfg.Stars, 1024, 768)

		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			t.Fatal("star must have PositionComponent")
		}
		star, ok := ecs.GetComponent[*components.StarComponent](em, id)
		if !ok {
			t.Fatal("star must have StarComponent")
		}

		if pos.X < 0 || pos.X >= 1024 || pos.Y < 0 || pos.Y >= 768 {
			t.Fatalf("star outside viewport: (%v, %v)", pos.X, pos.Y)
		}
		if star.Radius < 0.5 || star.Radius >= 2.0 {
			t.Fatalf("radius out of [0.5, 2.0): %v", star.Radius)
		}
		if star.Phase < 0 || star.Phase >= 2*math.Pi {
			t.Fatalf("phase out of [0, 2π): %v", star.Phase)
		}
		if star.Speed < 0.005 || star.Speed >= 0.025 {
			t.Fatalf("speed out of [0.005, 0.025): %v", star.Speed)
		}
	}
}

func TestNewMeteorEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	rng := newTestRand()
	cfg := config.DefaultSkyConfig()

	id := NewMeteorEntity(em, rng, &cfg.Meteors, 800)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	meteor, _ := ecs.GetComponent[*components.MeteorComponent](em, id)

	if pos.Y != -50 {
		t.Errorf("meteor spawn Y = %v, want -50", pos.Y)
	}
	if vel.VX >= 0 || vel.VY <= 0 {
		t.Errorf("meteor must travel down-left, got v=(%v, %v)", vel.VX, vel.VY)
	}
	if meteor.Alpha != 1 {
		t.Errorf("meteor alpha = %v, want 1", meteor.Alpha)
	}
}

func TestNewFireworkEntityStartsAscending(t *testing.T) {
	em := ecs.NewEntityManager()
	clr := RandomFireworkColor(newTestRand(), &config.DefaultSkyConfig().Fireworks)

	id := NewFireworkEntity(em, 500, 800, 500, 300, clr)

	fw, ok := ecs.GetComponent[*components.FireworkComponent](em, id)
	if !ok {
		t.Fatal("firework must have FireworkComponent")
	}
	if fw.State != components.FireworkAscending {
		t.Errorf("new firework state = %v, want Ascending", fw.State)
	}
	if len(fw.Particles) != 0 {
		t.Errorf("new firework has %d particles, want 0", len(fw.Particles))
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 500 || pos.Y != 800 {
		t.Errorf("firework position = (%v, %v), want (500, 800)", pos.X, pos.Y)
	}
}

func TestRandomFireworkColorIsWarm(t *testing.T) {
	rng := newTestRand()
	cfg := config.DefaultSkyConfig().Fireworks

	for i := 0; i < 200; i++ {
		c := RandomFireworkColor(rng, &cfg)
		if c.A != 255 {
			t.Fatalf("firework color must be opaque, got A=%d", c.A)
		}
		h, _, _ := colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}.Hsl()
		// 允许 8 位量化带来的色相误差
		if h < 18 || h > 72 {
			t.Fatalf("hue %v outside warm range", h)
		}
	}
}

func TestNewConstellationEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultSkyConfig()

	id := NewConstellationEntity(em, &cfg.Constellation)

	c, ok := ecs.GetComponent[*components.ConstellationComponent](em, id)
	if !ok {
		t.Fatal("constellation must have ConstellationComponent")
	}
	if len(c.Normalized) != 7 || len(c.Screen) != 7 {
		t.Errorf("constellation sizes = %d/%d, want 7/7", len(c.Normalized), len(c.Screen))
	}
	if c.Normalized[0] != (components.Vec2{X: 0.65, Y: 0.15}) {
		t.Errorf("first point = %+v, want {0.65 0.15}", c.Normalized[0])
	}
}
