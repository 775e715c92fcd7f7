package systems

import (
	"testing"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/ecs"
)

func TestStarFieldRegenerate_CountByWidth(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
		want   int
	}{
		{"desktop", 1024, 768, 250},
		{"mobile", 500, 900, 100},
		{"breakpoint is desktop", 768, 1024, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewStarFieldSystem(em, newTestRand(), newQuietConfig())

			if got := system.Regenerate(tt.width, tt.height); got != tt.want {
				t.Errorf("Regenerate returned %d, want %d", got, tt.want)
			}
			if got := ecs.CountWith[*components.StarComponent](em); got != tt.want {
				t.Errorf("star entities = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStarFieldRegenerate_ReplacesPreviousSet(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewStarFieldSystem(em, newTestRand(), newQuietConfig())

	system.Regenerate(1280, 800)
	system.Regenerate(1280, 800)
	if got := ecs.CountWith[*components.StarComponent](em); got != 250 {
		t.Fatalf("after two regenerations star count = %d, want 250", got)
	}

	system.Regenerate(400, 800)
	if got := ecs.CountWith[*components.StarComponent](em); got != 100 {
		t.Fatalf("after shrinking star count = %d, want 100", got)
	}
}

func TestStarFieldRegenerate_AttributesInRange(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := newQuietConfig()
	system := NewStarFieldSystem(em, newTestRand(), cfg)
	system.Regenerate(1280, 800)

	for _, id := range ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](em) {
		star, _ := ecs.GetComponent[*components.StarComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		if pos.X < 0 || pos.X >= 1280 || pos.Y < 0 || pos.Y >= 800 {
			t.Errorf("star %d outside viewport: (%.2f, %.2f)", id, pos.X, pos.Y)
		}
		if star.Radius < cfg.Stars.Radius.Min || star.Radius >= cfg.Stars.Radius.Max {
			t.Errorf("star %d radius %.3f out of range", id, star.Radius)
		}
		if star.Speed < cfg.Stars.TwinkleSpeed.Min || star.Speed >= cfg.Stars.TwinkleSpeed.Max {
			t.Errorf("star %d speed %.4f out of range", id, star.Speed)
		}
	}
}

func TestStarAlpha_StaysWithinUnitRange(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewStarFieldSystem(em, newTestRand(), newQuietConfig())
	system.Regenerate(1280, 800)

	ids := ecs.GetEntitiesWith1[*components.StarComponent](em)
	for tick := uint64(0); tick < 20000; tick += 7 {
		for _, id := range ids {
			star, _ := ecs.GetComponent[*components.StarComponent](em, id)
			if a := StarAlpha(star, tick); a < 0 || a > 1 {
				t.Fatalf("tick %d star %d alpha %.6f outside [0, 1]", tick, id, a)
			}
		}
	}
}

func TestStarAlpha_FollowsPhase(t *testing.T) {
	star := &components.StarComponent{Radius: 1, Phase: 0, Speed: 0.01}
	if got := StarAlpha(star, 0); got != 0.5 {
		t.Errorf("alpha at tick 0 with zero phase = %.3f, want 0.5", got)
	}
}
