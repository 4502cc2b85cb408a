package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/superkick/components"
	"github.com/automoto/superkick/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testWidth  = 800.0
	testHeight = 450.0
)

// newTestWorld builds a match with the default pitch and a ball on the spot.
// No characters are spawned.
func newTestWorld(t *testing.T, seed int64) *ecs.ECS {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(w, int(testWidth), int(testHeight), 32, 32)
	factory.CreateMatch(w, factory.DefaultPitch(testWidth, testHeight), rand.New(rand.NewSource(seed)))
	factory.CreateBall(w, testWidth/2, testHeight/2)
	return w
}

func mustBall(t *testing.T, w *ecs.ECS) *components.BallData {
	t.Helper()
	b := ball(w)
	if b == nil {
		t.Fatal("world has no ball")
	}
	return b
}

func mustEffects(t *testing.T, w *ecs.ECS) *components.EffectsData {
	t.Helper()
	fx := effects(w)
	if fx == nil {
		t.Fatal("world has no effects registry")
	}
	return fx
}

func placeBall(t *testing.T, w *ecs.ECS, x, y, vx, vy float64) *components.BallData {
	t.Helper()
	b := mustBall(t, w)
	b.Position.X, b.Position.Y = x, y
	b.Velocity.X, b.Velocity.Y = vx, vy
	return b
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}
