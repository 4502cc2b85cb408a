package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
)

func TestSpawnSparkStaysInBands(t *testing.T) {
	w := newTestWorld(t, 1)
	SpawnSpark(w, 10, 20, cfg.White, 200)

	fx := mustEffects(t, w)
	if len(fx.Particles) != 200 {
		t.Fatalf("particles: got=%d want=200", len(fx.Particles))
	}
	for i, p := range fx.Particles {
		if p.X != 10 || p.Y != 20 {
			t.Fatalf("particle %d spawned at (%f,%f)", i, p.X, p.Y)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < cfg.Effects.SparkSpeedMin-1e-9 || speed > cfg.Effects.SparkSpeedMin+cfg.Effects.SparkSpeedSpan+1e-9 {
			t.Errorf("particle %d speed out of band: %f", i, speed)
		}
		if p.Life < cfg.Effects.SparkLifeMin || p.Life > 1 {
			t.Errorf("particle %d life out of band: %f", i, p.Life)
		}
		if p.Size < cfg.Effects.SparkSizeMin || p.Size >= cfg.Effects.SparkSizeMin+cfg.Effects.SparkSizeSpan {
			t.Errorf("particle %d size out of band: %f", i, p.Size)
		}
		if p.Color != cfg.White {
			t.Errorf("particle %d colour: %v", i, p.Color)
		}
	}
}

func TestSpawnTrailSitsBehindSource(t *testing.T) {
	w := newTestWorld(t, 1)
	SpawnTrail(w, 100, 100, 10, -5, cfg.Magenta)

	fx := mustEffects(t, w)
	if len(fx.Trails) != 1 {
		t.Fatalf("trails: got=%d want=1", len(fx.Trails))
	}
	tr := fx.Trails[0]
	if !approx(tr.X, 98) || !approx(tr.Y, 101) {
		t.Fatalf("trail position: got=(%f,%f) want=(98,101)", tr.X, tr.Y)
	}
	if !approx(tr.VX, 3) || !approx(tr.VY, -1.5) {
		t.Fatalf("trail velocity: got=(%f,%f) want=(3,-1.5)", tr.VX, tr.VY)
	}
	if tr.Life != cfg.Effects.TrailLife {
		t.Fatalf("trail life: got=%f want=%f", tr.Life, cfg.Effects.TrailLife)
	}

	UpdateEffects(w)
	tr = fx.Trails[0]
	if !approx(tr.X, 101) || !approx(tr.Y, 99.5) {
		t.Fatalf("trail did not move by its velocity: (%f,%f)", tr.X, tr.Y)
	}
}

func TestSpawnExplosionByKind(t *testing.T) {
	cases := []struct {
		kind      cfg.EffectKind
		maxRadius float64
		burst     int
		color     color.RGBA
	}{
		{cfg.EffectNormal, cfg.Effects.ExplosionMaxRadius, cfg.Effects.BurstCount, cfg.Gold},
		{cfg.EffectFire, cfg.Effects.ExplosionMaxRadius, cfg.Effects.BurstCount, cfg.Orange},
		{cfg.EffectLightning, cfg.Effects.ExplosionMaxRadius, cfg.Effects.BurstCount, cfg.Cyan},
		{cfg.EffectSuper, cfg.Effects.SuperMaxRadius, cfg.Effects.SuperBurstCount, cfg.Magenta},
		{cfg.EffectKind(99), cfg.Effects.ExplosionMaxRadius, cfg.Effects.BurstCount, cfg.Gold},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			w := newTestWorld(t, 2)
			SpawnExplosion(w, 50, 60, tc.kind)

			fx := mustEffects(t, w)
			if len(fx.Explosions) != 1 {
				t.Fatalf("explosions: got=%d want=1", len(fx.Explosions))
			}
			e := fx.Explosions[0]
			if e.MaxRadius != tc.maxRadius || e.Radius != cfg.Effects.ExplosionStartRadius || e.Life != 1 {
				t.Fatalf("explosion: %+v", e)
			}
			if e.Color != tc.color {
				t.Fatalf("explosion colour: got=%v want=%v", e.Color, tc.color)
			}
			if len(fx.Particles) != tc.burst {
				t.Fatalf("burst: got=%d want=%d", len(fx.Particles), tc.burst)
			}
			for _, p := range fx.Particles {
				if p.Color != e.Color {
					t.Fatalf("burst particle colour %v does not match explosion %v", p.Color, e.Color)
				}
				if p.Life > 1 {
					t.Fatalf("burst particle life above 1: %f", p.Life)
				}
			}
		})
	}
}

func TestExplosionRadiusEasesTowardMax(t *testing.T) {
	w := newTestWorld(t, 3)
	SpawnExplosion(w, 0, 0, cfg.EffectSuper)
	fx := mustEffects(t, w)

	UpdateEffects(w)
	if got, want := fx.Explosions[0].Radius, 5+(80-5)*0.2; math.Abs(got-want) > 1e-9 {
		t.Fatalf("radius after one frame: got=%f want=%f", got, want)
	}
	prev := fx.Explosions[0].Radius
	for len(fx.Explosions) > 0 {
		r := fx.Explosions[0].Radius
		if r < prev || r > fx.Explosions[0].MaxRadius {
			t.Fatalf("radius %f not easing monotonically toward %f", r, fx.Explosions[0].MaxRadius)
		}
		prev = r
		UpdateEffects(w)
	}
}

// Life must fall by exactly the decay each frame, and the entity must be
// gone on the first frame its life reaches zero.
func TestUpdateEffectsDecaysAndRemoves(t *testing.T) {
	w := newTestWorld(t, 4)
	fx := mustEffects(t, w)
	fx.Particles = append(fx.Particles, components.ParticleData{Life: 0.3})
	fx.Trails = append(fx.Trails, components.ParticleData{Life: 0.3})
	fx.Explosions = append(fx.Explosions, components.ExplosionData{Life: 0.3, MaxRadius: 10})

	wantParticle, wantTrail, wantExplosion := 0.3, 0.3, 0.3
	for frame := 0; frame < 40; frame++ {
		UpdateEffects(w)
		wantParticle -= cfg.Effects.ParticleDecay
		wantTrail -= cfg.Effects.TrailDecay
		wantExplosion -= cfg.Effects.ExplosionDecay

		checkLife(t, frame, "particle", fx.Particles, wantParticle)
		checkLife(t, frame, "trail", fx.Trails, wantTrail)
		if wantExplosion <= 0 {
			if len(fx.Explosions) != 0 {
				t.Fatalf("frame %d: expired explosion still present", frame)
			}
		} else if len(fx.Explosions) != 1 || fx.Explosions[0].Life != wantExplosion {
			t.Fatalf("frame %d: explosion life got=%v want=%f", frame, fx.Explosions, wantExplosion)
		}
	}
	if len(fx.Particles)+len(fx.Trails)+len(fx.Explosions) != 0 {
		t.Fatal("registry should be empty after 40 frames")
	}
}

func checkLife(t *testing.T, frame int, name string, ps []components.ParticleData, want float64) {
	t.Helper()
	if want <= 0 {
		if len(ps) != 0 {
			t.Fatalf("frame %d: expired %s still present (life %f)", frame, name, ps[0].Life)
		}
		return
	}
	if len(ps) != 1 || ps[0].Life != want {
		t.Fatalf("frame %d: %s life got=%v want=%f", frame, name, ps, want)
	}
}

func TestUpdateEffectsKeepsSurvivorsInOrder(t *testing.T) {
	w := newTestWorld(t, 5)
	fx := mustEffects(t, w)
	fx.Particles = []components.ParticleData{
		{X: 1, Life: 0.5},
		{X: 2, Life: 0.01},
		{X: 3, Life: 0.5},
		{X: 4, Life: 0.02},
		{X: 5, Life: 0.5},
	}
	UpdateEffects(w)

	if len(fx.Particles) != 3 {
		t.Fatalf("survivors: got=%d want=3", len(fx.Particles))
	}
	for i, want := range []float64{1, 3, 5} {
		if fx.Particles[i].X != want {
			t.Fatalf("survivor %d: got X=%f want %f", i, fx.Particles[i].X, want)
		}
	}
}

func TestEffectsSnapshotIsACopy(t *testing.T) {
	w := newTestWorld(t, 6)
	SpawnSpark(w, 0, 0, cfg.White, 3)

	snap := Effects(w)
	snap.Particles[0].Life = -5
	snap.Particles = snap.Particles[:0]

	fx := mustEffects(t, w)
	if len(fx.Particles) != 3 || fx.Particles[0].Life <= 0 {
		t.Fatal("mutating the snapshot changed the registry")
	}
}
