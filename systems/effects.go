package systems

import (
	"image/color"
	"math"

	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/yohamta/donburi/ecs"
)

// EffectsSnapshot is a read-only copy of the effect collections for rendering.
type EffectsSnapshot struct {
	Particles  []components.ParticleData
	Trails     []components.ParticleData
	Explosions []components.ExplosionData
}

// explosionStyle resolves an explosion kind to its colour and final radius.
func explosionStyle(kind cfg.EffectKind) (color.RGBA, float64) {
	switch kind {
	case cfg.EffectFire:
		return cfg.Orange, cfg.Effects.ExplosionMaxRadius
	case cfg.EffectLightning:
		return cfg.Cyan, cfg.Effects.ExplosionMaxRadius
	case cfg.EffectSuper:
		return cfg.Magenta, cfg.Effects.SuperMaxRadius
	default:
		return cfg.Gold, cfg.Effects.ExplosionMaxRadius
	}
}

// UpdateEffects advances particles, trails and explosions by one frame and
// drops anything whose life reached zero.
func UpdateEffects(ecs *ecs.ECS) {
	fx := effects(ecs)
	if fx == nil {
		return
	}
	fx.Particles = advanceParticles(fx.Particles, cfg.Effects.ParticleDecay)
	fx.Trails = advanceParticles(fx.Trails, cfg.Effects.TrailDecay)
	fx.Explosions = advanceExplosions(fx.Explosions)
}

// advanceParticles filters in place, so the backing array is reused frame to frame.
func advanceParticles(ps []components.ParticleData, decay float64) []components.ParticleData {
	kept := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= decay
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	clear(ps[len(kept):])
	return kept
}

func advanceExplosions(es []components.ExplosionData) []components.ExplosionData {
	kept := es[:0]
	for _, e := range es {
		e.Radius += (e.MaxRadius - e.Radius) * cfg.Effects.ExplosionEase
		e.Life -= cfg.Effects.ExplosionDecay
		if e.Life <= 0 {
			continue
		}
		kept = append(kept, e)
	}
	clear(es[len(kept):])
	return kept
}

// SpawnSpark emits count particles flying out from (x, y) in random directions.
func SpawnSpark(ecs *ecs.ECS, x, y float64, c color.RGBA, count int) {
	fx := effects(ecs)
	rng := random(ecs)
	if fx == nil || rng == nil {
		return
	}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := rng.Between(cfg.Effects.SparkSpeedMin, cfg.Effects.SparkSpeedSpan)
		fx.Particles = append(fx.Particles, components.ParticleData{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  clampLife(rng.Between(cfg.Effects.SparkLifeMin, cfg.Effects.SparkLifeSpan)),
			Color: c,
			Size:  rng.Between(cfg.Effects.SparkSizeMin, cfg.Effects.SparkSizeSpan),
		})
	}
}

// SpawnTrail drops one trail dot slightly behind a moving source.
func SpawnTrail(ecs *ecs.ECS, x, y, vx, vy float64, c color.RGBA) {
	fx := effects(ecs)
	rng := random(ecs)
	if fx == nil || rng == nil {
		return
	}
	fx.Trails = append(fx.Trails, components.ParticleData{
		X:     x - vx*cfg.Effects.TrailOffset,
		Y:     y - vy*cfg.Effects.TrailOffset,
		VX:    vx * cfg.Effects.TrailDamping,
		VY:    vy * cfg.Effects.TrailDamping,
		Life:  cfg.Effects.TrailLife,
		Color: c,
		Size:  rng.Between(cfg.Effects.TrailSizeMin, cfg.Effects.TrailSizeSpan),
	})
}

// SpawnExplosion adds an expanding disc and a burst of particles in its colour.
// Super explosions are larger and burst twice as many particles.
func SpawnExplosion(ecs *ecs.ECS, x, y float64, kind cfg.EffectKind) {
	fx := effects(ecs)
	rng := random(ecs)
	if fx == nil || rng == nil {
		return
	}
	c, maxRadius := explosionStyle(kind)
	fx.Explosions = append(fx.Explosions, components.ExplosionData{
		X:         x,
		Y:         y,
		Radius:    cfg.Effects.ExplosionStartRadius,
		MaxRadius: maxRadius,
		Life:      1,
		Color:     c,
		Kind:      kind,
	})

	count := cfg.Effects.BurstCount
	if kind == cfg.EffectSuper {
		count = cfg.Effects.SuperBurstCount
	}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := rng.Between(cfg.Effects.BurstSpeedMin, cfg.Effects.BurstSpeedSpan)
		fx.Particles = append(fx.Particles, components.ParticleData{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  clampLife(rng.Between(cfg.Effects.BurstLifeMin, cfg.Effects.BurstLifeSpan)),
			Color: c,
			Size:  rng.Between(cfg.Effects.BurstSizeMin, cfg.Effects.BurstSizeSpan),
		})
	}
}

// Effects copies the current collections.
func Effects(ecs *ecs.ECS) EffectsSnapshot {
	fx := effects(ecs)
	if fx == nil {
		return EffectsSnapshot{}
	}
	return EffectsSnapshot{
		Particles:  append([]components.ParticleData(nil), fx.Particles...),
		Trails:     append([]components.ParticleData(nil), fx.Trails...),
		Explosions: append([]components.ExplosionData(nil), fx.Explosions...),
	}
}

func clampLife(l float64) float64 {
	return math.Min(l, 1)
}
