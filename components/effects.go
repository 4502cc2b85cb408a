package components

import (
	"image/color"

	"github.com/automoto/superkick/config"
	"github.com/yohamta/donburi"
)

// ParticleData is a spark, burst fragment or trail dot.
type ParticleData struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 = fresh, removed at <= 0
	Color  color.RGBA
	Size   float64
}

// ExplosionData is an expanding disc that eases toward MaxRadius while fading.
type ExplosionData struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Life      float64
	Color     color.RGBA
	Kind      config.EffectKind
}

// EffectsData is the singleton registry of transient visuals.
type EffectsData struct {
	Particles  []ParticleData
	Trails     []ParticleData
	Explosions []ExplosionData
}

var Effects = donburi.NewComponentType[EffectsData]()

// ScreenShakeData tracks the active screen shake. Only the latest trigger counts.
type ScreenShakeData struct {
	Intensity float64 // max offset span in pixels
	Duration  int     // frames remaining
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// Active reports whether an offset should be applied this frame.
func (s *ScreenShakeData) Active() bool {
	return s.Duration > 0
}
