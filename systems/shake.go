package systems

import (
	cfg "github.com/automoto/superkick/config"
	"github.com/yohamta/donburi/ecs"
)

// TriggerScreenShake starts a shake, replacing any shake in progress.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	shake := screenShake(ecs)
	if shake == nil {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
}

// UpdateScreenShake counts the shake down and decays its intensity.
func UpdateScreenShake(ecs *ecs.ECS) {
	shake := screenShake(ecs)
	if shake == nil || !shake.Active() {
		return
	}
	shake.Duration--
	shake.Intensity *= cfg.ScreenShake.Decay
}

// ShakeOffset returns the render translation for this frame: (0, 0) when
// idle, otherwise independent uniform values in [-intensity/2, intensity/2].
func ShakeOffset(ecs *ecs.ECS) (float64, float64) {
	shake := screenShake(ecs)
	rng := random(ecs)
	if shake == nil || rng == nil || !shake.Active() {
		return 0, 0
	}
	x := (rng.Float64() - 0.5) * shake.Intensity
	y := (rng.Float64() - 0.5) * shake.Intensity
	return x, y
}
