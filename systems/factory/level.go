package factory

import (
	"math/rand"

	"github.com/automoto/superkick/archetypes"
	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DefaultPitch is a width x height field with a single goal on the right edge,
// scored in by the home side.
func DefaultPitch(width, height float64) components.PitchData {
	mid := height / 2
	return components.PitchData{
		Width:      width,
		Height:     height,
		WallMargin: cfg.Pitch.WallMargin,
		Goals: []components.Goal{
			{
				Side:      cfg.SideHome,
				LineX:     width - cfg.Pitch.GoalLineInset,
				Direction: cfg.DirectionRight,
				MouthTop:  mid - cfg.Pitch.GoalMouthHalf,
				MouthBot:  mid + cfg.Pitch.GoalMouthHalf,
				Depth:     cfg.Pitch.GoalDepth,
			},
		},
	}
}

// CreateMatch spawns the singleton entity holding pitch, score, effects,
// shake, cooldown, celebration and the random source.
func CreateMatch(ecs *ecs.ECS, pitch components.PitchData, rng *rand.Rand) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)

	components.Pitch.SetValue(match, pitch)
	components.Score.SetValue(match, components.ScoreData{})
	components.Effects.SetValue(match, components.EffectsData{})
	components.ScreenShake.SetValue(match, components.ScreenShakeData{})
	components.SkillCooldown.SetValue(match, components.SkillCooldownData{})
	components.Random.SetValue(match, components.RandomData{Rand: rng})

	tw := gween.New(cfg.Celebration.FromScale, cfg.Celebration.ToScale, cfg.Celebration.Frames, ease.OutBack)
	components.Celebration.SetValue(match, components.CelebrationData{
		Tween: tw,
		Scale: cfg.Celebration.FromScale,
	})

	return match
}
