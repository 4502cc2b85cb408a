package systems

import (
	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/yohamta/donburi/ecs"
)

// Singleton lookups. Each returns nil when the world has no match entity,
// which keeps systems safe to run on partially built worlds.

func effects(ecs *ecs.ECS) *components.EffectsData {
	e, ok := components.Effects.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Effects.Get(e)
}

func screenShake(ecs *ecs.ECS) *components.ScreenShakeData {
	e, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return nil
	}
	return components.ScreenShake.Get(e)
}

func random(ecs *ecs.ECS) *components.RandomData {
	e, ok := components.Random.First(ecs.World)
	if !ok {
		return nil
	}
	r := components.Random.Get(e)
	if r.Rand == nil {
		return nil
	}
	return r
}

func cooldown(ecs *ecs.ECS) *components.SkillCooldownData {
	e, ok := components.SkillCooldown.First(ecs.World)
	if !ok {
		return nil
	}
	return components.SkillCooldown.Get(e)
}

func pitch(ecs *ecs.ECS) *components.PitchData {
	e, ok := components.Pitch.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Pitch.Get(e)
}

func score(ecs *ecs.ECS) *components.ScoreData {
	e, ok := components.Score.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Score.Get(e)
}

func ball(ecs *ecs.ECS) *components.BallData {
	e, ok := components.Ball.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Ball.Get(e)
}

// scoreGoal credits the goal, celebrates, and puts the ball back on the spot.
// It is the only place the ball is reset during play.
func scoreGoal(ecs *ecs.ECS, b *components.BallData, goal components.Goal) {
	if s := score(ecs); s != nil {
		s.AddGoal(goal.Side)
	}
	SpawnExplosion(ecs, b.Position.X, b.Position.Y, cfg.EffectSuper)
	TriggerScreenShake(ecs, cfg.ScreenShake.GoalIntensity, cfg.ScreenShake.GoalDuration)
	startCelebration(ecs, goal.Side)

	GoalScored.Publish(ecs.World, GoalScoredEvent{
		Side: goal.Side,
		X:    b.Position.X,
		Y:    b.Position.Y,
	})

	resetBall(ecs, b)
}

func resetBall(ecs *ecs.ECS, b *components.BallData) {
	x, y := 0.0, 0.0
	if p := pitch(ecs); p != nil {
		x, y = p.Center()
	}
	b.Reset(x, y)
}
