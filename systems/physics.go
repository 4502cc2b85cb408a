package systems

import (
	"math"

	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBallPhysics integrates the ball, applies friction, bounces it off
// the walls, scores goals and emits the speed trail.
func UpdateBallPhysics(ecs *ecs.ECS) {
	b := ball(ecs)
	p := pitch(ecs)
	if b == nil || p == nil {
		return
	}

	b.Position.X += b.Velocity.X
	b.Position.Y += b.Velocity.Y
	b.Velocity.X *= cfg.Ball.Friction
	b.Velocity.Y *= cfg.Ball.Friction

	updateSuperTimer(b)
	bounceVertical(ecs, b, p)

	if scored := checkGoalLines(ecs, b, p); scored {
		return
	}

	if math.Abs(b.Velocity.X) > cfg.Ball.TrailSpeedThreshold {
		c := cfg.Ball.TrailColor
		if b.Super {
			c = cfg.Ball.SuperColor
		}
		SpawnTrail(ecs, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y, c)
	}
}

func updateSuperTimer(b *components.BallData) {
	if !b.Super {
		return
	}
	b.SuperTimer--
	if b.SuperTimer <= 0 {
		b.Super = false
		b.SuperTimer = 0
	}
}

// bounceVertical reflects the ball off the top and bottom touchlines.
// Only a ball still heading out is reflected, so it cannot chatter on the line.
func bounceVertical(ecs *ecs.ECS, b *components.BallData, p *components.PitchData) {
	top := b.Radius
	bottom := p.Height - b.Radius

	switch {
	case b.Position.Y < top && b.Velocity.Y < 0:
		b.Position.Y = top
	case b.Position.Y > bottom && b.Velocity.Y > 0:
		b.Position.Y = bottom
	default:
		return
	}
	b.Velocity.Y *= -cfg.Ball.Restitution
	SpawnSpark(ecs, b.Position.X, b.Position.Y, cfg.White, cfg.Ball.BounceSparkCount)
}

// checkGoalLines handles both side edges. An edge with a goal scores when the
// ball is past the line inside the mouth and bounces otherwise; an edge
// without one is a plain wall at the pitch margin.
func checkGoalLines(ecs *ecs.ECS, b *components.BallData, p *components.PitchData) bool {
	for _, dir := range [...]float64{cfg.DirectionLeft, cfg.DirectionRight} {
		goal, ok := p.GoalOn(dir)
		if !ok {
			goal = components.Goal{
				LineX:     wallLine(p, dir),
				Direction: dir,
			}
		}
		if !goal.Crossed(b.Position.X) {
			continue
		}
		if ok && goal.InMouth(b.Position.Y) {
			scoreGoal(ecs, b, goal)
			return true
		}
		// Heading back into play already; it must not drift into the mouth
		// from behind the line.
		if b.Velocity.X*dir <= 0 {
			b.Position.X = goal.LineX
			continue
		}
		b.Position.X = goal.LineX
		b.Velocity.X *= -cfg.Ball.Restitution
	}
	return false
}

func wallLine(p *components.PitchData, dir float64) float64 {
	if dir < 0 {
		return p.WallMargin
	}
	return p.Width - p.WallMargin
}
