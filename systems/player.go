package systems

import (
	"math"

	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters runs the player state machines, then the goalkeeper AI.
func UpdateCharacters(ecs *ecs.ECS) {
	rng := random(ecs)
	p := pitch(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayer(e, p, rng)
	})

	b := ball(ecs)
	if b == nil {
		return
	}
	tags.Goalkeeper.Each(ecs.World, func(e *donburi.Entry) {
		updateGoalkeeper(e, b)
	})
}

// RequestMove records a movement target for a player and puts it in moving.
func RequestMove(e *donburi.Entry, x, y float64) bool {
	if e == nil || !e.HasComponent(components.Intent) {
		return false
	}
	intent := components.Intent.Get(e)
	intent.HasTarget = true
	intent.Target.X = x
	intent.Target.Y = y
	intent.Received = true

	components.State.Get(e).Set(cfg.StateMoving)
	return true
}

// Shoot starts the shooting animation. It always restarts the clock.
func Shoot(e *donburi.Entry) bool {
	if e == nil || !e.HasComponent(components.Intent) {
		return false
	}
	state := components.State.Get(e)
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.StateShooting
	state.StateTimer = 0
	return true
}

func updatePlayer(e *donburi.Entry, p *components.PitchData, rng *components.RandomData) {
	ch := components.Character.Get(e)
	state := components.State.Get(e)
	intent := components.Intent.Get(e)

	state.StateTimer++

	if intent.HasTarget {
		stepToward(ch, intent, cfg.Player.MaxSpeed)
	}
	if p != nil {
		ch.Position.X = clamp(ch.Position.X, ch.Radius, p.Width-ch.Radius)
		ch.Position.Y = clamp(ch.Position.Y, ch.Radius, p.Height-ch.Radius)
	}

	switch state.CurrentState {
	case cfg.StateShooting:
		if state.StateTimer > cfg.Player.ShootFrames {
			state.Set(cfg.StateIdle)
		}
	case cfg.StateMoving:
		if intent.Received {
			break
		}
		intent.FramesWithoutIntent++
		if intent.FramesWithoutIntent >= cfg.Player.IdleGraceFrames {
			state.Set(cfg.StateIdle)
		} else if rng != nil && rng.Float64() < cfg.Player.IdleChance {
			state.Set(cfg.StateIdle)
		}
	}

	if intent.Received {
		intent.FramesWithoutIntent = 0
	}
	intent.Received = false
}

// stepToward moves the character up to maxStep toward its target and turns it
// to face the direction of horizontal travel.
func stepToward(ch *components.CharacterData, intent *components.IntentData, maxStep float64) {
	dx := intent.Target.X - ch.Position.X
	dy := intent.Target.Y - ch.Position.Y
	dist := math.Hypot(dx, dy)

	if dist <= maxStep || maxStep <= 0 {
		ch.Position = intent.Target
		intent.HasTarget = false
	} else {
		dx = dx / dist * maxStep
		dy = dy / dist * maxStep
		ch.Position.X += dx
		ch.Position.Y += dy
	}

	if dx > 0 {
		ch.Facing = cfg.DirectionRight
	} else if dx < 0 {
		ch.Facing = cfg.DirectionLeft
	}
}

// updateGoalkeeper slides the keeper along its lane toward the ball's height.
func updateGoalkeeper(e *donburi.Entry, b *components.BallData) {
	ch := components.Character.Get(e)
	state := components.State.Get(e)
	lane := components.Keeper.Get(e)

	state.StateTimer++

	target := clamp(b.Position.Y, lane.LaneMinY, lane.LaneMaxY)
	dy := clamp(target-ch.Position.Y, -lane.MaxSpeed, lane.MaxSpeed)
	ch.Position.X = lane.LaneX
	ch.Position.Y += dy

	if dy != 0 {
		state.Set(cfg.StateTracking)
	} else {
		state.Set(cfg.StateIdle)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
