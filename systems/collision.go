package systems

import (
	"math"
	"sort"

	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves ball contacts: every player first, then every
// goalkeeper, each seeing the ball as left by the previous contact.
func UpdateCollisions(ecs *ecs.ECS) {
	ballEntry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	b := components.Ball.Get(ballEntry)

	syncObjects(ecs)
	ballObj := components.Object.Get(ballEntry)

	for _, e := range contactCandidates(ballObj, tags.ResolvPlayer) {
		ch := components.Character.Get(e)
		if nx, ny, overlap, hit := circleContact(b, ch); hit {
			resolvePlayerContact(b, ch, components.State.Get(e), nx, ny, overlap)
		}
	}

	for _, e := range contactCandidates(ballObj, tags.ResolvGoalkeeper) {
		ch := components.Character.Get(e)
		if _, _, _, hit := circleContact(b, ch); hit {
			resolveKeeperContact(ecs, b, ch)
		}
	}
}

// syncObjects copies circle centres into the broadphase.
func syncObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			return
		}
		switch {
		case e.HasComponent(components.Ball):
			b := components.Ball.Get(e)
			obj.MoveTo(b.Position.X, b.Position.Y, b.Radius)
		case e.HasComponent(components.Character):
			ch := components.Character.Get(e)
			obj.MoveTo(ch.Position.X, ch.Position.Y, ch.Radius)
		}
	})
}

// broadphasePad grows the ball's query box. resolv registers a box in the
// cells up to X+W-1, so boxes overlapping by under a pixel across a cell
// edge would otherwise never meet.
const broadphasePad = 1.0

// contactCandidates returns tagged entries sharing a space cell with the
// padded ball box, ordered by character ID so resolution order is stable.
func contactCandidates(ballObj *components.ObjectData, tag string) []*donburi.Entry {
	if ballObj.Object == nil || ballObj.Space == nil {
		return nil
	}
	x, y, w, h := ballObj.X, ballObj.Y, ballObj.W, ballObj.H
	ballObj.X, ballObj.Y = x-broadphasePad, y-broadphasePad
	ballObj.W, ballObj.H = w+2*broadphasePad, h+2*broadphasePad
	check := ballObj.Check(0, 0, tag)
	ballObj.X, ballObj.Y, ballObj.W, ballObj.H = x, y, w, h
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() || !e.HasComponent(components.Character) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return components.Character.Get(out[i]).ID < components.Character.Get(out[j]).ID
	})
	return out
}

// circleContact returns the unit normal from character to ball and the
// penetration depth. Coincident centres fall back to the character's facing.
func circleContact(b *components.BallData, ch *components.CharacterData) (nx, ny float64, overlap float64, hit bool) {
	dx := b.Position.X - ch.Position.X
	dy := b.Position.Y - ch.Position.Y
	dist := math.Hypot(dx, dy)
	reach := b.Radius + ch.Radius
	if dist >= reach {
		return 0, 0, 0, false
	}
	if dist == 0 {
		return ch.Facing, 0, reach, true
	}
	return dx / dist, dy / dist, reach - dist, true
}

func resolvePlayerContact(b *components.BallData, ch *components.CharacterData, state *components.StateData, nx, ny, overlap float64) {
	push := overlap * cfg.Player.CarryPush
	b.Velocity.X += nx * push
	b.Velocity.Y += ny * push
	if state.CurrentState == cfg.StateMoving {
		b.Velocity.X += ch.Facing * cfg.Player.DribbleBoost
	}
}

// resolveKeeperContact throws the ball back out of the keeper's goal with a
// random vertical deflection. A ball already leaving is left alone so one
// save is not applied on consecutive frames.
func resolveKeeperContact(ecs *ecs.ECS, b *components.BallData, ch *components.CharacterData) {
	if b.Velocity.X*ch.Facing > 0 {
		return
	}
	b.Velocity.X = ch.Facing * (math.Abs(b.Velocity.X) + cfg.Keeper.Kick)
	if rng := random(ecs); rng != nil {
		b.Velocity.Y += (rng.Float64()*2 - 1) * cfg.Keeper.Deflect
	}

	TriggerScreenShake(ecs, cfg.Keeper.ShakeStrength, cfg.Keeper.ShakeDuration)
	SpawnSpark(ecs, b.Position.X, b.Position.Y, cfg.Keeper.SparkColor, cfg.Keeper.SaveSparks)
	BallSaved.Publish(ecs.World, BallSavedEvent{Keeper: ch.ID, X: b.Position.X, Y: b.Position.Y})
}
