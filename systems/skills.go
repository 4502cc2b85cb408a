package systems

import (
	"math"

	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActivateSkill fires skill id at the ball from (originX, originY).
//
// It fails without touching any state when the shared cooldown is running,
// when the ball is farther than the skill's range, or when origin and ball
// coincide. On success the ball velocity is set to the unit vector from origin
// to ball times the skill power and the shared cooldown restarts.
func ActivateSkill(ecs *ecs.ECS, id cfg.SkillID, originX, originY float64) bool {
	cd := cooldown(ecs)
	b := ball(ecs)
	if cd == nil || b == nil {
		return false
	}
	if !cd.Ready() {
		return false
	}

	skill := cfg.SkillByID(id)
	dx := b.Position.X - originX
	dy := b.Position.Y - originY
	dist := math.Hypot(dx, dy)
	if dist > skill.Range {
		return false
	}
	// No direction to shoot in.
	if dist == 0 || math.IsNaN(dist) {
		return false
	}

	b.Velocity.X = dx / dist * skill.Power
	b.Velocity.Y = dy / dist * skill.Power
	cd.Remaining = skill.Cooldown
	cd.Last = id
	cd.Fired++
	return true
}

// UseSkill is the input-facing shot: it activates the skill from the
// character's position and, on success, plays the shot animation and effects.
// Super shots also turn the ball super and shake the screen.
func UseSkill(ecs *ecs.ECS, id cfg.SkillID, character *donburi.Entry) bool {
	if character == nil || !character.HasComponent(components.Character) {
		return false
	}
	ch := components.Character.Get(character)
	if ch.Kind != cfg.KindPlayer {
		return false
	}
	if !ActivateSkill(ecs, id, ch.Position.X, ch.Position.Y) {
		return false
	}

	Shoot(character)

	b := ball(ecs)
	skill := cfg.SkillByID(id)
	SpawnExplosion(ecs, b.Position.X, b.Position.Y, skill.Effect)
	if skill.Effect == cfg.EffectSuper {
		b.Super = true
		b.SuperTimer = cfg.Ball.SuperFrames
		TriggerScreenShake(ecs, cfg.ScreenShake.SuperStrength, cfg.ScreenShake.SuperDuration)
	}

	SkillFired.Publish(ecs.World, SkillFiredEvent{Skill: id, Character: ch.ID})
	return true
}

// UpdateSkills ticks the shared cooldown down.
func UpdateSkills(ecs *ecs.ECS) {
	cd := cooldown(ecs)
	if cd == nil {
		return
	}
	if cd.Remaining > 0 {
		cd.Remaining--
	}
}
