package components

import (
	"github.com/automoto/superkick/config"
	"github.com/yohamta/donburi"
)

// ScoreData counts goals per side.
// This is a singleton component - only one match exists at a time.
type ScoreData struct {
	Home int
	Away int
}

var Score = donburi.NewComponentType[ScoreData]()

// AddGoal credits one goal to side.
func (s *ScoreData) AddGoal(side config.Side) {
	if side == config.SideAway {
		s.Away++
		return
	}
	s.Home++
}

// For returns the goal count of side.
func (s *ScoreData) For(side config.Side) int {
	if side == config.SideAway {
		return s.Away
	}
	return s.Home
}

// SkillCooldownData is the one cooldown shared by every skill.
type SkillCooldownData struct {
	Remaining int // frames until any skill may fire again
	Last      config.SkillID
	Fired     int // successful activations this match
}

var SkillCooldown = donburi.NewComponentType[SkillCooldownData]()

// Ready reports whether a skill may be attempted.
func (s *SkillCooldownData) Ready() bool {
	return s.Remaining <= 0
}
