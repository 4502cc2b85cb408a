package simulation

import (
	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/systems"
	"github.com/yohamta/donburi"
)

// FeedbackKind classifies a moment the host may answer with haptics or sound.
type FeedbackKind int

const (
	FeedbackGoal FeedbackKind = iota
	FeedbackSkill
	FeedbackSave
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackGoal:
		return "goal"
	case FeedbackSkill:
		return "skill"
	case FeedbackSave:
		return "save"
	default:
		return "unknown"
	}
}

// Feedback is one delivered event.
type Feedback struct {
	Kind      FeedbackKind
	Frame     int
	Side      cfg.Side
	Skill     cfg.SkillID
	Character components.CharacterID
}

func (s *Simulation) subscribe() {
	systems.GoalScored.Subscribe(s.ecs.World, func(_ donburi.World, e systems.GoalScoredEvent) {
		s.feedback = append(s.feedback, Feedback{Kind: FeedbackGoal, Frame: s.frame, Side: e.Side})
	})
	systems.SkillFired.Subscribe(s.ecs.World, func(_ donburi.World, e systems.SkillFiredEvent) {
		s.feedback = append(s.feedback, Feedback{Kind: FeedbackSkill, Frame: s.frame, Skill: e.Skill, Character: e.Character})
	})
	systems.BallSaved.Subscribe(s.ecs.World, func(_ donburi.World, e systems.BallSavedEvent) {
		s.feedback = append(s.feedback, Feedback{Kind: FeedbackSave, Frame: s.frame, Character: e.Keeper})
	})
}

// DrainFeedback returns the events delivered since the last call and clears them.
// Events from a request made between ticks arrive with the following tick.
func (s *Simulation) DrainFeedback() []Feedback {
	out := s.feedback
	s.feedback = nil
	return out
}
