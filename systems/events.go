package systems

import (
	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// GoalScoredEvent is published when the ball crosses a goal line inside the mouth.
type GoalScoredEvent struct {
	Side cfg.Side
	X, Y float64 // where the ball crossed
}

// SkillFiredEvent is published after a successful skill activation.
type SkillFiredEvent struct {
	Skill     cfg.SkillID
	Character components.CharacterID
}

// BallSavedEvent is published when a goalkeeper repels the ball.
type BallSavedEvent struct {
	Keeper components.CharacterID
	X, Y   float64
}

var (
	GoalScored = events.NewEventType[GoalScoredEvent]()
	SkillFired = events.NewEventType[SkillFiredEvent]()
	BallSaved  = events.NewEventType[BallSavedEvent]()
)

// ProcessEvents delivers everything published during the frame. It runs last.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
