package systems

import (
	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCelebration steps the goal banner tween by one frame.
func UpdateCelebration(ecs *ecs.ECS) {
	e, ok := components.Celebration.First(ecs.World)
	if !ok {
		return
	}
	c := components.Celebration.Get(e)
	if !c.Active || c.Tween == nil {
		return
	}
	scale, finished := c.Tween.Update(1)
	c.Scale = scale
	if finished {
		c.Active = false
	}
}

func startCelebration(ecs *ecs.ECS, side cfg.Side) {
	e, ok := components.Celebration.First(ecs.World)
	if !ok {
		return
	}
	c := components.Celebration.Get(e)
	if c.Tween == nil {
		return
	}
	c.Tween.Reset()
	c.Scale = cfg.Celebration.FromScale
	c.Side = side
	c.Active = true
}
