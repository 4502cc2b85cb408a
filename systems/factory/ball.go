package factory

import (
	"github.com/automoto/superkick/archetypes"
	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateBall(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	r := cfg.Ball.Radius
	components.Ball.SetValue(ball, components.BallData{
		Position: dmath.Vec2{X: x, Y: y},
		Radius:   r,
	})

	obj := resolv.NewObject(x-r, y-r, r*2, r*2, tags.ResolvBall)
	obj.Data = ball
	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ball
}
