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

func CreatePlayer(ecs *ecs.ECS, id components.CharacterID, side cfg.Side, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	r := cfg.Player.Radius
	components.Character.SetValue(player, components.CharacterData{
		ID:       id,
		Kind:     cfg.KindPlayer,
		Side:     side,
		Position: dmath.Vec2{X: x, Y: y},
		Radius:   r,
		Facing:   cfg.DirectionRight,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.StateIdle,
		PreviousState: cfg.StateIdle,
	})
	components.Intent.SetValue(player, components.IntentData{})

	obj := resolv.NewObject(x-r, y-r, r*2, r*2, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}

// CreateGoalkeeper places a keeper in front of goal, facing the field.
func CreateGoalkeeper(ecs *ecs.ECS, id components.CharacterID, side cfg.Side, goal components.Goal) *donburi.Entry {
	keeper := archetypes.Goalkeeper.Spawn(ecs)

	r := cfg.Keeper.Radius
	x := goal.LineX - goal.Direction*cfg.Keeper.LaneOffset
	y := goal.MouthCenter()

	components.Character.SetValue(keeper, components.CharacterData{
		ID:       id,
		Kind:     cfg.KindGoalkeeper,
		Side:     side,
		Position: dmath.Vec2{X: x, Y: y},
		Radius:   r,
		Facing:   -goal.Direction,
	})
	components.State.SetValue(keeper, components.StateData{
		CurrentState:  cfg.StateIdle,
		PreviousState: cfg.StateIdle,
	})
	components.Keeper.SetValue(keeper, components.KeeperData{
		LaneX:    x,
		LaneMinY: y - cfg.Keeper.LaneHalfSpan,
		LaneMaxY: y + cfg.Keeper.LaneHalfSpan,
		MaxSpeed: cfg.Keeper.MaxSpeed,
	})

	obj := resolv.NewObject(x-r, y-r, r*2, r*2, tags.ResolvGoalkeeper)
	obj.Data = keeper
	components.Object.SetValue(keeper, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return keeper
}
