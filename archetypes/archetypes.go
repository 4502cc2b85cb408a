package archetypes

import (
	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.State,
		components.Intent,
		components.Object,
	)
	Goalkeeper = newArchetype(
		tags.Goalkeeper,
		components.Character,
		components.State,
		components.Keeper,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	// Match bundles the per-match singletons.
	Match = newArchetype(
		components.Pitch,
		components.Score,
		components.Effects,
		components.ScreenShake,
		components.SkillCooldown,
		components.Celebration,
		components.Random,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
