package config

import "image/color"

// SkillID identifies a shot skill.
type SkillID int

const (
	SkillFire SkillID = iota
	SkillLightning
	SkillBanana
	SkillSuper
)

// SkillConfig is one entry of the skill table.
type SkillConfig struct {
	ID       SkillID
	Name     string
	Label    string // button glyph
	Color    color.RGBA
	Power    float64 // impulse magnitude
	Cooldown int     // frames of shared cooldown started on success
	Range    float64 // max origin-to-ball distance
	Effect   EffectKind
}

// Skills is the skill table in button order.
var Skills []SkillConfig

// DefaultSkill is used for ids missing from the table.
var DefaultSkill SkillConfig

// SkillByID returns the table entry for id, or DefaultSkill.
func SkillByID(id SkillID) SkillConfig {
	for _, s := range Skills {
		if s.ID == id {
			return s
		}
	}
	return DefaultSkill
}

func (id SkillID) String() string {
	return SkillByID(id).Name
}

func init() {
	Skills = []SkillConfig{
		{ID: SkillFire, Name: "fire", Label: "F", Color: Orange, Power: 25, Cooldown: 180, Range: 180, Effect: EffectFire},
		{ID: SkillLightning, Name: "lightning", Label: "L", Color: Cyan, Power: 22, Cooldown: 150, Range: 180, Effect: EffectLightning},
		{ID: SkillBanana, Name: "banana", Label: "B", Color: Gold, Power: 18, Cooldown: 120, Range: 180, Effect: EffectNormal},
		{ID: SkillSuper, Name: "super", Label: "S", Color: Magenta, Power: 30, Cooldown: 240, Range: 180, Effect: EffectSuper},
	}

	DefaultSkill = SkillConfig{
		ID:       -1,
		Name:     "shot",
		Label:    "?",
		Color:    White,
		Power:    15,
		Cooldown: 90,
		Range:    180,
		Effect:   EffectNormal,
	}
}
