package config

// StateID identifies a character behaviour state.
type StateID int

const (
	StateIdle StateID = iota
	StateMoving
	StateShooting
	StateTracking // goalkeeper following the ball
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateShooting:
		return "shooting"
	case StateTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// CharacterKind separates input-driven players from ball-driven goalkeepers.
type CharacterKind int

const (
	KindPlayer CharacterKind = iota
	KindGoalkeeper
)

func (k CharacterKind) String() string {
	if k == KindGoalkeeper {
		return "goalkeeper"
	}
	return "player"
}

// Side is a team; a goal belongs to the side that scores in it.
type Side int

const (
	SideHome Side = iota
	SideAway
)

func (s Side) String() string {
	if s == SideAway {
		return "away"
	}
	return "home"
}

// ParseSide maps a layout property to a Side. Anything unrecognised is home.
func ParseSide(s string) Side {
	if s == "away" {
		return SideAway
	}
	return SideHome
}

// EffectKind selects an explosion visual.
type EffectKind int

const (
	EffectNormal EffectKind = iota
	EffectFire
	EffectLightning
	EffectSuper
)

func (k EffectKind) String() string {
	switch k {
	case EffectFire:
		return "fire"
	case EffectLightning:
		return "lightning"
	case EffectSuper:
		return "super"
	default:
		return "normal"
	}
}
