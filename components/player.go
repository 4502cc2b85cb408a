package components

import (
	"github.com/automoto/superkick/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CharacterID is the stable handle the input layer uses to address a character.
type CharacterID int

// CharacterData is shared by players and goalkeepers.
type CharacterData struct {
	ID       CharacterID
	Kind     config.CharacterKind
	Side     config.Side
	Position dmath.Vec2
	Radius   float64
	Facing   float64 // DirectionLeft or DirectionRight
}

var Character = donburi.NewComponentType[CharacterData]()

// IntentData holds the resolved input for a player until the next update.
type IntentData struct {
	HasTarget bool
	Target    dmath.Vec2
	// Received is set by a move request and cleared after each character update.
	Received            bool
	FramesWithoutIntent int
}

var Intent = donburi.NewComponentType[IntentData]()

// KeeperData is the vertical lane a goalkeeper patrols.
type KeeperData struct {
	LaneX    float64
	LaneMinY float64
	LaneMaxY float64
	MaxSpeed float64
}

var Keeper = donburi.NewComponentType[KeeperData]()
