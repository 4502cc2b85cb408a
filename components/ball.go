package components

import (
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BallData is the single shared ball. Positions are centre coordinates.
type BallData struct {
	Position   dmath.Vec2
	Velocity   dmath.Vec2
	Radius     float64
	Super      bool
	SuperTimer int // frames left in super mode
}

var Ball = donburi.NewComponentType[BallData]()

// Speed returns the velocity magnitude.
func (b *BallData) Speed() float64 {
	return math.Hypot(b.Velocity.X, b.Velocity.Y)
}

// Reset puts the ball at (x, y) at rest and clears super mode.
func (b *BallData) Reset(x, y float64) {
	b.Position = dmath.Vec2{X: x, Y: y}
	b.Velocity = dmath.Vec2{}
	b.Super = false
	b.SuperTimer = 0
}
