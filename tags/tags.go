package tags

import "github.com/yohamta/donburi"

var (
	Ball       = donburi.NewTag().SetName("Ball")
	Player     = donburi.NewTag().SetName("Player")
	Goalkeeper = donburi.NewTag().SetName("Goalkeeper")
)

// Resolv tags for the collision space
const (
	ResolvBall       = "ball"
	ResolvPlayer     = "player"
	ResolvGoalkeeper = "goalkeeper"
)
