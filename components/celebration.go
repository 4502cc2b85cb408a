package components

import (
	"github.com/automoto/superkick/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CelebrationData drives the goal banner after a score.
type CelebrationData struct {
	Tween  *gween.Tween
	Scale  float32
	Active bool
	Side   config.Side
}

var Celebration = donburi.NewComponentType[CelebrationData]()
