package components

import (
	"github.com/automoto/superkick/config"
	"github.com/yohamta/donburi"
)

// Goal is a scoring line on the left or right edge of the pitch.
type Goal struct {
	Side      config.Side // side credited when the ball goes in
	LineX     float64
	Direction float64 // +1 on the right edge, -1 on the left
	MouthTop  float64
	MouthBot  float64
	Depth     float64
}

// Crossed reports whether x is past the goal line.
func (g Goal) Crossed(x float64) bool {
	if g.Direction < 0 {
		return x < g.LineX
	}
	return x > g.LineX
}

// InMouth reports whether y lies strictly inside the goal opening.
func (g Goal) InMouth(y float64) bool {
	return y > g.MouthTop && y < g.MouthBot
}

// MouthCenter returns the vertical centre of the opening.
func (g Goal) MouthCenter() float64 {
	return (g.MouthTop + g.MouthBot) / 2
}

// PitchData is the singleton playing field.
type PitchData struct {
	Width      float64
	Height     float64
	WallMargin float64
	Goals      []Goal
}

var Pitch = donburi.NewComponentType[PitchData]()

// Center returns the kickoff spot.
func (p PitchData) Center() (float64, float64) {
	return p.Width / 2, p.Height / 2
}

// GoalOn returns the goal on the edge facing direction, if any.
func (p PitchData) GoalOn(direction float64) (Goal, bool) {
	for _, g := range p.Goals {
		if g.Direction == direction {
			return g, true
		}
	}
	return Goal{}, false
}
