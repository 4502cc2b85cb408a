package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData is the world's single random source. Tests seed it.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

// Between returns a uniform value in [lo, lo+span).
func (r *RandomData) Between(lo, span float64) float64 {
	return lo + r.Float64()*span
}
