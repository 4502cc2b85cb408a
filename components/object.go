package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors a circular body into the collision space as its bounding box.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broadphase grid.
var Space = donburi.NewComponentType[resolv.Space]()

// MoveTo places the bounding box of a circle centred at (x, y) and re-registers it.
func (o *ObjectData) MoveTo(x, y, radius float64) {
	o.X = x - radius
	o.Y = y - radius
	o.Update()
}
