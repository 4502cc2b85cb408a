package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/fonts"
	"github.com/automoto/superkick/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// drawDebug outlines every broadphase box in the world's collision space
// and prints the frame counter. Off unless toggled with F1.
func (ms *MatchScene) drawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !ms.debug {
		return
	}
	ox, oy := ms.ox, ms.oy
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x := obj.X + ox
			y := obj.Y + oy

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvGoalkeeper) {
				c = color.RGBA{255, 0, 0, 255}
			}

			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	info := fmt.Sprintf("frame %d", ms.sim.Frame())
	text.Draw(screen, info, fonts.Small.Get(), 4, cfg.C.Height-6, cfg.White)
}
