package config

// InputConfig contains the host's skill button layout. Buttons are stacked
// bottom-up along the right edge in Skills order.
type InputConfig struct {
	ButtonRadius    float64 // drawn radius
	ButtonHitRadius float64 // touch radius
	ButtonInsetX    float64 // from the right edge
	ButtonBottom    float64 // centre of the lowest button, from the bottom edge
	ButtonSpacing   float64
}

// Input is the global input layout configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		ButtonRadius:    25,
		ButtonHitRadius: 30,
		ButtonInsetX:    60,
		ButtonBottom:    50,
		ButtonSpacing:   70,
	}
}

// SkillButton returns the centre of button i out of n on a width x height screen.
// Button n-1 sits lowest.
func (c InputConfig) SkillButton(i, n int, width, height float64) (float64, float64) {
	x := width - c.ButtonInsetX
	y := height - c.ButtonBottom - float64(n-1-i)*c.ButtonSpacing
	return x, y
}

// SkillButtonAt returns the index of the button under (px, py), if any.
func (c InputConfig) SkillButtonAt(px, py float64, n int, width, height float64) (int, bool) {
	for i := 0; i < n; i++ {
		x, y := c.SkillButton(i, n, width, height)
		dx, dy := px-x, py-y
		if dx*dx+dy*dy < c.ButtonHitRadius*c.ButtonHitRadius {
			return i, true
		}
	}
	return 0, false
}
