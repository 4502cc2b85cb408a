package scenes

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/fonts"
	"github.com/automoto/superkick/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// fade scales a premultiplied colour by life in [0, 1].
func fade(c color.RGBA, life float64) color.RGBA {
	a := math.Max(0, math.Min(1, life))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func (ms *MatchScene) drawPitch(_ *ecs.ECS, screen *ebiten.Image) {
	p, ox, oy := ms.sim.Pitch(), ms.ox, ms.oy
	screen.Fill(cfg.Pitch.BackgroundColor)

	cx, cy := p.Center()
	line := cfg.Pitch.LineColor
	vector.StrokeLine(screen, float32(cx+ox), float32(oy), float32(cx+ox), float32(p.Height+oy), 2, line, false)
	vector.StrokeCircle(screen, float32(cx+ox), float32(cy+oy), 60, 2, line, true)

	for _, g := range p.Goals {
		x := g.LineX
		if g.Direction < 0 {
			x -= g.Depth
		}
		vector.StrokeRect(screen,
			float32(x+ox), float32(g.MouthTop+oy),
			float32(g.Depth), float32(g.MouthBot-g.MouthTop),
			4, line, false)
	}
}

func (ms *MatchScene) drawEffects(_ *ecs.ECS, screen *ebiten.Image) {
	fx, ox, oy := ms.sim.Effects(), ms.ox, ms.oy
	if ms.settings.ShowTrails {
		for _, t := range fx.Trails {
			vector.FillCircle(screen, float32(t.X+ox), float32(t.Y+oy), float32(t.Size), fade(t.Color, t.Life), true)
		}
	}
	for _, p := range fx.Particles {
		vector.FillCircle(screen, float32(p.X+ox), float32(p.Y+oy), float32(p.Size), fade(p.Color, p.Life), true)
	}
	for _, e := range fx.Explosions {
		c := fade(e.Color, e.Life)
		vector.FillCircle(screen, float32(e.X+ox), float32(e.Y+oy), float32(e.Radius), fade(c, 0.3), true)
		vector.StrokeCircle(screen, float32(e.X+ox), float32(e.Y+oy), float32(e.Radius), 3, c, true)
	}
}

func (ms *MatchScene) drawBall(_ *ecs.ECS, screen *ebiten.Image) {
	b, ox, oy := ms.sim.Ball(), ms.ox, ms.oy
	c := cfg.Ball.Color
	if b.Super {
		c = cfg.Ball.SuperColor
	}
	x, y, r := float32(b.Position.X+ox), float32(b.Position.Y+oy), float32(b.Radius)
	vector.FillCircle(screen, x, y, r, c, true)
	vector.StrokeCircle(screen, x, y, r, 2, cfg.Black, true)
}

func (ms *MatchScene) drawCharacters(_ *ecs.ECS, screen *ebiten.Image) {
	for _, ch := range ms.sim.Characters() {
		drawCharacter(screen, ch, ms.ox, ms.oy)
	}
}

func drawCharacter(screen *ebiten.Image, ch simulation.CharacterView, ox, oy float64) {
	c := cfg.Player.Color
	if ch.Kind == cfg.KindGoalkeeper {
		c = cfg.Keeper.Color
	}
	x, y, r := float32(ch.Position.X+ox), float32(ch.Position.Y+oy), float32(ch.Radius)
	vector.FillCircle(screen, x, y, r, c, true)

	outline := cfg.White
	if ch.State == cfg.StateShooting {
		outline = cfg.Gold
	}
	vector.StrokeCircle(screen, x, y, r, 2, outline, true)

	// Facing marker
	fx := x + float32(ch.Facing)*r*0.6
	vector.FillCircle(screen, fx, y-r*0.2, r*0.2, cfg.White, true)

	if ch.State == cfg.StateShooting {
		// Kicking leg swings out over the shot frames
		t := math.Min(1, float64(ch.StateTimer)/float64(cfg.Player.ShootFrames))
		reach := float32(ch.Facing) * r * float32(0.6+0.6*math.Sin(t*math.Pi))
		vector.StrokeLine(screen, x, y+r*0.5, x+reach, y+r, 4, cfg.Black, true)
	}
}

func (ms *MatchScene) drawSkillButtons(_ *ecs.ECS, screen *ebiten.Image) {
	cooldown := ms.sim.SkillCooldown()
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	face := fonts.HUD.Get()
	for i, s := range cfg.Skills {
		x, y := cfg.Input.SkillButton(i, len(cfg.Skills), w, h)
		bg := color.RGBA{A: 76}
		fg := s.Color
		if cooldown > 0 {
			fg = fade(fg, 0.4)
		}
		vector.FillCircle(screen, float32(x), float32(y), float32(cfg.Input.ButtonRadius), bg, true)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(cfg.Input.ButtonRadius), 2, fg, true)
		text.Draw(screen, s.Label, face, int(x)-4, int(y)+5, fg)
	}
	if cooldown > 0 {
		x, y := cfg.Input.SkillButton(0, len(cfg.Skills), w, h)
		label := fmt.Sprintf("%.1fs", float64(cooldown)/60)
		text.Draw(screen, label, fonts.Small.Get(), int(x)-12, int(y-cfg.Input.ButtonRadius)-6, cfg.White)
	}
}

func (ms *MatchScene) drawScore(_ *ecs.ECS, screen *ebiten.Image) {
	s := ms.sim.Score()
	scoreStr := fmt.Sprintf("HOME %d  AWAY %d", s.Home, s.Away)
	text.Draw(screen, scoreStr, fonts.Score.Get(), 40, 40, cfg.White)
}

func (ms *MatchScene) drawCelebration(_ *ecs.ECS, screen *ebiten.Image) {
	scale, side, active := ms.sim.Celebration()
	if !active {
		return
	}
	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)

	bandH := 80 * scale
	vector.FillRect(screen, 0, height/2-bandH/2, width, bandH, color.RGBA{0, 0, 0, 160}, false)

	msg := fmt.Sprintf("GOAL! %s", side)
	textX := int(width/2) - len(msg)*10
	text.Draw(screen, msg, fonts.Banner.Get(), textX, int(height/2)+14, cfg.Celebration.Color)
}
