package scenes

import (
	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/persistence"
	"github.com/automoto/superkick/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var skillKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// handleInput resolves touches, the mouse and the keyboard into intents for
// the home player. A press on a skill button fires that skill; any other
// press or held pointer is a move target.
func (ms *MatchScene) handleInput() {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		ms.press(float64(x), float64(y))
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		if inpututil.IsTouchJustReleased(id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		ms.hold(float64(x), float64(y))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ms.press(float64(x), float64(y))
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ms.hold(float64(x), float64(y))
	}

	for i, key := range skillKeys {
		if i < len(cfg.Skills) && inpututil.IsKeyJustPressed(key) {
			ms.sim.RequestSkill(cfg.Skills[i].ID, simulation.HomePlayer)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ms.sim.RequestShoot(simulation.HomePlayer)
	}
}

func (ms *MatchScene) press(x, y float64) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	if i, ok := cfg.Input.SkillButtonAt(x, y, len(cfg.Skills), w, h); ok {
		ms.sim.RequestSkill(cfg.Skills[i].ID, simulation.HomePlayer)
		return
	}
	ms.sim.RequestMove(simulation.HomePlayer, x, y)
}

// hold keeps steering toward a held pointer, ignoring one parked on a button.
func (ms *MatchScene) hold(x, y float64) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	if _, ok := cfg.Input.SkillButtonAt(x, y, len(cfg.Skills), w, h); ok {
		return
	}
	ms.sim.RequestMove(simulation.HomePlayer, x, y)
}

// handleHotkeys processes scene-level keys. It reports whether the scene
// was replaced and the frame should stop here.
func (ms *MatchScene) handleHotkeys() bool {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		cfgCopy := ms.matchConfig
		cfgCopy.HasSeed = false
		ms.sceneChanger.ChangeScene(NewMatchScene(ms.sceneChanger, cfgCopy))
		return true
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		ms.toggleSetting(func(s *persistence.SavedSettings) { s.Haptics = !s.Haptics })
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		ms.debug = !ms.debug
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		ms.toggleSetting(func(s *persistence.SavedSettings) { s.ShowTrails = !s.ShowTrails })
	}
	return false
}
