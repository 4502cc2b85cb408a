package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/superkick/assets"
	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/persistence"
	"github.com/automoto/superkick/simulation"
	"github.com/hajimehoshi/ebiten/v2"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MatchConfig selects what a new match is built from.
type MatchConfig struct {
	Seed     int64
	HasSeed  bool
	Layout   *assets.PitchLayout
	Settings *persistence.Settings
}

// MatchScene hosts one simulation: it turns input into intents, ticks the
// world once per Update and draws the result.
type MatchScene struct {
	sim          *simulation.Simulation
	sceneChanger SceneChanger
	matchConfig  MatchConfig
	settings     persistence.SavedSettings
	debug        bool
	ox, oy       float64 // shake offset for the frame being drawn
	once         sync.Once
}

func NewMatchScene(sc SceneChanger, config MatchConfig) *MatchScene {
	return &MatchScene{sceneChanger: sc, matchConfig: config}
}

func (ms *MatchScene) configure() {
	var opts []simulation.Option
	if ms.matchConfig.HasSeed {
		opts = append(opts, simulation.WithSeed(ms.matchConfig.Seed))
	}
	if l := ms.matchConfig.Layout; l != nil {
		opts = append(opts, simulation.WithPitch(l.Pitch))
		if start, ok := l.PlayerStart(); ok {
			opts = append(opts, simulation.WithPlayerStart(start.X, start.Y))
		}
	}
	ms.sim = simulation.New(opts...)
	ms.settings = ms.matchConfig.Settings.Load()

	ecs := ms.sim.ECS()
	ecs.AddRenderer(cfg.Default, ms.drawPitch)
	ecs.AddRenderer(cfg.Default, ms.drawEffects)
	ecs.AddRenderer(cfg.Default, ms.drawBall)
	ecs.AddRenderer(cfg.Default, ms.drawCharacters)
	ecs.AddRenderer(cfg.HUD, ms.drawSkillButtons)
	ecs.AddRenderer(cfg.HUD, ms.drawScore)
	ecs.AddRenderer(cfg.HUD, ms.drawCelebration)
	ecs.AddRenderer(cfg.HUD, ms.drawDebug)
}

func (ms *MatchScene) Update() {
	ms.once.Do(ms.configure)

	if ms.handleHotkeys() {
		return
	}
	ms.handleInput()
	ms.sim.Tick()
	ms.playFeedback()
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	if ms.sim == nil {
		// Always clear screen to prevent white flashes from OS window background
		screen.Fill(color.Black)
		return
	}

	ms.ox, ms.oy = ms.sim.ShakeOffset()
	ms.sim.ECS().Draw(screen)
}

// playFeedback answers simulation events with device vibration.
func (ms *MatchScene) playFeedback() {
	for _, f := range ms.sim.DrainFeedback() {
		if !ms.settings.Haptics {
			continue
		}
		d := cfg.Settings.SkillVibration
		switch f.Kind {
		case simulation.FeedbackGoal:
			d = cfg.Settings.GoalVibration
		case simulation.FeedbackSave:
			d = cfg.Settings.SaveVibration
		}
		ebiten.Vibrate(&ebiten.VibrateOptions{
			Duration:  d,
			Magnitude: cfg.Settings.VibrationMagnitude,
		})
	}
}

// toggleSetting flips one setting and persists the result.
func (ms *MatchScene) toggleSetting(flip func(*persistence.SavedSettings)) {
	flip(&ms.settings)
	if err := ms.matchConfig.Settings.Save(ms.settings); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}
