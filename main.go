package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/superkick/assets"
	"github.com/automoto/superkick/config"
	"github.com/automoto/superkick/fonts"
	"github.com/automoto/superkick/persistence"
	"github.com/automoto/superkick/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(match scenes.MatchConfig) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMatchScene(g, match)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadLayout reads a pitch from disk, or one of the embedded pitches by name.
func loadLayout(pitch string) (*assets.PitchLayout, error) {
	if _, err := os.Stat(pitch); err == nil {
		return assets.LoadPitch(os.DirFS("."), pitch)
	}
	return assets.LoadEmbeddedPitch(pitch)
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	pitch := flag.String("pitch", "classic", "embedded pitch name or path to a .tmx file")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	match := scenes.MatchConfig{
		Seed:    *seed,
		HasSeed: *seed != 0,
	}

	layout, err := loadLayout(*pitch)
	if err != nil {
		log.Printf("Warning: Could not load pitch %q, using the default: %v", *pitch, err)
	} else {
		match.Layout = layout
		config.C.Width = int(layout.Pitch.Width)
		config.C.Height = int(layout.Pitch.Height)
	}

	// Initialize persistence and load saved settings
	settings, err := persistence.Open()
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	match.Settings = settings

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Superkick")

	if err := ebiten.RunGame(NewGame(match)); err != nil {
		log.Fatal(err)
	}
}
