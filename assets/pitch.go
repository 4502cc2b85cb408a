package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/superkick/components"
	"github.com/automoto/superkick/config"
	"github.com/lafriks/go-tiled"
)

//go:embed all:pitches
var pitchFS embed.FS

// DefaultPitchPath is the embedded layout used when no -pitch flag is given.
const DefaultPitchPath = "pitches/classic.tmx"

// ErrNoGoals is returned for a layout without a Goal object.
var ErrNoGoals = errors.New("pitch has no goals")

// Spawn is a point object from the PlayerSpawn group.
type Spawn struct {
	X, Y float64
	Side config.Side
}

// PitchLayout is a parsed TMX pitch.
type PitchLayout struct {
	Name         string
	Pitch        components.PitchData
	PlayerSpawns []Spawn
}

// PlayerStart returns the first home spawn, if the layout has one.
func (l *PitchLayout) PlayerStart() (Spawn, bool) {
	for _, s := range l.PlayerSpawns {
		if s.Side == config.SideHome {
			return s, true
		}
	}
	return Spawn{}, false
}

// LoadPitch parses a TMX file from fsys. Goal objects are rectangles whose
// near edge is the goal line; the side they sit on is taken from the box
// centre and the "side" property names who scores there.
func LoadPitch(fsys fs.FS, path string) (*PitchLayout, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	width := float64(levelMap.Width * levelMap.TileWidth)
	height := float64(levelMap.Height * levelMap.TileHeight)
	layout := &PitchLayout{
		Name: strings.TrimSuffix(filepath.Base(path), ".tmx"),
		Pitch: components.PitchData{
			Width:      width,
			Height:     height,
			WallMargin: config.Pitch.WallMargin,
		},
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Goal":
			for _, o := range og.Objects {
				layout.Pitch.Goals = append(layout.Pitch.Goals, goalFromRect(
					o.X, o.Y, o.Width, o.Height, width,
					config.ParseSide(o.Properties.GetString("side")),
				))
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				layout.PlayerSpawns = append(layout.PlayerSpawns, Spawn{
					X:    o.X,
					Y:    o.Y,
					Side: config.ParseSide(o.Properties.GetString("side")),
				})
			}
		}
	}

	if len(layout.Pitch.Goals) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoGoals)
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(layout.PlayerSpawns, func(i, j int) bool {
		return layout.PlayerSpawns[i].X < layout.PlayerSpawns[j].X
	})

	return layout, nil
}

func goalFromRect(x, y, w, h, pitchWidth float64, side config.Side) components.Goal {
	g := components.Goal{
		Side:     side,
		MouthTop: y,
		MouthBot: y + h,
		Depth:    w,
	}
	if x+w/2 < pitchWidth/2 {
		g.Direction = config.DirectionLeft
		g.LineX = x + w
	} else {
		g.Direction = config.DirectionRight
		g.LineX = x
	}
	return g
}

// LoadAllPitches loads every .tmx file in dir, keyed by file stem.
func LoadAllPitches(fsys fs.FS, dir string) (map[string]*PitchLayout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	pitches := make(map[string]*PitchLayout, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		layout, err := LoadPitch(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		pitches[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return pitches, names, nil
}

// LoadEmbeddedPitch loads one of the pitches shipped with the game by stem
// name, e.g. "classic".
func LoadEmbeddedPitch(name string) (*PitchLayout, error) {
	return LoadPitch(pitchFS, "pitches/"+name+".tmx")
}

// EmbeddedPitchNames lists the shipped pitches.
func EmbeddedPitchNames() ([]string, error) {
	_, names, err := LoadAllPitches(pitchFS, "pitches")
	return names, err
}
