// Package simulation owns the match world and runs it one frame at a time.
//
// A frame is: characters, collisions, ball physics, effects, shake, skill
// cooldown, celebration, then queued events are delivered. The steps are
// systems on a donburi ecs.ECS, run in registration order by Update. Callers feed
// intents through the Request methods between ticks and read state back
// through the accessors after a tick; nothing here is safe for concurrent use.
package simulation

import (
	"math/rand"
	"sort"
	"time"

	"github.com/automoto/superkick/components"
	cfg "github.com/automoto/superkick/config"
	"github.com/automoto/superkick/systems"
	"github.com/automoto/superkick/systems/factory"
	"github.com/automoto/superkick/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Simulation is the single owner of the world state.
type Simulation struct {
	ecs        *ecs.ECS
	characters map[components.CharacterID]*donburi.Entry
	frame      int
	feedback   []Feedback
}

// Option configures a Simulation at construction.
type Option func(*options)

type options struct {
	rng   *rand.Rand
	pitch *components.PitchData
	start *dmath.Vec2
}

// WithSeed seeds the world's random source.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithPitch replaces the default pitch geometry.
func WithPitch(p components.PitchData) Option {
	return func(o *options) {
		o.pitch = &p
	}
}

// WithPlayerStart moves the home player's kickoff position.
func WithPlayerStart(x, y float64) Option {
	return func(o *options) {
		o.start = &dmath.Vec2{X: x, Y: y}
	}
}

// IDs of the characters in a fresh match.
const (
	HomePlayer components.CharacterID = 1
	AwayKeeper components.CharacterID = 2
)

// New builds a fresh match: one home player on the left, a ball on the centre
// spot, and an away goalkeeper in front of every goal the home side attacks.
func New(opts ...Option) *Simulation {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	p := factory.DefaultPitch(float64(cfg.C.Width), float64(cfg.C.Height))
	if o.pitch != nil {
		p = *o.pitch
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(ecs, int(p.Width), int(p.Height), 32, 32)
	factory.CreateMatch(ecs, p, o.rng)

	cx, cy := p.Center()
	factory.CreateBall(ecs, cx, cy)

	s := &Simulation{
		ecs:        ecs,
		characters: map[components.CharacterID]*donburi.Entry{},
	}
	start := dmath.Vec2{X: cfg.Player.StartX, Y: cy}
	if o.start != nil {
		start = *o.start
	}
	s.characters[HomePlayer] = factory.CreatePlayer(ecs, HomePlayer, cfg.SideHome, start.X, start.Y)

	nextID := AwayKeeper
	for _, g := range p.Goals {
		if g.Side != cfg.SideHome {
			continue
		}
		s.characters[nextID] = factory.CreateGoalkeeper(ecs, nextID, cfg.SideAway, g)
		nextID++
	}

	// Frame order
	ecs.AddSystem(systems.UpdateCharacters)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateBallPhysics)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateScreenShake)
	ecs.AddSystem(systems.UpdateSkills)
	ecs.AddSystem(systems.UpdateCelebration)
	ecs.AddSystem(systems.ProcessEvents)

	s.subscribe()
	return s
}

// Tick advances the world by exactly one frame.
func (s *Simulation) Tick() {
	s.frame++
	s.ecs.Update()
}

// ECS exposes the scheduler so a host can register renderers and draw.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// World exposes the underlying world for renderers that query it directly.
func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

// Frame returns the number of ticks run so far.
func (s *Simulation) Frame() int {
	return s.frame
}

// RequestMove sends a player toward (x, y). Goalkeepers and unknown ids are ignored.
func (s *Simulation) RequestMove(id components.CharacterID, x, y float64) bool {
	return systems.RequestMove(s.player(id), x, y)
}

// RequestShoot plays the shot animation for a player.
func (s *Simulation) RequestShoot(id components.CharacterID) bool {
	return systems.Shoot(s.player(id))
}

// RequestSkill fires skill from the player's position. It reports whether
// the skill went off; a refusal leaves the world untouched.
func (s *Simulation) RequestSkill(skill cfg.SkillID, id components.CharacterID) bool {
	return systems.UseSkill(s.ecs, skill, s.player(id))
}

func (s *Simulation) player(id components.CharacterID) *donburi.Entry {
	e, ok := s.characters[id]
	if !ok || !e.Valid() || !e.HasComponent(tags.Player) {
		return nil
	}
	return e
}

// Ball returns a copy of the ball.
func (s *Simulation) Ball() components.BallData {
	e, ok := components.Ball.First(s.ecs.World)
	if !ok {
		return components.BallData{}
	}
	return *components.Ball.Get(e)
}

// CharacterView is the render-facing copy of one character.
type CharacterView struct {
	components.CharacterData
	State      cfg.StateID
	StateTimer int
}

// Character returns the character with id.
func (s *Simulation) Character(id components.CharacterID) (CharacterView, bool) {
	e, ok := s.characters[id]
	if !ok || !e.Valid() {
		return CharacterView{}, false
	}
	return view(e), true
}

// Characters returns every character ordered by id.
func (s *Simulation) Characters() []CharacterView {
	out := make([]CharacterView, 0, len(s.characters))
	for _, e := range s.characters {
		if e.Valid() {
			out = append(out, view(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func view(e *donburi.Entry) CharacterView {
	st := components.State.Get(e)
	return CharacterView{
		CharacterData: *components.Character.Get(e),
		State:         st.CurrentState,
		StateTimer:    st.StateTimer,
	}
}

// Score returns the goal counts.
func (s *Simulation) Score() components.ScoreData {
	e, ok := components.Score.First(s.ecs.World)
	if !ok {
		return components.ScoreData{}
	}
	return *components.Score.Get(e)
}

// Pitch returns the field geometry.
func (s *Simulation) Pitch() components.PitchData {
	e, ok := components.Pitch.First(s.ecs.World)
	if !ok {
		return components.PitchData{}
	}
	return *components.Pitch.Get(e)
}

// Effects returns copies of the particle, trail and explosion collections.
func (s *Simulation) Effects() systems.EffectsSnapshot {
	return systems.Effects(s.ecs)
}

// ShakeOffset returns this frame's render translation. Each call draws from
// the world's random source.
func (s *Simulation) ShakeOffset() (float64, float64) {
	return systems.ShakeOffset(s.ecs)
}

// SkillCooldown returns the frames left on the shared skill cooldown.
func (s *Simulation) SkillCooldown() int {
	e, ok := components.SkillCooldown.First(s.ecs.World)
	if !ok {
		return 0
	}
	return components.SkillCooldown.Get(e).Remaining
}

// Celebration returns the goal banner state.
func (s *Simulation) Celebration() (scale float32, side cfg.Side, active bool) {
	e, ok := components.Celebration.First(s.ecs.World)
	if !ok {
		return 0, cfg.SideHome, false
	}
	c := components.Celebration.Get(e)
	return c.Scale, c.Side, c.Active
}
