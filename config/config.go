package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// PitchConfig describes the default pitch geometry used when no TMX layout is loaded
type PitchConfig struct {
	WallMargin      float64 // x distance from the side edges where the ball bounces
	GoalLineInset   float64 // goal line sits this far inside the right edge
	GoalMouthHalf   float64 // half height of the goal opening
	GoalDepth       float64 // drawn depth of the goal box
	BackgroundColor color.RGBA
	LineColor       color.RGBA
}

// BallConfig contains ball physics configuration
type BallConfig struct {
	Radius              float64
	Friction            float64 // velocity multiplier applied every frame
	Restitution         float64 // velocity kept (and reversed) on a bounce
	TrailSpeedThreshold float64 // |vx| above which a trail particle is emitted
	SuperFrames         int     // frames a super ball stays super
	BounceSparkCount    int

	Color      color.RGBA
	SuperColor color.RGBA
	TrailColor color.RGBA
}

// PlayerConfig contains player-related configuration values
type PlayerConfig struct {
	Radius   float64
	StartX   float64 // spawn x; y is the pitch centre
	MaxSpeed float64 // max distance covered per frame toward a move target

	// State machine
	ShootFrames     int     // frames spent in shooting before reverting to idle
	IdleChance      float64 // per-frame chance that moving decays to idle without intent
	IdleGraceFrames int     // hard bound on frames spent moving without intent

	// Ball contact
	CarryPush    float64 // velocity added per unit of overlap, away from the player
	DribbleBoost float64 // extra x velocity along facing while moving

	Color color.RGBA
}

// KeeperConfig contains goalkeeper configuration values
type KeeperConfig struct {
	Radius        float64
	LaneOffset    float64 // distance in front of the goal line
	LaneHalfSpan  float64 // half height of the vertical lane
	MaxSpeed      float64
	Kick          float64 // added to the reversed horizontal speed on a save
	Deflect       float64 // max random vertical deflection on a save
	SaveSparks    int
	SparkColor    color.RGBA
	ShakeStrength float64
	ShakeDuration int

	Color color.RGBA
}

// EffectsConfig contains particle, trail and explosion tuning
type EffectsConfig struct {
	SparkSpeedMin, SparkSpeedSpan float64
	SparkLifeMin, SparkLifeSpan   float64
	SparkSizeMin, SparkSizeSpan   float64

	TrailOffset                 float64 // trail spawns at position - offset*velocity
	TrailDamping                float64 // trail velocity = damping*source velocity
	TrailLife                   float64
	TrailSizeMin, TrailSizeSpan float64

	BurstSpeedMin, BurstSpeedSpan float64
	BurstLifeMin, BurstLifeSpan   float64
	BurstSizeMin, BurstSizeSpan   float64
	BurstCount                    int
	SuperBurstCount               int

	ExplosionStartRadius float64
	ExplosionMaxRadius   float64
	SuperMaxRadius       float64
	ExplosionEase        float64

	ParticleDecay  float64
	TrailDecay     float64
	ExplosionDecay float64
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	Decay         float64 // intensity multiplier per frame
	GoalIntensity float64 // pixels
	GoalDuration  int     // frames
	SuperStrength float64
	SuperDuration int
}

// CelebrationConfig contains the goal banner tween configuration
type CelebrationConfig struct {
	Frames    float32 // tween length in frames
	FromScale float32
	ToScale   float32
	Color     color.RGBA
}

// Global configuration instances
var C *Config
var Pitch PitchConfig
var Ball BallConfig
var Player PlayerConfig
var Keeper KeeperConfig
var Effects EffectsConfig
var ScreenShake ScreenShakeConfig
var Celebration CelebrationConfig

// Shared RGBA color constants
var (
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gold    = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange  = color.RGBA{R: 255, G: 69, B: 0, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Blue    = color.RGBA{R: 33, G: 150, B: 243, A: 255}
	Red     = color.RGBA{R: 229, G: 57, B: 53, A: 255}
	Grass   = color.RGBA{R: 76, G: 175, B: 80, A: 255}
)

// Direction constants for character facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 450,
	}

	Pitch = PitchConfig{
		WallMargin:      20,
		GoalLineInset:   20,
		GoalMouthHalf:   60,
		GoalDepth:       40,
		BackgroundColor: Grass,
		LineColor:       White,
	}

	Ball = BallConfig{
		Radius:              12,
		Friction:            0.98,
		Restitution:         0.8,
		TrailSpeedThreshold: 2,
		SuperFrames:         180,
		BounceSparkCount:    8,
		Color:               White,
		SuperColor:          Magenta,
		TrailColor:          White,
	}

	Player = PlayerConfig{
		Radius:          24,
		StartX:          150,
		MaxSpeed:        10,
		ShootFrames:     20,
		IdleChance:      0.2,
		IdleGraceFrames: 30,
		CarryPush:       0.25,
		DribbleBoost:    1.5,
		Color:           Blue,
	}

	Keeper = KeeperConfig{
		Radius:        22,
		LaneOffset:    30,
		LaneHalfSpan:  70,
		MaxSpeed:      3.5,
		Kick:          6,
		Deflect:       3,
		SaveSparks:    12,
		SparkColor:    Gold,
		ShakeStrength: 8,
		ShakeDuration: 8,
		Color:         Red,
	}

	Effects = EffectsConfig{
		SparkSpeedMin:  0.5,
		SparkSpeedSpan: 2,
		SparkLifeMin:   0.6,
		SparkLifeSpan:  0.4,
		SparkSizeMin:   2,
		SparkSizeSpan:  3,

		TrailOffset:   0.2,
		TrailDamping:  0.3,
		TrailLife:     0.8,
		TrailSizeMin:  1,
		TrailSizeSpan: 2,

		BurstSpeedMin:   1,
		BurstSpeedSpan:  3,
		BurstLifeMin:    0.8,
		BurstLifeSpan:   0.4,
		BurstSizeMin:    3,
		BurstSizeSpan:   4,
		BurstCount:      15,
		SuperBurstCount: 30,

		ExplosionStartRadius: 5,
		ExplosionMaxRadius:   40,
		SuperMaxRadius:       80,
		ExplosionEase:        0.2,

		ParticleDecay:  0.02,
		TrailDecay:     0.015,
		ExplosionDecay: 0.02,
	}

	ScreenShake = ScreenShakeConfig{
		Decay:         0.9,
		GoalIntensity: 20,
		GoalDuration:  15,
		SuperStrength: 20,
		SuperDuration: 15,
	}

	Celebration = CelebrationConfig{
		Frames:    45,
		FromScale: 0.2,
		ToScale:   1,
		Color:     Gold,
	}
}
