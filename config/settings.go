package config

import "time"

// SettingsConfig holds defaults for player settings that persist between runs
type SettingsConfig struct {
	Haptics    bool
	ShowTrails bool

	SkillVibration     time.Duration // short buzz when a skill fires
	GoalVibration      time.Duration // long buzz on a goal
	SaveVibration      time.Duration
	VibrationMagnitude float64 // 0..1
	StorageKey         string
	AppName            string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Haptics:            true,
		ShowTrails:         true,
		SkillVibration:     15 * time.Millisecond,
		GoalVibration:      400 * time.Millisecond,
		SaveVibration:      30 * time.Millisecond,
		VibrationMagnitude: 0.8,
		StorageKey:         "settings",
		AppName:            "superkick",
	}
}
