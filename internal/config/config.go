// Package config provides YAML-based configuration loading for the game
// timings, audio, and the background tune.
package config

// Config contains all tunable parameters for a game session.
type Config struct {
	Timings TimingsConfig `yaml:"timings"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
}

// TimingsConfig defines the pacing of the game loop and entity updates, all
// in milliseconds of clock time.
type TimingsConfig struct {
	LoopYield      uint32 `yaml:"loop_yield"`      // idle sleep per loop iteration
	MenuDebounce   uint32 `yaml:"menu_debounce"`   // minimum gap between menu moves
	HeartDrift     uint32 `yaml:"heart_drift"`     // interval between heart drift steps
	HeartStep      int    `yaml:"heart_step"`      // pixels per drift step
	EnemyDelayL1   uint32 `yaml:"enemy_delay_l1"`  // pursuit interval on level 1
	EnemyDelayL2   uint32 `yaml:"enemy_delay_l2"`  // pursuit interval on level 2
	LevelBannerMS  uint32 `yaml:"level_banner_ms"` // level transition banner hold
	PickupToneMS   uint32 `yaml:"pickup_tone_ms"`  // pickup chirp length
	PickupToneFreq uint32 `yaml:"pickup_tone_freq"`
}

// InputConfig defines how key presses map onto button lines.
type InputConfig struct {
	HoldMS uint32 `yaml:"hold_ms"` // how long one key press holds its button
}

// AudioConfig defines the tone output and the looping background tune.
type AudioConfig struct {
	Enabled bool       `yaml:"enabled"`
	Tune    TuneConfig `yaml:"tune"`
}

// TuneConfig is the background melody, parallel note/duration lists.
type TuneConfig struct {
	Notes     []uint32 `yaml:"notes"`     // frequencies in Hz, 0 is a rest
	Durations []uint32 `yaml:"durations"` // per-note lengths in ms
}

// Valid reports whether the tune lists pair up.
func (t TuneConfig) Valid() bool {
	return len(t.Notes) > 0 && len(t.Notes) == len(t.Durations)
}
