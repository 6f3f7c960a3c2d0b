package config

import (
	_ "embed"

	"github.com/dermotk/heart-chase/internal/audio"
)

//go:embed defaults/heartchase.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when even the embedded
// YAML cannot be parsed.
func Default() Config {
	return Config{
		Timings: TimingsConfig{
			LoopYield:      20,
			MenuDebounce:   200,
			HeartDrift:     400,
			HeartStep:      3,
			EnemyDelayL1:   30,
			EnemyDelayL2:   65,
			LevelBannerMS:  2000,
			PickupToneMS:   500,
			PickupToneFreq: 500,
		},
		Input: InputConfig{
			HoldMS: 120,
		},
		Audio: AudioConfig{
			Enabled: true,
			Tune: TuneConfig{
				Notes:     []uint32{audio.NoteA3, audio.NoteC5, audio.NoteB2, audio.NoteD1, audio.NoteF6},
				Durations: []uint32{200, 300, 400, 100, 500},
			},
		},
	}
}
