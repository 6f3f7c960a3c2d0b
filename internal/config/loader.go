package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.heartchase/configs/heartchase.yaml -> ./configs/heartchase.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("heartchase.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/heartchase.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultYAML); err == nil {
		return cfg, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

// parse decodes YAML over the defaults: keys absent from the document keep
// their default values, so a sparse file that never mentions the audio block
// still plays with sound on.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".heartchase", "configs", filename)
}

// normalize backfills zero timings and a broken tune from the defaults, so a
// sparse user config still produces a playable game.
func normalize(cfg Config) Config {
	def := Default()
	if cfg.Timings.LoopYield == 0 {
		cfg.Timings.LoopYield = def.Timings.LoopYield
	}
	if cfg.Timings.MenuDebounce == 0 {
		cfg.Timings.MenuDebounce = def.Timings.MenuDebounce
	}
	if cfg.Timings.HeartDrift == 0 {
		cfg.Timings.HeartDrift = def.Timings.HeartDrift
	}
	if cfg.Timings.HeartStep == 0 {
		cfg.Timings.HeartStep = def.Timings.HeartStep
	}
	if cfg.Timings.EnemyDelayL1 == 0 {
		cfg.Timings.EnemyDelayL1 = def.Timings.EnemyDelayL1
	}
	if cfg.Timings.EnemyDelayL2 == 0 {
		cfg.Timings.EnemyDelayL2 = def.Timings.EnemyDelayL2
	}
	if cfg.Timings.LevelBannerMS == 0 {
		cfg.Timings.LevelBannerMS = def.Timings.LevelBannerMS
	}
	if cfg.Timings.PickupToneMS == 0 {
		cfg.Timings.PickupToneMS = def.Timings.PickupToneMS
	}
	if cfg.Timings.PickupToneFreq == 0 {
		cfg.Timings.PickupToneFreq = def.Timings.PickupToneFreq
	}
	if cfg.Input.HoldMS == 0 {
		cfg.Input.HoldMS = def.Input.HoldMS
	}
	if !cfg.Audio.Tune.Valid() {
		cfg.Audio.Tune = def.Audio.Tune
	}
	return cfg
}
