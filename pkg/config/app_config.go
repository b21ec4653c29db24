package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig is the runtime configuration read from data/valentine.yaml.
type AppConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Audio   AudioConfig   `yaml:"audio"`
	Effects EffectsConfig `yaml:"effects"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// WindowConfig sizes the window; the logical screen matches it.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AudioConfig controls synthesized sound playback.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"musicVolume"` // 0..1
	SoundVolume float64 `yaml:"soundVolume"` // 0..1
	SampleRate  int     `yaml:"sampleRate"`  // 44100 or 48000
}

// EffectsConfig switches decorative effects on or off.
type EffectsConfig struct {
	Ambient     bool `yaml:"ambient"`     // floating hearts and sparkles
	CursorTrail bool `yaml:"cursorTrail"` // hearts behind the pointer
}

// AssetsConfig locates optional image files.
type AssetsConfig struct {
	ChocolateImage string `yaml:"chocolateImage"`
}

// DefaultAppConfig returns the configuration used when no file overrides it.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: DefaultMusicVolume,
			SoundVolume: DefaultSoundVolume,
			SampleRate:  DefaultSampleRate,
		},
		Effects: EffectsConfig{
			Ambient:     true,
			CursorTrail: true,
		},
		Assets: AssetsConfig{
			ChocolateImage: DefaultChocolateImage,
		},
	}
}

// LoadAppConfig reads and validates the configuration file at path.
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseAppConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseAppConfig decodes YAML over the defaults, so keys missing from data
// keep their default values, then validates the result.
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := ValidateAppConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ValidateAppConfig rejects values the program cannot run with.
func ValidateAppConfig(cfg *AppConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Audio.MusicVolume < 0 || cfg.Audio.MusicVolume > 1 {
		return fmt.Errorf("audio.musicVolume must be between 0 and 1, got %v", cfg.Audio.MusicVolume)
	}
	if cfg.Audio.SoundVolume < 0 || cfg.Audio.SoundVolume > 1 {
		return fmt.Errorf("audio.soundVolume must be between 0 and 1, got %v", cfg.Audio.SoundVolume)
	}
	switch cfg.Audio.SampleRate {
	case 44100, 48000:
	default:
		return fmt.Errorf("audio.sampleRate must be 44100 or 48000, got %d", cfg.Audio.SampleRate)
	}
	return nil
}
