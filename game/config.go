package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigEnvVar names the environment variable consulted for the config path
// when no path is given on the command line.
const ConfigEnvVar = "SPACESHOOTER_CONFIG"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration
type Config struct {
	// Seed for the random source, 0 means seeded from the clock
	Seed uint64 `toml:"seed"`

	// Screen is the logical resolution the game simulates in
	Screen ScreenConfig `toml:"screen"`

	// Window is the initial desktop window size
	Window WindowConfig `toml:"window"`

	Render  RenderConfig  `toml:"render"`
	Loop    LoopConfig    `toml:"loop"`
	Audio   AudioConfig   `toml:"audio"`
	Log     LogConfig     `toml:"log"`
	Profile ProfileConfig `toml:"profile"`
	Tuning  Tuning        `toml:"tuning"`
}

// ScreenConfig is the logical playfield size in pixels
type ScreenConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// WindowConfig holds desktop window settings
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// RenderConfig selects how ships are drawn
type RenderConfig struct {
	// Style is "vector" or "sprite"
	Style string `toml:"style"`
}

// LoopConfig controls frame pacing
type LoopConfig struct {
	FPS int `toml:"fps"`

	// MaxDelta caps the seconds a single tick may simulate
	MaxDelta float64 `toml:"max_delta"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool `toml:"enabled"`

	// Volume is a base-2 exponent, 0 is unchanged, -1 is half
	Volume float64 `toml:"volume"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level string `toml:"level"`

	// File receives log output, empty means stderr
	File string `toml:"file"`
}

// ProfileConfig controls automatic profiling on frame overruns
type ProfileConfig struct {
	Enabled  bool     `toml:"enabled"`
	Dir      string   `toml:"dir"`
	Cooldown Duration `toml:"cooldown"`
	Duration Duration `toml:"duration"`
}

// Tuning holds the gameplay constants. It can be swapped at runtime.
type Tuning struct {
	PlayerSpeed       float64 `toml:"player_speed"`
	BulletSpeed       float64 `toml:"bullet_speed"`
	ShootInterval     float64 `toml:"shoot_interval"`
	SpawnInterval     float64 `toml:"spawn_interval"`
	MinSpawnInterval  float64 `toml:"min_spawn_interval"`
	SpawnStep         float64 `toml:"spawn_step"`
	EnemiesPerWave    int     `toml:"enemies_per_wave"`
	Lives             int     `toml:"lives"`
	KillScore         int     `toml:"kill_score"`
	EnemyBaseSpeed    float64 `toml:"enemy_base_speed"`
	EnemySpeedJitter  float64 `toml:"enemy_speed_jitter"`
	EnemyLateralSpeed float64 `toml:"enemy_lateral_speed"`
	EnemyHP           int     `toml:"enemy_hp"`
}

// Duration is a time.Duration that reads "10s" style strings from TOML
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultTuning returns the stock gameplay constants
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:       800.0,
		BulletSpeed:       900.0,
		ShootInterval:     0.15,
		SpawnInterval:     2.5,
		MinSpawnInterval:  1.5,
		SpawnStep:         0.15,
		EnemiesPerWave:    1,
		Lives:             3,
		KillScore:         10,
		EnemyBaseSpeed:    100.0,
		EnemySpeedJitter:  80.0,
		EnemyLateralSpeed: 50.0,
		EnemyHP:           1,
	}
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  1080,
			Height: 1920,
		},
		Window: WindowConfig{
			Width:  540,
			Height: 960,
			Title:  "Space Shooter",
		},
		Render: RenderConfig{Style: StyleVector},
		Loop: LoopConfig{
			FPS:      60,
			MaxDelta: 0.1,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1.0,
		},
		Log: LogConfig{Level: "info"},
		Profile: ProfileConfig{
			Dir:      "profiles",
			Cooldown: Duration{10 * time.Second}, // Don't capture more than once every 10 seconds
			Duration: Duration{5 * time.Second},
		},
		Tuning: DefaultTuning(),
	}
}

// LoadConfig reads a TOML file over the defaults. A missing file is not an
// error: the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigPath picks the flag value, then the environment, then nothing
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return GetEnv(ConfigEnvVar, "")
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Validate checks the config for values the game cannot run with
func (c Config) Validate() error {
	if c.Screen.Width < playerWidth || c.Screen.Height < playerHeight {
		return fmt.Errorf("%w: screen %dx%d smaller than the player ship", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	if c.Loop.FPS <= 0 {
		return fmt.Errorf("%w: loop.fps must be positive, got %d", ErrInvalidConfig, c.Loop.FPS)
	}
	if c.Loop.MaxDelta <= 0 {
		return fmt.Errorf("%w: loop.max_delta must be positive, got %v", ErrInvalidConfig, c.Loop.MaxDelta)
	}
	switch c.Render.Style {
	case StyleVector, StyleSprite:
	default:
		return fmt.Errorf("%w: unknown render.style %q", ErrInvalidConfig, c.Render.Style)
	}
	return c.Tuning.Validate()
}

// Validate checks that every tunable keeps the game playable
func (t Tuning) Validate() error {
	switch {
	case t.PlayerSpeed <= 0:
		return fmt.Errorf("%w: tuning.player_speed must be positive", ErrInvalidConfig)
	case t.BulletSpeed <= 0:
		return fmt.Errorf("%w: tuning.bullet_speed must be positive", ErrInvalidConfig)
	case t.ShootInterval <= 0:
		return fmt.Errorf("%w: tuning.shoot_interval must be positive", ErrInvalidConfig)
	case t.MinSpawnInterval <= 0 || t.SpawnInterval < t.MinSpawnInterval:
		return fmt.Errorf("%w: tuning.spawn_interval %v must be >= min_spawn_interval %v > 0",
			ErrInvalidConfig, t.SpawnInterval, t.MinSpawnInterval)
	case t.SpawnStep < 0:
		return fmt.Errorf("%w: tuning.spawn_step must not be negative", ErrInvalidConfig)
	case t.EnemiesPerWave <= 0:
		return fmt.Errorf("%w: tuning.enemies_per_wave must be positive", ErrInvalidConfig)
	case t.Lives <= 0:
		return fmt.Errorf("%w: tuning.lives must be positive", ErrInvalidConfig)
	case t.EnemyHP <= 0:
		return fmt.Errorf("%w: tuning.enemy_hp must be positive", ErrInvalidConfig)
	case t.EnemyBaseSpeed <= 0 || t.EnemySpeedJitter < 0 || t.EnemyLateralSpeed < 0:
		return fmt.Errorf("%w: enemy speeds must be positive", ErrInvalidConfig)
	}
	return nil
}

// FrameTime is the pacing budget of one tick
func (c Config) FrameTime() time.Duration {
	return time.Second / time.Duration(c.Loop.FPS)
}
