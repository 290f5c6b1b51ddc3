// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrUnknownMode     = errors.New("unknown mode")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Front-ends the process can drive the game with.
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// Player layouts. Solo keeps only the left paddle.
const (
	ModeDuel = "duel"
	ModeSolo = "solo"
)

// EnvPrefix prefixes every environment override read by LoadConfig.
const EnvPrefix = "PONGDUEL_"

// Config holds the process settings. Game rules are not part of it, see Rules.
type Config struct {
	// Presentation
	Frontend  string `json:"frontend" toml:"frontend"`   // "terminal" or "window"
	Mode      string `json:"mode" toml:"mode"`           // "duel" or "solo"
	TargetFPS int    `json:"targetFps" toml:"targetFps"` // Frame ticks per second

	// Terminal input
	KeyHoldWindow time.Duration `json:"keyHoldWindow" toml:"keyHoldWindow"` // How long a key counts as held after its last event

	// Audio
	AudioEnabled bool    `json:"audioEnabled" toml:"audioEnabled"`
	Volume       float64 `json:"volume" toml:"volume"`             // 0 mutes, 1 is unity gain
	HitSound     string  `json:"hitSound" toml:"hitSound"`         // Optional WAV file, synthesized tone when empty
	ScoreSound   string  `json:"scoreSound" toml:"scoreSound"`     // Optional WAV file
	GameEndSound string  `json:"gameEndSound" toml:"gameEndSound"` // Optional WAV file

	// Spectators
	SpectatorAddr string `json:"spectatorAddr" toml:"spectatorAddr"` // Listen address, empty disables the feed
	SpectatorRate int    `json:"spectatorRate" toml:"spectatorRate"` // Frames pushed to spectators per second

	// Logging
	LogFile string `json:"logFile" toml:"logFile"` // "-" logs to stderr, empty discards
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		Frontend:  FrontendTerminal,
		Mode:      ModeDuel,
		TargetFPS: 60,

		KeyHoldWindow: 180 * time.Millisecond,

		AudioEnabled: true,
		Volume:       0.35,

		SpectatorAddr: "",
		SpectatorRate: 20,

		LogFile: "pongduel.log",
	}
}

// FramePeriod is the interval between frame ticks.
func (c Config) FramePeriod() time.Duration {
	return time.Second / time.Duration(c.TargetFPS)
}

// Validate checks the values LoadConfig cannot sanitize on its own.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}
	switch c.Mode {
	case ModeDuel, ModeSolo:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("%w: targetFps must be positive, got %d", ErrInvalidConfig, c.TargetFPS)
	}
	if c.KeyHoldWindow <= 0 {
		return fmt.Errorf("%w: keyHoldWindow must be positive, got %s", ErrInvalidConfig, c.KeyHoldWindow)
	}
	if c.Volume < 0 {
		return fmt.Errorf("%w: volume must not be negative, got %v", ErrInvalidConfig, c.Volume)
	}
	if c.SpectatorAddr != "" && c.SpectatorRate <= 0 {
		return fmt.Errorf("%w: spectatorRate must be positive, got %d", ErrInvalidConfig, c.SpectatorRate)
	}
	return nil
}

// LoadConfig layers, in order: defaults, a .env file in the working
// directory, the TOML file at path (skipped when empty) and PONGDUEL_*
// environment variables. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := lookupEnv("FRONTEND"); ok {
		cfg.Frontend = strings.ToLower(v)
	}
	if v, ok := lookupEnv("MODE"); ok {
		cfg.Mode = strings.ToLower(v)
	}
	if v, ok := lookupEnv("SPECTATOR_ADDR"); ok {
		cfg.SpectatorAddr = v
	}
	if v, ok := lookupEnv("LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := lookupEnv("AUDIO"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sAUDIO: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		cfg.AudioEnabled = enabled
	}
	if v, ok := lookupEnv("VOLUME"); ok {
		volume, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %sVOLUME: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		cfg.Volume = volume
	}
	if v, ok := lookupEnv("FPS"); ok {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sFPS: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		cfg.TargetFPS = fps
	}
	return nil
}

func lookupEnv(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}
