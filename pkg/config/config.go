// Package config handles loading and saving podium configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/podium/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxRecent is how many recently presented decks are remembered.
const MaxRecent = 10

// TimerConfig holds presenter timer escalation thresholds.
type TimerConfig struct {
	Warning  time.Duration `yaml:"warning,omitempty"`  // Badge turns amber (default 15m)
	Critical time.Duration `yaml:"critical,omitempty"` // Badge turns red (default 18m)
}

// InputConfig tunes pointer handling.
type InputConfig struct {
	SwipeThreshold float64       `yaml:"swipe_threshold,omitempty"` // Points of horizontal travel (default 50)
	CellWidth      int           `yaml:"cell_width,omitempty"`      // Points per terminal column (default 8)
	CellHeight     int           `yaml:"cell_height,omitempty"`     // Points per terminal row (default 16)
	DoubleClick    time.Duration `yaml:"double_click,omitempty"`    // Max gap between clicks (default 400ms)
}

// KioskConfig controls unattended auto-advance.
type KioskConfig struct {
	Enabled  bool          `yaml:"enabled,omitempty"`
	Interval time.Duration `yaml:"interval,omitempty"` // default 30s
}

// UIConfig holds presentation chrome preferences.
type UIConfig struct {
	HideCounter   bool   `yaml:"hide_counter,omitempty"`
	HideProgress  bool   `yaml:"hide_progress,omitempty"`
	HideButtons   bool   `yaml:"hide_buttons,omitempty"`
	MarkdownStyle string `yaml:"markdown_style,omitempty"` // glamour style: auto, dark, light, notty
	Fullscreen    bool   `yaml:"fullscreen"`               // Start on the alternate screen
}

// Config is the top-level configuration for podium.
type Config struct {
	Timer  TimerConfig `yaml:"timer,omitempty"`
	Input  InputConfig `yaml:"input,omitempty"`
	Kiosk  KioskConfig `yaml:"kiosk,omitempty"`
	UI     UIConfig    `yaml:"ui,omitempty"`
	Recent []string    `yaml:"recent,omitempty"` // Most recent first
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timer: TimerConfig{
			Warning:  15 * time.Minute,
			Critical: 18 * time.Minute,
		},
		Input: InputConfig{
			SwipeThreshold: 50,
			CellWidth:      8,
			CellHeight:     16,
			DoubleClick:    400 * time.Millisecond,
		},
		Kiosk: KioskConfig{
			Interval: 30 * time.Second,
		},
		UI: UIConfig{
			MarkdownStyle: "auto",
			Fullscreen:    true,
		},
	}
}

// ConfigDir returns the XDG config directory for podium.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "podium")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "podium")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	for i := range cfg.Recent {
		cfg.Recent[i] = expandHome(cfg.Recent[i])
	}

	return cfg, nil
}

// normalize replaces zero or nonsensical values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Timer.Warning <= 0 {
		c.Timer.Warning = def.Timer.Warning
	}
	if c.Timer.Critical <= 0 {
		c.Timer.Critical = def.Timer.Critical
	}
	if c.Timer.Critical < c.Timer.Warning {
		c.Timer.Critical = c.Timer.Warning
	}
	if c.Input.SwipeThreshold <= 0 {
		c.Input.SwipeThreshold = def.Input.SwipeThreshold
	}
	if c.Input.CellWidth <= 0 {
		c.Input.CellWidth = def.Input.CellWidth
	}
	if c.Input.CellHeight <= 0 {
		c.Input.CellHeight = def.Input.CellHeight
	}
	if c.Input.DoubleClick <= 0 {
		c.Input.DoubleClick = def.Input.DoubleClick
	}
	if c.Kiosk.Interval <= 0 {
		c.Kiosk.Interval = def.Kiosk.Interval
	}
	if c.UI.MarkdownStyle == "" {
		c.UI.MarkdownStyle = def.UI.MarkdownStyle
	}
}

// ApplyEnv layers environment overrides on top of the file values.
// PODIUM_KIOSK accepts a boolean ("1", "true", "0", "off") or an
// interval such as "45s", which also enables kiosk mode.
func (c *Config) ApplyEnv() error {
	v := strings.TrimSpace(os.Getenv("PODIUM_KIOSK"))
	if v == "" {
		return nil
	}
	switch strings.ToLower(v) {
	case "on", "yes":
		c.Kiosk.Enabled = true
		return nil
	case "off", "no":
		c.Kiosk.Enabled = false
		return nil
	}
	if b, err := strconv.ParseBool(v); err == nil {
		c.Kiosk.Enabled = b
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("PODIUM_KIOSK: %q is neither a boolean nor a duration", v)
	}
	if d <= 0 {
		return fmt.Errorf("PODIUM_KIOSK: interval must be positive, got %s", v)
	}
	c.Kiosk.Enabled = true
	c.Kiosk.Interval = d
	return nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// AddRecent records deckPath as the most recently presented deck.
// Duplicates move to the front and the list is capped at MaxRecent.
func (c *Config) AddRecent(deckPath string) {
	if deckPath == "" {
		return
	}
	if abs, err := filepath.Abs(expandHome(deckPath)); err == nil {
		deckPath = abs
	}
	out := []string{deckPath}
	for _, p := range c.Recent {
		if p != deckPath {
			out = append(out, p)
		}
	}
	if len(out) > MaxRecent {
		out = out[:MaxRecent]
	}
	c.Recent = out
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
