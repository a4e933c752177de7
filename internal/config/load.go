package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.NearPlane <= 0 || c.Graphics.FarPlane <= c.Graphics.NearPlane {
		errs = append(errs, fmt.Errorf("graphics: invalid clip planes near=%g far=%g", c.Graphics.NearPlane, c.Graphics.FarPlane))
	}
	if c.Terrain.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("terrain: tile_size must be positive, got %g", c.Terrain.TileSize))
	}
	if c.Terrain.Resolution == 1 || c.Terrain.Resolution < 0 {
		errs = append(errs, fmt.Errorf("terrain: resolution must be 0 or at least 2, got %d", c.Terrain.Resolution))
	}
	if len(c.Terrain.Grid) == 0 {
		errs = append(errs, errors.New("terrain: grid must list at least one tile"))
	}
	if c.Player.Gravity > 0 {
		errs = append(errs, fmt.Errorf("player: gravity must not be positive, got %g", c.Player.Gravity))
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		UserConfigPath(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Sannhet")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Sannhet")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "sannhet")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "sannhet")
	}
}

// loadFromFile merges a YAML file over the existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
