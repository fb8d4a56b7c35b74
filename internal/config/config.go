package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

const appName = "cinematv"

type Config struct {
	UI       UIConfig      `toml:"ui"`
	Images   ImagesConfig  `toml:"images"`
	Banner   BannerConfig  `toml:"banner"`
	Logging  LoggingConfig `toml:"logging"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	// DarkTheme is the theme at startup. Toggling it in Settings is not
	// written back.
	DarkTheme bool `toml:"dark_theme"`
}

type ImagesConfig struct {
	Remote        bool   `toml:"remote"`
	CacheDir      string `toml:"cache_dir"` // empty: under the config dir
	MemoryEntries int    `toml:"memory_entries"`
}

type BannerConfig struct {
	RotateSeconds float64 `toml:"rotate_seconds"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text or json
	File   string `toml:"file"`   // empty: stderr
}

type KeybindConfig struct {
	Search     string `toml:"search"`
	Settings   string `toml:"settings"`
	Home       string `toml:"home"`
	Fullscreen string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1920,
			Height:     1080,
			DarkTheme:  false,
		},
		Images: ImagesConfig{
			Remote:        true,
			MemoryEntries: 256,
		},
		Banner: BannerConfig{
			RotateSeconds: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Keybinds: KeybindConfig{
			Search:     "S",
			Settings:   "O",
			Home:       "H",
			Fullscreen: "F",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing default file yields the defaults; a missing explicit path
// is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logrus.WithField("key", key.String()).Warn("config: unknown key ignored")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, fmt.Errorf("ui size %dx%d must be positive", c.UI.Width, c.UI.Height))
	}
	if c.Images.MemoryEntries <= 0 {
		errs = append(errs, fmt.Errorf("images.memory_entries must be positive, got %d", c.Images.MemoryEntries))
	}
	if c.Banner.RotateSeconds <= 0 {
		errs = append(errs, fmt.Errorf("banner.rotate_seconds must be positive, got %v", c.Banner.RotateSeconds))
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// RotateEvery returns the banner rotation period.
func (c *Config) RotateEvery() time.Duration {
	return time.Duration(c.Banner.RotateSeconds * float64(time.Second))
}

// ImageCacheDir returns the disk cache directory for images.
func (c *Config) ImageCacheDir() (string, error) {
	if c.Images.CacheDir != "" {
		return c.Images.CacheDir, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache", "images"), nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
