package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reelforge/reelforge/internal/compositor"
	"github.com/reelforge/reelforge/internal/segment"
)

// Config holds the editor defaults that can be overridden from a YAML
// file. Everything has a working default; the file is optional.
type Config struct {
	// address the editor server listens on
	ListenAddr string `yaml:"listen_addr"`

	// overlay surface dimensions
	Overlay struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"overlay"`

	// style applied to segments created from a transcript or by hand;
	// nil keeps the built-in default
	DefaultStyle *segment.Style `yaml:"default_style"`
}

func Default() *Config {
	c := &Config{}
	c.ListenAddr = "127.0.0.1:8750"
	c.Overlay.Width = compositor.DefaultWidth
	c.Overlay.Height = compositor.DefaultHeight
	return c
}

// Load reads a YAML config over the defaults. A missing path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.Overlay.Width <= 0 || c.Overlay.Height <= 0 {
		return fmt.Errorf("overlay dimensions must be positive, got %dx%d", c.Overlay.Width, c.Overlay.Height)
	}
	if s := c.DefaultStyle; s != nil {
		if s.FontSize <= 0 {
			return fmt.Errorf("default_style.font_size must be positive")
		}
		if !s.TextAlign.Valid() {
			return fmt.Errorf("default_style.text_align must be left, center or right")
		}
	}
	return nil
}
