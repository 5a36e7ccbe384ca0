package patchgl

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RunConfig configures Run. Zero fields take their defaults.
type RunConfig struct {
	// Title is the window title. Default "patchgl".
	Title string `yaml:"title"`
	// Width and Height are the initial window size in pixels. Default 640x480.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Debug enables per-cycle timing logs on stderr.
	Debug bool `yaml:"debug"`
	// ShowFPS draws the FPS/TPS overlay.
	ShowFPS bool `yaml:"show_fps"`
	// FontSize is the reference size of the bundled TrueType font. Zero
	// keeps the 7x13 bitmap face, and text is measured to match it.
	FontSize float64 `yaml:"font_size"`
	// Background is the clear color as "#rrggbb" or "#rrggbbaa". Default white.
	Background string `yaml:"background"`
	// TestScript is the path of an input script to replay on the screen.
	// See LoadTestScript.
	TestScript string `yaml:"test_script"`
}

// Defaults for RunConfig.
const (
	DefaultTitle  = "patchgl"
	DefaultWidth  = 640
	DefaultHeight = 480
)

// WithDefaults returns c with every zero field replaced by its default.
func (c RunConfig) WithDefaults() RunConfig {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Background == "" {
		c.Background = "#ffffff"
	}
	return c
}

// BackgroundColor parses Background.
func (c RunConfig) BackgroundColor() (Color, error) {
	if c.Background == "" {
		return ColorWhite, nil
	}
	return ParseHexColor(c.Background)
}

// LoadRunConfig parses a YAML run configuration and applies defaults.
func LoadRunConfig(data []byte) (RunConfig, error) {
	var c RunConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return RunConfig{}, fmt.Errorf("patchgl: parse run config: %w", err)
	}
	c = c.WithDefaults()
	if _, err := c.BackgroundColor(); err != nil {
		return RunConfig{}, fmt.Errorf("patchgl: parse run config: %w", err)
	}
	if c.FontSize < 0 {
		return RunConfig{}, fmt.Errorf("patchgl: parse run config: negative font_size %v", c.FontSize)
	}
	return c, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
