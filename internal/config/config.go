// Package config holds the settings of a deck2video run: which scenes to
// compose, where the assets live and how the video is encoded.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Title        string   `yaml:"title"`
	Assets       string   `yaml:"assets"`
	Scenes       []string `yaml:"scenes"` // Empty means the registry's default order
	OutputVideo  string   `yaml:"output"`
	TimelinePath string   `yaml:"timeline"`

	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	FPS            int     `yaml:"fps"`
	Workers        int     `yaml:"workers"` // 0 means sized from CPU and memory
	FadeDuration   float64 `yaml:"fade"`
	TransitionType string  `yaml:"transition"`
	ZoomMode       string  `yaml:"zoom_mode"`
	ZoomSpeed      float64 `yaml:"zoom_speed"`
	Background     string  `yaml:"background"` // #rrggbb
	MinSlide       float64 `yaml:"min_slide"`  // Shortest slide in seconds
	AudioPath      string  `yaml:"audio"`
	AudioSync      bool    `yaml:"audio_sync"`
	Preset         string  `yaml:"preset"`
	Quality        int     `yaml:"quality"` // 0 means chosen by encoder
	ShowStats      bool    `yaml:"stats"`

	// Заполняются во время работы, в файле не хранятся.
	VideoEncoder   string    `yaml:"-"`
	BuildVersion   string    `yaml:"-"`
	TotalDuration  float64   `yaml:"-"`
	SlideDurations []float64 `yaml:"-"`
}

// SegmentParams describes one encoded slide.
type SegmentParams struct {
	Width, Height int
	FPS           int
	Duration      float64
	ZoomMode      string
	ZoomSpeed     float64
	FadeDuration  float64
	SlideIndex    int
}

var transitions = map[string]bool{
	"none": true, "fade": true, "wipeleft": true, "wiperight": true, "slideup": true,
	"slideleft": true, "pixelize": true, "circlecrop": true, "dissolve": true,
}

var zoomModes = map[string]bool{
	"none": true, "center": true, "top-left": true, "top-right": true,
	"bottom-left": true, "bottom-right": true, "random": true,
}

// Default returns the settings used when neither a file nor flags say otherwise.
func Default() *Config {
	return &Config{
		Title:          "deck",
		Assets:         "assets",
		Width:          1280,
		Height:         720,
		FPS:            30,
		FadeDuration:   0.5,
		TransitionType: "fade",
		ZoomMode:       "none",
		ZoomSpeed:      0.001,
		Background:     "#000000",
		MinSlide:       1.0,
		AudioSync:      true,
	}
}

// Load reads a YAML deck file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("разбор %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyPreset overrides the frame size with a named aspect preset.
func (c *Config) ApplyPreset() error {
	switch c.Preset {
	case "":
	case "16:9":
		c.Width, c.Height = 1280, 720
	case "9:16":
		c.Width, c.Height = 720, 1280
	case "4:5":
		c.Width, c.Height = 1080, 1350
	default:
		return fmt.Errorf("неизвестный пресет %q (16:9, 9:16, 4:5)", c.Preset)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 || c.Width%2 != 0 || c.Height%2 != 0 {
		errs = append(errs, fmt.Errorf("размер кадра %dx%d: нужны положительные четные значения", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d: должно быть больше 0", c.FPS))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d: не может быть отрицательным", c.Workers))
	}
	if c.FadeDuration < 0 {
		errs = append(errs, fmt.Errorf("fade %.2f: не может быть отрицательным", c.FadeDuration))
	}
	if c.MinSlide <= 0 {
		errs = append(errs, fmt.Errorf("min_slide %.2f: должно быть больше 0", c.MinSlide))
	}
	if !transitions[strings.ToLower(c.TransitionType)] {
		errs = append(errs, fmt.Errorf("неизвестный переход %q", c.TransitionType))
	}
	if !zoomModes[strings.ToLower(c.ZoomMode)] {
		errs = append(errs, fmt.Errorf("неизвестный режим зума %q", c.ZoomMode))
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// BackgroundColor parses Background.
func (c *Config) BackgroundColor() (color.RGBA, error) {
	var r, g, b uint8
	if len(c.Background) != 7 || c.Background[0] != '#' {
		return color.RGBA{}, fmt.Errorf("цвет фона %q: ожидается #rrggbb", c.Background)
	}
	if _, err := fmt.Sscanf(c.Background[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("цвет фона %q: %w", c.Background, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// HasTransitions reports whether slides are joined with xfade.
func (c *Config) HasTransitions() bool {
	t := strings.ToLower(c.TransitionType)
	return t != "" && t != "none"
}
