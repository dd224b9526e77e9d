package core

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hubastard/grove/engine/colors"
	"github.com/hubastard/grove/engine/ui"
)

// Config for the engine run.
type Config struct {
	Title           string       `toml:"title"`
	Width           int          `toml:"width"`
	Height          int          `toml:"height"`
	VSync           bool         `toml:"vsync"`
	TargetFPS       int          `toml:"target_fps"` // 0 disables throttling
	ClearColor      colors.Color `toml:"clear_color"`
	FontPath        string       `toml:"font_path"` // empty uses the built-in bitmap face
	FontSize        float64      `toml:"font_size"`
	ScratchCapacity int          `toml:"scratch_capacity"`
	UI              UIConfig     `toml:"ui"`
}

// UIConfig mirrors ui.Options in a file-friendly shape.
type UIConfig struct {
	ButtonWidth  int    `toml:"button_width"`
	ButtonHeight int    `toml:"button_height"`
	Margin       [2]int `toml:"margin"`
	Padding      [2]int `toml:"padding"`
	MaxCommands  int    `toml:"max_commands"`
	MaxDepth     int    `toml:"max_depth"`
	StorageSize  int    `toml:"storage_size"`
	Debug        bool   `toml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Title:           "grove",
		Width:           1280,
		Height:          720,
		VSync:           true,
		TargetFPS:       60,
		ClearColor:      colors.DarkGray,
		FontSize:        16,
		ScratchCapacity: 4096,
		UI: UIConfig{
			ButtonWidth:  ui.DefaultButtonSize.X,
			ButtonHeight: ui.DefaultButtonSize.Y,
			Margin:       [2]int{4, 4},
			Padding:      [2]int{8, 8},
			MaxCommands:  ui.DefaultMaxCommands,
			MaxDepth:     ui.DefaultMaxDepth,
			StorageSize:  ui.DefaultStorageSize,
		},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if err := DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DecodeFile overlays the TOML file at path onto cfg and validates the result.
func DecodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("load config %q: %w", path, err)
	}
	return finishConfig(*cfg, md)
}

// ParseConfig is LoadConfig for in-memory TOML.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, finishConfig(cfg, md)
}

var ErrInvalidConfig = errors.New("invalid config")

func finishConfig(cfg Config, md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(names, ", "))
	}
	return cfg.Validate()
}

// Validate rejects sizes the UI core would treat as fatal later.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.TargetFPS < 0:
		return fmt.Errorf("%w: target_fps %d", ErrInvalidConfig, c.TargetFPS)
	case c.UI.MaxCommands < 0 || c.UI.MaxDepth < 0 || c.UI.StorageSize < 0:
		return fmt.Errorf("%w: negative ui capacity", ErrInvalidConfig)
	case c.UI.ButtonWidth < 0 || c.UI.ButtonHeight < 0:
		return fmt.Errorf("%w: negative button size", ErrInvalidConfig)
	}
	return nil
}

// UIOptions builds the options for the frame driver's ui.Ctx.
func (c Config) UIOptions(logger *slog.Logger) ui.Options {
	return ui.Options{
		MaxCommands: c.UI.MaxCommands,
		MaxDepth:    c.UI.MaxDepth,
		StorageSize: c.UI.StorageSize,
		ButtonSize:  ui.Pt(c.UI.ButtonWidth, c.UI.ButtonHeight),
		Margin:      ui.Pt(c.UI.Margin[0], c.UI.Margin[1]),
		Padding:     ui.Pt(c.UI.Padding[0], c.UI.Padding[1]),
		Debug:       c.UI.Debug,
		Logger:      logger,
	}
}
