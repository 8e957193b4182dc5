package palette

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ObjectStyle describes how an object number is drawn.
type ObjectStyle struct {
	Color  string `yaml:"color"`
	Height int    `yaml:"height"` // in cells, anchored at the bottom cell
}

// Config is the YAML description of a palette renderer.
type Config struct {
	CellSize       int                    `yaml:"cell_size"`
	Background     string                 `yaml:"background"`
	Blank          string                 `yaml:"blank"`
	ImpassableTint string                 `yaml:"impassable_tint"`
	Tiles          map[uint16]string      `yaml:"tiles"`
	Objects        map[uint16]ObjectStyle `yaml:"objects"`
}

func DefaultConfig() Config {
	return Config{
		CellSize:       32,
		Background:     "#202020",
		Blank:          "#00000000",
		ImpassableTint: "#c03030",
	}
}

// LoadConfig reads a YAML config. Fields missing from the file keep their
// defaults; an empty path returns DefaultConfig.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read palette config %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse palette config %s: %w", configPath, err)
	}
	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid palette config %s: %w", configPath, err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("invalid cell size: %d", c.CellSize)
	}
	for _, value := range []string{c.Background, c.Blank, c.ImpassableTint} {
		if _, err := ParseColor(value); err != nil {
			return err
		}
	}
	for number, value := range c.Tiles {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("tile %d: %w", number, err)
		}
	}
	for number, style := range c.Objects {
		if _, err := ParseColor(style.Color); err != nil {
			return fmt.Errorf("object %d: %w", number, err)
		}
		if style.Height < 0 {
			return fmt.Errorf("object %d: invalid height %d", number, style.Height)
		}
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(value string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(value, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", value)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
