package tilegrid

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned (wrapped) by config parsing and validation.
var (
	ErrInvalidMapSize  = errors.New("invalid map size")
	ErrInvalidGridSize = errors.New("invalid grid size")
	ErrInvalidTileSize = errors.New("invalid tile size")
	ErrUnknownMapType  = errors.New("unknown map type")
	ErrUnknownAnchor   = errors.New("unknown anchor")
)

// SizeConfig is a width/height pair as it appears in YAML.
type SizeConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// MapConfig describes a tilemap's geometry in YAML:
//
//	size: {x: 20, y: 12}
//	grid_size: {x: 32, y: 32}
//	tile_size: {x: 32, y: 48}   # optional, defaults to grid_size
//	type: hex_row_odd
//	anchor: center              # preset name or {x: -0.25, y: 0}
type MapConfig struct {
	Size     MapSize     `yaml:"size"`
	GridSize SizeConfig  `yaml:"grid_size"`
	TileSize *SizeConfig `yaml:"tile_size,omitempty"`
	Type     MapType     `yaml:"type"`
	Anchor   Anchor      `yaml:"anchor"`
}

// ParseMapConfig decodes and validates a YAML map config.
func ParseMapConfig(data []byte) (*MapConfig, error) {
	var cfg MapConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("tilegrid: parse map config: %w", err)
	}
	if cfg.TileSize == nil {
		debugf("map config has no tile_size, using grid_size %gx%g", cfg.GridSize.X, cfg.GridSize.Y)
		ts := cfg.GridSize
		cfg.TileSize = &ts
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMapConfig reads and parses a YAML map config file.
func LoadMapConfig(path string) (*MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tilegrid: read map config: %w", err)
	}
	return ParseMapConfig(data)
}

// Validate rejects configs the projections cannot handle: an empty map or
// cell sizes that are not positive (NaN included).
func (c *MapConfig) Validate() error {
	if c.Size.X == 0 || c.Size.Y == 0 {
		return fmt.Errorf("tilegrid: %w: %dx%d", ErrInvalidMapSize, c.Size.X, c.Size.Y)
	}
	if !(c.GridSize.X > 0) || !(c.GridSize.Y > 0) {
		return fmt.Errorf("tilegrid: %w: %gx%g", ErrInvalidGridSize, c.GridSize.X, c.GridSize.Y)
	}
	if c.TileSize != nil && (!(c.TileSize.X > 0) || !(c.TileSize.Y > 0)) {
		return fmt.Errorf("tilegrid: %w: %gx%g", ErrInvalidTileSize, c.TileSize.X, c.TileSize.Y)
	}
	return nil
}

// Map builds a Map from the config.
func (c *MapConfig) Map() *Map {
	tile := TileSize(c.GridSize)
	if c.TileSize != nil {
		tile = TileSize(*c.TileSize)
	}
	return NewMap(c.Size, GridSize(c.GridSize), tile, c.Type, c.Anchor)
}

// Marshal encodes the config back to YAML.
func (c *MapConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("tilegrid: marshal map config: %w", err)
	}
	return data, nil
}
