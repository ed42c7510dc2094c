package tilegrid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Anchor positions a map relative to its world origin. The zero value,
// AnchorNone, leaves the center of tile (0, 0) at the origin. Any other
// anchor names a fractional point of the map's bounding box that is moved to
// the origin: (-0.5, -0.5) is the bottom-left corner, (0, 0) the center,
// (0.5, 0.5) the top-right corner.
type Anchor struct {
	fx, fy float32
	set    bool
}

// Anchor presets. All but AnchorNone are fractional points.
var (
	AnchorNone         = Anchor{}
	AnchorCenter       = AnchorCustom(0, 0)
	AnchorBottomLeft   = AnchorCustom(-0.5, -0.5)
	AnchorBottomCenter = AnchorCustom(0, -0.5)
	AnchorBottomRight  = AnchorCustom(0.5, -0.5)
	AnchorCenterLeft   = AnchorCustom(-0.5, 0)
	AnchorCenterRight  = AnchorCustom(0.5, 0)
	AnchorTopLeft      = AnchorCustom(-0.5, 0.5)
	AnchorTopCenter    = AnchorCustom(0, 0.5)
	AnchorTopRight     = AnchorCustom(0.5, 0.5)
)

// AnchorCustom returns an anchor at the fractional point (fx, fy) of the map,
// where (-0.5, 0.5) is the top-left corner and (0, 0) the center. Values
// outside [-0.5, 0.5] place the origin outside the map.
func AnchorCustom(fx, fy float32) Anchor {
	return Anchor{fx: fx, fy: fy, set: true}
}

// Point returns the fractional point of the anchor. It reports false for
// AnchorNone.
func (a Anchor) Point() (Vec2, bool) {
	return Vec2{a.fx, a.fy}, a.set
}

// Offset returns the translation that moves the map's anchor point to the
// world origin. It is added to every projected tile center.
func (a Anchor) Offset(size MapSize, grid GridSize, tile TileSize, mapType MapType) Vec2 {
	if !a.set {
		return Vec2{}
	}
	box := MapAABB(size, grid, tile, mapType)
	lo, hi := box.Min, box.Max
	return Vec2{
		X: (-0.5-a.fx)*(hi.X-lo.X) - lo.X,
		Y: (-0.5-a.fy)*(hi.Y-lo.Y) - lo.Y,
	}
}

var anchorPresets = []struct {
	name   string
	anchor Anchor
}{
	{"none", AnchorNone},
	{"center", AnchorCenter},
	{"bottom_left", AnchorBottomLeft},
	{"bottom_center", AnchorBottomCenter},
	{"bottom_right", AnchorBottomRight},
	{"center_left", AnchorCenterLeft},
	{"center_right", AnchorCenterRight},
	{"top_left", AnchorTopLeft},
	{"top_center", AnchorTopCenter},
	{"top_right", AnchorTopRight},
}

// ParseAnchor returns the preset with the given name, e.g. "top_left".
func ParseAnchor(name string) (Anchor, error) {
	for _, p := range anchorPresets {
		if p.name == name {
			return p.anchor, nil
		}
	}
	return Anchor{}, fmt.Errorf("tilegrid: %w: %q", ErrUnknownAnchor, name)
}

// String returns the preset name, or "custom(x, y)" for other points.
func (a Anchor) String() string {
	for _, p := range anchorPresets {
		if p.anchor == a {
			return p.name
		}
	}
	return fmt.Sprintf("custom(%g, %g)", a.fx, a.fy)
}

type anchorPoint struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// MarshalYAML encodes presets by name and custom anchors as {x, y}.
func (a Anchor) MarshalYAML() (any, error) {
	for _, p := range anchorPresets {
		if p.anchor == a {
			return p.name, nil
		}
	}
	return anchorPoint{X: a.fx, Y: a.fy}, nil
}

// UnmarshalYAML accepts a preset name or a {x, y} mapping.
func (a *Anchor) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseAnchor(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*a = parsed
		return nil
	case yaml.MappingNode:
		var pt anchorPoint
		if err := value.Decode(&pt); err != nil {
			return fmt.Errorf("tilegrid: decode anchor: %w", err)
		}
		*a = AnchorCustom(pt.X, pt.Y)
		return nil
	default:
		return fmt.Errorf("tilegrid: %w: line %d: expected name or {x, y}", ErrUnknownAnchor, value.Line)
	}
}

// MarshalYAML encodes the layout by name.
func (t MapType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML decodes a layout name such as "hex_row_odd".
func (t *MapType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("tilegrid: decode map type: %w", err)
	}
	parsed, err := ParseMapType(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}
