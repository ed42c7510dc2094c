package tilegrid

import "fmt"

// Vec2 is a 2D vector used for world positions, offsets, and sizes
// throughout the API. World space has its origin at the center of the
// bottom-left tile, with Y increasing upward.
type Vec2 struct {
	X, Y float32
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Min returns the componentwise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 { return Vec2{min(v.X, o.X), min(v.Y, o.Y)} }

// Max returns the componentwise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{max(v.X, o.X), max(v.Y, o.Y)} }

// Vec3 is a 3D vector. Only bounding boxes use the Z component.
type Vec3 struct {
	X, Y, Z float32
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max Vec3
}

// Size returns the extent of the box on each axis.
func (b AABB) Size() Vec3 {
	return Vec3{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return Vec3{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2, (b.Min.Z + b.Max.Z) / 2}
}

// Translate returns the box moved by the given XY offset.
func (b AABB) Translate(offset Vec2) AABB {
	b.Min.X += offset.X
	b.Min.Y += offset.Y
	b.Max.X += offset.X
	b.Max.Y += offset.Y
	return b
}

// ContainsPoint reports whether the XY point p lies inside the box.
// Points on the edge are considered inside.
func (b AABB) ContainsPoint(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects reports whether b and other overlap on the XY plane.
// Boxes sharing only an edge are considered intersecting.
func (b AABB) Intersects(other AABB) bool {
	return b.Min.X <= other.Max.X &&
		b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y &&
		b.Max.Y >= other.Min.Y
}

// MapSize is the extent of a tilemap in tiles.
type MapSize struct {
	X, Y uint32
}

// Count returns the number of tiles in a map of this size.
func (s MapSize) Count() int {
	return int(s.X) * int(s.Y)
}

// GridSize is the size of one grid cell in world units. It controls the
// spacing between tile centers and is independent of the tile image size.
type GridSize struct {
	X, Y float32
}

// TileSize is the visual size of one tile in world units. Tiles may be
// larger than their grid cell, in which case neighbors overlap.
type TileSize struct {
	X, Y float32
}

// MapKind selects the family of tiling a map uses.
type MapKind uint8

const (
	KindSquare    MapKind = iota // orthogonal grid
	KindHexagon                  // hexagonal grid, see HexCoordSystem
	KindIsometric                // isometric square grid, see IsoCoordSystem
)

// HexCoordSystem selects how tile positions address a hexagonal grid.
type HexCoordSystem uint8

const (
	HexRowEven    HexCoordSystem = iota // pointy-top, even rows shifted right
	HexRowOdd                           // pointy-top, odd rows shifted right
	HexColumnEven                       // flat-top, even columns shifted up
	HexColumnOdd                        // flat-top, odd columns shifted up
	HexRow                              // pointy-top, axial addressing
	HexColumn                           // flat-top, axial addressing
)

// IsoCoordSystem selects how tile positions address an isometric grid.
type IsoCoordSystem uint8

const (
	IsoDiamond   IsoCoordSystem = iota // rows and columns run along the diamond's edges
	IsoStaggered                       // rows alternate, map outline stays rectangular
)

// MapType is the layout of a tilemap. It is a closed sum: Hex is meaningful
// only when Kind is KindHexagon and Iso only when Kind is KindIsometric.
type MapType struct {
	Kind MapKind
	Hex  HexCoordSystem
	Iso  IsoCoordSystem
}

// MapTypeSquare is the orthogonal square layout.
var MapTypeSquare = MapType{Kind: KindSquare}

// MapTypeHexagon returns a hexagonal layout using the given coordinate system.
func MapTypeHexagon(sys HexCoordSystem) MapType {
	return MapType{Kind: KindHexagon, Hex: sys}
}

// MapTypeIsometric returns an isometric layout using the given coordinate system.
func MapTypeIsometric(sys IsoCoordSystem) MapType {
	return MapType{Kind: KindIsometric, Iso: sys}
}

var hexSystemNames = [...]string{
	HexRowEven:    "hex_row_even",
	HexRowOdd:     "hex_row_odd",
	HexColumnEven: "hex_column_even",
	HexColumnOdd:  "hex_column_odd",
	HexRow:        "hex_row",
	HexColumn:     "hex_column",
}

var isoSystemNames = [...]string{
	IsoDiamond:   "iso_diamond",
	IsoStaggered: "iso_staggered",
}

// String returns the config name of the layout, e.g. "hex_row_odd".
func (t MapType) String() string {
	switch t.Kind {
	case KindSquare:
		return "square"
	case KindHexagon:
		if int(t.Hex) < len(hexSystemNames) {
			return hexSystemNames[t.Hex]
		}
	case KindIsometric:
		if int(t.Iso) < len(isoSystemNames) {
			return isoSystemNames[t.Iso]
		}
	}
	return fmt.Sprintf("MapType(%d,%d,%d)", t.Kind, t.Hex, t.Iso)
}

// ParseMapType parses a layout name as produced by MapType.String.
func ParseMapType(name string) (MapType, error) {
	if name == "square" {
		return MapTypeSquare, nil
	}
	for i, n := range hexSystemNames {
		if n == name {
			return MapTypeHexagon(HexCoordSystem(i)), nil
		}
	}
	for i, n := range isoSystemNames {
		if n == name {
			return MapTypeIsometric(IsoCoordSystem(i)), nil
		}
	}
	return MapType{}, fmt.Errorf("tilegrid: %w: %q", ErrUnknownMapType, name)
}
