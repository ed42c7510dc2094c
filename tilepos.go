package tilegrid

// TilePos is the position of a tile in the map grid. It is the external
// address of a cell; layout-specific math happens in the native position
// types (SquarePos, AxialPos, DiamondPos, ...).
type TilePos struct {
	X, Y uint32
}

// NewTilePos returns the tile position (x, y).
func NewTilePos(x, y uint32) TilePos {
	return TilePos{X: x, Y: y}
}

// ToIndex converts the position into an index in a row-major flattened
// slice, assuming the position lies in a map of the given size.
func (p TilePos) ToIndex(size MapSize) int {
	return int(p.Y)*int(size.X) + int(p.X)
}

// WithinMapBounds reports whether p lies inside a map of the given size.
func (p TilePos) WithinMapBounds(size MapSize) bool {
	return p.X < size.X && p.Y < size.Y
}

// Vec2 returns the position as a world-space vector without any projection.
func (p TilePos) Vec2() Vec2 {
	return Vec2{float32(p.X), float32(p.Y)}
}

// TilePosFromInts converts a signed pair into a TilePos. It reports false
// if either component is negative or lies outside size.
func TilePosFromInts(x, y int32, size MapSize) (TilePos, bool) {
	if x < 0 || y < 0 {
		return TilePos{}, false
	}
	p := TilePos{X: uint32(x), Y: uint32(y)}
	if !p.WithinMapBounds(size) {
		return TilePos{}, false
	}
	return p, true
}
