package tilegrid

// SquareDirection names the eight neighbors of a cell on a square grid,
// counter-clockwise starting from East.
type SquareDirection uint8

const (
	SquareEast      SquareDirection = iota // +x
	SquareNorthEast                        // +x +y
	SquareNorth                            // +y
	SquareNorthWest                        // -x +y
	SquareWest                             // -x
	SquareSouthWest                        // -x -y
	SquareSouth                            // -y
	SquareSouthEast                        // +x -y
)

// SquareDirections lists every SquareDirection in order.
var SquareDirections = [8]SquareDirection{
	SquareEast, SquareNorthEast, SquareNorth, SquareNorthWest,
	SquareWest, SquareSouthWest, SquareSouth, SquareSouthEast,
}

// SquareOffsets holds the unit step for each SquareDirection.
var SquareOffsets = [8]SquarePos{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var squareDirectionNames = [8]string{
	"East", "NorthEast", "North", "NorthWest",
	"West", "SouthWest", "South", "SouthEast",
}

func (d SquareDirection) String() string {
	if int(d) < len(squareDirectionNames) {
		return squareDirectionNames[d]
	}
	return "SquareDirection(?)"
}

// IsDiagonal reports whether d is one of the four diagonal directions.
func (d SquareDirection) IsDiagonal() bool {
	return d%2 == 1
}

// Opposite returns the direction pointing the other way.
func (d SquareDirection) Opposite() SquareDirection {
	return (d + 4) % 8
}

// SquarePos is a position on a square grid. It is vector-like: positions
// can be added and subtracted, and scaled by an integer.
type SquarePos struct {
	X, Y int32
}

// NewSquarePos returns the square position (x, y).
func NewSquarePos(x, y int32) SquarePos {
	return SquarePos{X: x, Y: y}
}

// SquarePosFromTilePos converts a tile position on a square map.
func SquarePosFromTilePos(p TilePos) SquarePos {
	return SquarePos{X: int32(p.X), Y: int32(p.Y)}
}

// Add returns p+o.
func (p SquarePos) Add(o SquarePos) SquarePos { return SquarePos{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p SquarePos) Sub(o SquarePos) SquarePos { return SquarePos{p.X - o.X, p.Y - o.Y} }

// Scale returns p multiplied by k.
func (p SquarePos) Scale(k int32) SquarePos { return SquarePos{k * p.X, k * p.Y} }

// ProjectSquare projects a fractional square position into world space.
func ProjectSquare(pos Vec2, grid GridSize) Vec2 {
	return transformPoint(squareProjection(grid), pos)
}

// CenterInWorld returns the center of the tile in world space.
func (p SquarePos) CenterInWorld(grid GridSize) Vec2 {
	return ProjectSquare(Vec2{float32(p.X), float32(p.Y)}, grid)
}

// SquareCornerOffsetInWorld returns the offset from a tile's center to its
// corner in the given diagonal direction.
func SquareCornerOffsetInWorld(corner SquareDirection, grid GridSize) Vec2 {
	off := SquareOffsets[corner]
	return ProjectSquare(Vec2{0.5 * float32(off.X), 0.5 * float32(off.Y)}, grid)
}

// CornerInWorld returns the world position of the tile's corner in the
// given diagonal direction.
func (p SquarePos) CornerInWorld(corner SquareDirection, grid GridSize) Vec2 {
	off := SquareOffsets[corner]
	return ProjectSquare(Vec2{
		float32(p.X) + 0.5*float32(off.X),
		float32(p.Y) + 0.5*float32(off.Y),
	}, grid)
}

// SquarePosFromWorld returns the square tile containing the world position.
func SquarePosFromWorld(world Vec2, grid GridSize) SquarePos {
	frac := transformPoint(invertAffine(squareProjection(grid)), world)
	return SquarePos{X: roundHalfUp(frac.X), Y: roundHalfUp(frac.Y)}
}

// AsTilePos converts to a TilePos, reporting false if p has a negative
// component or lies outside size.
func (p SquarePos) AsTilePos(size MapSize) (TilePos, bool) {
	return TilePosFromInts(p.X, p.Y, size)
}

// Offset returns the neighbor of p in the given direction.
func (p SquarePos) Offset(dir SquareDirection) SquarePos {
	return p.Add(SquareOffsets[dir])
}

// SquareOffset returns the neighbor of p in the given direction on a
// square map, reporting false if it falls off the map.
func (p TilePos) SquareOffset(dir SquareDirection, size MapSize) (TilePos, bool) {
	return SquarePosFromTilePos(p).Offset(dir).AsTilePos(size)
}
