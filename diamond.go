package tilegrid

// DiamondPos is a position on an isometric diamond grid. Its components are
// identical to the equivalent SquarePos; only the projection differs, with
// the x axis running down-right and the y axis up-right in world space.
type DiamondPos struct {
	X, Y int32
}

// NewDiamondPos returns the diamond position (x, y).
func NewDiamondPos(x, y int32) DiamondPos {
	return DiamondPos{X: x, Y: y}
}

// DiamondPosFromTilePos converts a tile position on a diamond map.
func DiamondPosFromTilePos(p TilePos) DiamondPos {
	return DiamondPos{X: int32(p.X), Y: int32(p.Y)}
}

// DiamondPosFromSquare converts a square position. This is the identity on
// components.
func DiamondPosFromSquare(p SquarePos) DiamondPos {
	return DiamondPos(p)
}

// Square returns the equivalent square position.
func (p DiamondPos) Square() SquarePos {
	return SquarePos(p)
}

// Add returns p+o.
func (p DiamondPos) Add(o DiamondPos) DiamondPos { return DiamondPos{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p DiamondPos) Sub(o DiamondPos) DiamondPos { return DiamondPos{p.X - o.X, p.Y - o.Y} }

// Scale returns p multiplied by k.
func (p DiamondPos) Scale(k int32) DiamondPos { return DiamondPos{k * p.X, k * p.Y} }

// ProjectDiamond projects a fractional diamond position into world space.
func ProjectDiamond(pos Vec2, grid GridSize) Vec2 {
	return transformPoint(diamondProjection(grid), pos)
}

// CenterInWorld returns the center of the tile in world space.
func (p DiamondPos) CenterInWorld(grid GridSize) Vec2 {
	return ProjectDiamond(Vec2{float32(p.X), float32(p.Y)}, grid)
}

// DiamondCornerOffsetInWorld returns the offset from a tile's center to its
// corner in the given diagonal direction. On a diamond grid the diagonal
// directions point at the left, right, top and bottom tips of the tile.
func DiamondCornerOffsetInWorld(corner SquareDirection, grid GridSize) Vec2 {
	off := SquareOffsets[corner]
	return ProjectDiamond(Vec2{0.5 * float32(off.X), 0.5 * float32(off.Y)}, grid)
}

// CornerInWorld returns the world position of the tile's corner in the
// given diagonal direction.
func (p DiamondPos) CornerInWorld(corner SquareDirection, grid GridSize) Vec2 {
	return p.CenterInWorld(grid).Add(DiamondCornerOffsetInWorld(corner, grid))
}

// diamondFracFromWorld applies the inverse diamond projection.
func diamondFracFromWorld(world Vec2, grid GridSize) Vec2 {
	return transformPoint(invertAffine(diamondProjection(grid)), world)
}

// DiamondPosFromWorld returns the diamond tile containing the world position.
func DiamondPosFromWorld(world Vec2, grid GridSize) DiamondPos {
	frac := diamondFracFromWorld(world, grid)
	return DiamondPos{X: roundHalfUp(frac.X), Y: roundHalfUp(frac.Y)}
}

// AsTilePos converts to a TilePos, reporting false if p has a negative
// component or lies outside size.
func (p DiamondPos) AsTilePos(size MapSize) (TilePos, bool) {
	return TilePosFromInts(p.X, p.Y, size)
}

// Offset returns the neighbor of p in the given direction.
func (p DiamondPos) Offset(dir SquareDirection) DiamondPos {
	return DiamondPosFromSquare(p.Square().Offset(dir))
}

// DiamondOffset returns the neighbor of p in the given direction on a
// diamond map, reporting false if it falls off the map.
func (p TilePos) DiamondOffset(dir SquareDirection, size MapSize) (TilePos, bool) {
	return DiamondPosFromTilePos(p).Offset(dir).AsTilePos(size)
}
