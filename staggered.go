package tilegrid

// StaggeredPos is a position on an isometric staggered grid. It is a shear
// of SquarePos: square.y = staggered.y + staggered.x, which keeps the map
// outline rectangular in world space.
type StaggeredPos struct {
	X, Y int32
}

// NewStaggeredPos returns the staggered position (x, y).
func NewStaggeredPos(x, y int32) StaggeredPos {
	return StaggeredPos{X: x, Y: y}
}

// StaggeredPosFromTilePos converts a tile position on a staggered map.
func StaggeredPosFromTilePos(p TilePos) StaggeredPos {
	return StaggeredPos{X: int32(p.X), Y: int32(p.Y)}
}

// StaggeredPosFromSquare converts a square position.
func StaggeredPosFromSquare(p SquarePos) StaggeredPos {
	return StaggeredPos{X: p.X, Y: p.Y - p.X}
}

// Square returns the equivalent square position.
func (p StaggeredPos) Square() SquarePos {
	return SquarePos{X: p.X, Y: p.Y + p.X}
}

// ProjectStaggered projects a fractional staggered position into world space.
func ProjectStaggered(pos Vec2, grid GridSize) Vec2 {
	return transformPoint(staggeredProjection(grid), pos)
}

// CenterInWorld returns the center of the tile in world space.
func (p StaggeredPos) CenterInWorld(grid GridSize) Vec2 {
	return ProjectStaggered(Vec2{float32(p.X), float32(p.Y)}, grid)
}

// StaggeredCornerOffsetInWorld returns the offset from a tile's center to its
// corner in the given diagonal direction. Staggered tiles share the diamond
// tile shape.
func StaggeredCornerOffsetInWorld(corner SquareDirection, grid GridSize) Vec2 {
	return DiamondCornerOffsetInWorld(corner, grid)
}

// CornerInWorld returns the world position of the tile's corner in the
// given diagonal direction.
func (p StaggeredPos) CornerInWorld(corner SquareDirection, grid GridSize) Vec2 {
	return p.CenterInWorld(grid).Add(StaggeredCornerOffsetInWorld(corner, grid))
}

// StaggeredPosFromWorld returns the staggered tile containing the world
// position. Rounding happens on the diamond lattice, then the shear is
// undone exactly.
func StaggeredPosFromWorld(world Vec2, grid GridSize) StaggeredPos {
	return StaggeredPosFromSquare(DiamondPosFromWorld(world, grid).Square())
}

// AsTilePos converts to a TilePos, reporting false if p has a negative
// component or lies outside size.
func (p StaggeredPos) AsTilePos(size MapSize) (TilePos, bool) {
	return TilePosFromInts(p.X, p.Y, size)
}

// Offset returns the neighbor of p in the given direction, following square
// adjacency through the shear.
func (p StaggeredPos) Offset(dir SquareDirection) StaggeredPos {
	return StaggeredPosFromSquare(p.Square().Offset(dir))
}

// StaggeredOffset returns the neighbor of p in the given direction on a
// staggered map, reporting false if it falls off the map.
func (p TilePos) StaggeredOffset(dir SquareDirection, size MapSize) (TilePos, bool) {
	return StaggeredPosFromTilePos(p).Offset(dir).AsTilePos(size)
}
