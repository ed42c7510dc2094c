package tilegrid

// Offset coordinates address a hex grid as a rectangle: every other row (or
// column) is shifted by half a cell. The parity names say which rows or
// columns are shifted toward +x (or +y). Each type converts exactly to and
// from AxialPos using integer arithmetic only.

// RowOddPos addresses a pointy-top grid whose odd rows are shifted right.
type RowOddPos struct {
	X, Y int32
}

// RowEvenPos addresses a pointy-top grid whose even rows are shifted right.
type RowEvenPos struct {
	X, Y int32
}

// ColOddPos addresses a flat-top grid whose odd columns are shifted up.
type ColOddPos struct {
	X, Y int32
}

// ColEvenPos addresses a flat-top grid whose even columns are shifted up.
type ColEvenPos struct {
	X, Y int32
}

// Axial converts to axial coordinates.
func (p RowOddPos) Axial() AxialPos {
	return AxialPos{Q: p.X - (p.Y-(p.Y&1))/2, R: p.Y}
}

// RowOddPosFromAxial converts from axial coordinates.
func RowOddPosFromAxial(a AxialPos) RowOddPos {
	return RowOddPos{X: a.Q + (a.R-(a.R&1))/2, Y: a.R}
}

// Axial converts to axial coordinates.
func (p RowEvenPos) Axial() AxialPos {
	return AxialPos{Q: p.X - (p.Y+(p.Y&1))/2, R: p.Y}
}

// RowEvenPosFromAxial converts from axial coordinates.
func RowEvenPosFromAxial(a AxialPos) RowEvenPos {
	return RowEvenPos{X: a.Q + (a.R+(a.R&1))/2, Y: a.R}
}

// Axial converts to axial coordinates.
func (p ColOddPos) Axial() AxialPos {
	return AxialPos{Q: p.X, R: p.Y - (p.X-(p.X&1))/2}
}

// ColOddPosFromAxial converts from axial coordinates.
func ColOddPosFromAxial(a AxialPos) ColOddPos {
	return ColOddPos{X: a.Q, Y: a.R + (a.Q-(a.Q&1))/2}
}

// Axial converts to axial coordinates.
func (p ColEvenPos) Axial() AxialPos {
	return AxialPos{Q: p.X, R: p.Y - (p.X+(p.X&1))/2}
}

// ColEvenPosFromAxial converts from axial coordinates.
func ColEvenPosFromAxial(a AxialPos) ColEvenPos {
	return ColEvenPos{X: a.Q, Y: a.R + (a.Q+(a.Q&1))/2}
}

// CenterInWorld returns the center of the hex in world space.
func (p RowOddPos) CenterInWorld(grid GridSize) Vec2 { return p.Axial().CenterInWorldRow(grid) }

// CenterInWorld returns the center of the hex in world space.
func (p RowEvenPos) CenterInWorld(grid GridSize) Vec2 { return p.Axial().CenterInWorldRow(grid) }

// CenterInWorld returns the center of the hex in world space.
func (p ColOddPos) CenterInWorld(grid GridSize) Vec2 { return p.Axial().CenterInWorldCol(grid) }

// CenterInWorld returns the center of the hex in world space.
func (p ColEvenPos) CenterInWorld(grid GridSize) Vec2 { return p.Axial().CenterInWorldCol(grid) }

// RowOddPosFromWorld returns the hex containing the world position.
func RowOddPosFromWorld(world Vec2, grid GridSize) RowOddPos {
	return RowOddPosFromAxial(AxialFromWorldRow(world, grid))
}

// RowEvenPosFromWorld returns the hex containing the world position.
func RowEvenPosFromWorld(world Vec2, grid GridSize) RowEvenPos {
	return RowEvenPosFromAxial(AxialFromWorldRow(world, grid))
}

// ColOddPosFromWorld returns the hex containing the world position.
func ColOddPosFromWorld(world Vec2, grid GridSize) ColOddPos {
	return ColOddPosFromAxial(AxialFromWorldCol(world, grid))
}

// ColEvenPosFromWorld returns the hex containing the world position.
func ColEvenPosFromWorld(world Vec2, grid GridSize) ColEvenPos {
	return ColEvenPosFromAxial(AxialFromWorldCol(world, grid))
}

// AsTilePos converts to a TilePos, reporting false if p falls outside size.
func (p RowOddPos) AsTilePos(size MapSize) (TilePos, bool) { return TilePosFromInts(p.X, p.Y, size) }

// AsTilePos converts to a TilePos, reporting false if p falls outside size.
func (p RowEvenPos) AsTilePos(size MapSize) (TilePos, bool) { return TilePosFromInts(p.X, p.Y, size) }

// AsTilePos converts to a TilePos, reporting false if p falls outside size.
func (p ColOddPos) AsTilePos(size MapSize) (TilePos, bool) { return TilePosFromInts(p.X, p.Y, size) }

// AsTilePos converts to a TilePos, reporting false if p falls outside size.
func (p ColEvenPos) AsTilePos(size MapSize) (TilePos, bool) { return TilePosFromInts(p.X, p.Y, size) }
