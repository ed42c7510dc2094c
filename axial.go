package tilegrid

// AxialPos is a hex position in axial coordinates. It is vector-like and is
// the common currency of all hexagonal layouts: offset positions and tile
// positions convert to and from it given a HexCoordSystem.
//
// Under a row (pointy-top) projection the q axis points east and the r axis
// north-east; under a column (flat-top) projection q points north-east and
// r north.
type AxialPos struct {
	Q, R int32
}

// NewAxialPos returns the axial position (q, r).
func NewAxialPos(q, r int32) AxialPos {
	return AxialPos{Q: q, R: r}
}

// Cube returns the position in cube coordinates.
func (a AxialPos) Cube() CubePos {
	return CubePos{Q: a.Q, R: a.R, S: -a.Q - a.R}
}

// Add returns a+o.
func (a AxialPos) Add(o AxialPos) AxialPos { return AxialPos{a.Q + o.Q, a.R + o.R} }

// Sub returns a-o.
func (a AxialPos) Sub(o AxialPos) AxialPos { return AxialPos{a.Q - o.Q, a.R - o.R} }

// Scale returns a multiplied by k.
func (a AxialPos) Scale(k int32) AxialPos { return AxialPos{k * a.Q, k * a.R} }

// Magnitude returns the hex distance from the origin.
func (a AxialPos) Magnitude() int32 {
	return a.Cube().Magnitude()
}

// DistanceFrom returns the hex distance between a and o.
func (a AxialPos) DistanceFrom(o AxialPos) int32 {
	return a.Sub(o).Magnitude()
}

// Offset returns the neighbor of a in the given direction.
func (a AxialPos) Offset(dir HexDirection) AxialPos {
	return a.Add(HexOffsets[dir.normalize()])
}

// RotateAroundRight rotates a by 60 degrees clockwise around center.
func (a AxialPos) RotateAroundRight(center AxialPos) AxialPos {
	return a.Sub(center).Cube().RotateRight().Axial().Add(center)
}

// RotateAroundLeft rotates a by 60 degrees counter-clockwise around center.
func (a AxialPos) RotateAroundLeft(center AxialPos) AxialPos {
	return a.Sub(center).Cube().RotateLeft().Axial().Add(center)
}

// FractionalAxialPos is a continuous axial position.
type FractionalAxialPos struct {
	Q, R float32
}

// Cube returns the position in fractional cube coordinates.
func (f FractionalAxialPos) Cube() FractionalCubePos {
	return FractionalCubePos{Q: f.Q, R: f.R, S: -f.Q - f.R}
}

// Round snaps the position to the nearest hex using cube rounding.
func (f FractionalAxialPos) Round() AxialPos {
	return f.Cube().Round().Axial()
}

// ProjectRow projects a fractional axial position on a pointy-top grid into
// world space.
func ProjectRow(pos Vec2, grid GridSize) Vec2 {
	return transformPoint(rowProjection(grid), pos)
}

// ProjectCol projects a fractional axial position on a flat-top grid into
// world space.
func ProjectCol(pos Vec2, grid GridSize) Vec2 {
	return transformPoint(colProjection(grid), pos)
}

func (a AxialPos) vec2() Vec2 {
	return Vec2{float32(a.Q), float32(a.R)}
}

// CenterInWorldRow returns the center of the hex in world space on a
// pointy-top grid.
func (a AxialPos) CenterInWorldRow(grid GridSize) Vec2 {
	return ProjectRow(a.vec2(), grid)
}

// CenterInWorldCol returns the center of the hex in world space on a
// flat-top grid.
func (a AxialPos) CenterInWorldCol(grid GridSize) Vec2 {
	return ProjectCol(a.vec2(), grid)
}

// cornerBetween returns the fractional axial position of the hex corner
// shared by the neighbors in directions d and d+1.
func cornerBetween(d HexDirection) Vec2 {
	a := HexOffsets[d.normalize()]
	b := HexOffsets[(d + 1).normalize()]
	return Vec2{float32(a.Q+b.Q) / 3, float32(a.R+b.R) / 3}
}

// CornerOffsetInWorldRow returns the offset from a hex's center to one of its
// corners on a pointy-top grid. Pointy-top corners sit at the column
// compass points (NorthEast, North, ...).
func CornerOffsetInWorldRow(corner HexColDirection, grid GridSize) Vec2 {
	return ProjectRow(cornerBetween(HexDirection(corner)), grid)
}

// CornerOffsetInWorldCol returns the offset from a hex's center to one of its
// corners on a flat-top grid. Flat-top corners sit at the row compass
// points (East, NorthEast, ...).
func CornerOffsetInWorldCol(corner HexRowDirection, grid GridSize) Vec2 {
	return ProjectCol(cornerBetween(HexDirection(corner)+5), grid)
}

// CornerInWorldRow returns the world position of a corner on a pointy-top grid.
func (a AxialPos) CornerInWorldRow(corner HexColDirection, grid GridSize) Vec2 {
	return a.CenterInWorldRow(grid).Add(CornerOffsetInWorldRow(corner, grid))
}

// CornerInWorldCol returns the world position of a corner on a flat-top grid.
func (a AxialPos) CornerInWorldCol(corner HexRowDirection, grid GridSize) Vec2 {
	return a.CenterInWorldCol(grid).Add(CornerOffsetInWorldCol(corner, grid))
}

// FractionalAxialFromWorldRow applies the inverse pointy-top projection
// without rounding.
func FractionalAxialFromWorldRow(world Vec2, grid GridSize) FractionalAxialPos {
	v := transformPoint(invertAffine(rowProjection(grid)), world)
	return FractionalAxialPos{Q: v.X, R: v.Y}
}

// FractionalAxialFromWorldCol applies the inverse flat-top projection
// without rounding.
func FractionalAxialFromWorldCol(world Vec2, grid GridSize) FractionalAxialPos {
	v := transformPoint(invertAffine(colProjection(grid)), world)
	return FractionalAxialPos{Q: v.X, R: v.Y}
}

// AxialFromWorldRow returns the hex containing the world position on a
// pointy-top grid.
func AxialFromWorldRow(world Vec2, grid GridSize) AxialPos {
	return FractionalAxialFromWorldRow(world, grid).Round()
}

// AxialFromWorldCol returns the hex containing the world position on a
// flat-top grid.
func AxialFromWorldCol(world Vec2, grid GridSize) AxialPos {
	return FractionalAxialFromWorldCol(world, grid).Round()
}

// AxialFromTilePos converts a tile position into axial coordinates under
// the given coordinate system.
func AxialFromTilePos(p TilePos, sys HexCoordSystem) AxialPos {
	x, y := int32(p.X), int32(p.Y)
	switch sys {
	case HexRowEven:
		return RowEvenPos{x, y}.Axial()
	case HexRowOdd:
		return RowOddPos{x, y}.Axial()
	case HexColumnEven:
		return ColEvenPos{x, y}.Axial()
	case HexColumnOdd:
		return ColOddPos{x, y}.Axial()
	default:
		return AxialPos{Q: x, R: y}
	}
}

// tileInts returns the signed tile components of a under sys.
func (a AxialPos) tileInts(sys HexCoordSystem) (int32, int32) {
	switch sys {
	case HexRowEven:
		p := RowEvenPosFromAxial(a)
		return p.X, p.Y
	case HexRowOdd:
		p := RowOddPosFromAxial(a)
		return p.X, p.Y
	case HexColumnEven:
		p := ColEvenPosFromAxial(a)
		return p.X, p.Y
	case HexColumnOdd:
		p := ColOddPosFromAxial(a)
		return p.X, p.Y
	default:
		return a.Q, a.R
	}
}

// AsTilePos converts a into a tile position under the given coordinate
// system, reporting false if the result falls outside size.
func (a AxialPos) AsTilePos(sys HexCoordSystem, size MapSize) (TilePos, bool) {
	x, y := a.tileInts(sys)
	return TilePosFromInts(x, y, size)
}

// AsTilePosUnchecked converts a into a tile position under the given
// coordinate system without bounds checks. Negative components wrap, so the
// result must be bounds-checked before indexing storage.
func (a AxialPos) AsTilePosUnchecked(sys HexCoordSystem) TilePos {
	x, y := a.tileInts(sys)
	return TilePos{X: uint32(x), Y: uint32(y)}
}
