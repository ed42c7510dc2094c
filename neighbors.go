package tilegrid

import "iter"

// Neighbors holds one optional value per SquareDirection. A nil field means
// the neighbor in that direction does not exist (off the map, or a diagonal
// that was not requested).
type Neighbors[T any] struct {
	East, NorthEast, North, NorthWest, West, SouthWest, South, SouthEast *T
}

// field returns a pointer to the slot for dir.
func (n *Neighbors[T]) field(dir SquareDirection) **T {
	switch dir {
	case SquareEast:
		return &n.East
	case SquareNorthEast:
		return &n.NorthEast
	case SquareNorth:
		return &n.North
	case SquareNorthWest:
		return &n.NorthWest
	case SquareWest:
		return &n.West
	case SquareSouthWest:
		return &n.SouthWest
	case SquareSouth:
		return &n.South
	default:
		return &n.SouthEast
	}
}

// Get returns the neighbor in the given direction, if present.
func (n Neighbors[T]) Get(dir SquareDirection) (T, bool) {
	p := *n.field(dir)
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Each calls fn for every present neighbor, in direction order.
func (n Neighbors[T]) Each(fn func(dir SquareDirection, v T)) {
	for _, dir := range SquareDirections {
		if p := *n.field(dir); p != nil {
			fn(dir, *p)
		}
	}
}

// All iterates over the present neighbors in direction order.
func (n Neighbors[T]) All() iter.Seq2[SquareDirection, T] {
	return func(yield func(SquareDirection, T) bool) {
		for _, dir := range SquareDirections {
			if p := *n.field(dir); p != nil && !yield(dir, *p) {
				return
			}
		}
	}
}

// Values returns the present neighbors in direction order.
func (n Neighbors[T]) Values() []T {
	out := make([]T, 0, 8)
	n.Each(func(_ SquareDirection, v T) {
		out = append(out, v)
	})
	return out
}

// neighborsFrom builds a Neighbors by calling fn for each direction. When
// includeDiagonals is false the diagonal fields stay nil.
func neighborsFrom[T any](includeDiagonals bool, fn func(SquareDirection) (T, bool)) Neighbors[T] {
	var n Neighbors[T]
	for _, dir := range SquareDirections {
		if dir.IsDiagonal() && !includeDiagonals {
			continue
		}
		if v, ok := fn(dir); ok {
			*n.field(dir) = &v
		}
	}
	return n
}

// SquareNeighboringPositions returns the positions adjacent to p on a
// square map.
func SquareNeighboringPositions(p TilePos, size MapSize, includeDiagonals bool) Neighbors[TilePos] {
	sq := SquarePosFromTilePos(p)
	return neighborsFrom(includeDiagonals, func(dir SquareDirection) (TilePos, bool) {
		return sq.Offset(dir).AsTilePos(size)
	})
}

// DiamondNeighboringPositions returns the positions adjacent to p on an
// isometric diamond map.
func DiamondNeighboringPositions(p TilePos, size MapSize, includeDiagonals bool) Neighbors[TilePos] {
	d := DiamondPosFromTilePos(p)
	return neighborsFrom(includeDiagonals, func(dir SquareDirection) (TilePos, bool) {
		return d.Offset(dir).AsTilePos(size)
	})
}

// StaggeredNeighboringPositions returns the positions adjacent to p on an
// isometric staggered map.
func StaggeredNeighboringPositions(p TilePos, size MapSize, includeDiagonals bool) Neighbors[TilePos] {
	s := StaggeredPosFromTilePos(p)
	return neighborsFrom(includeDiagonals, func(dir SquareDirection) (TilePos, bool) {
		return s.Offset(dir).AsTilePos(size)
	})
}

// NeighborEntities resolves neighboring positions to the handles stored at
// them. Directions with no position or an empty cell come back nil.
func NeighborEntities[H comparable](n Neighbors[TilePos], storage *TileStorage[H]) Neighbors[H] {
	var out Neighbors[H]
	n.Each(func(dir SquareDirection, p TilePos) {
		if h, ok := storage.CheckedGet(p); ok {
			*out.field(dir) = &h
		}
	})
	return out
}

// HexNeighbors holds one optional value per HexDirection.
type HexNeighbors[T any] struct {
	Zero, One, Two, Three, Four, Five *T
}

func (n *HexNeighbors[T]) field(dir HexDirection) **T {
	switch dir.normalize() {
	case HexZero:
		return &n.Zero
	case HexOne:
		return &n.One
	case HexTwo:
		return &n.Two
	case HexThree:
		return &n.Three
	case HexFour:
		return &n.Four
	default:
		return &n.Five
	}
}

// Get returns the neighbor in the given direction, if present.
func (n HexNeighbors[T]) Get(dir HexDirection) (T, bool) {
	p := *n.field(dir)
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Each calls fn for every present neighbor, in direction order.
func (n HexNeighbors[T]) Each(fn func(dir HexDirection, v T)) {
	for _, dir := range HexDirections {
		if p := *n.field(dir); p != nil {
			fn(dir, *p)
		}
	}
}

// All iterates over the present neighbors in direction order.
func (n HexNeighbors[T]) All() iter.Seq2[HexDirection, T] {
	return func(yield func(HexDirection, T) bool) {
		for _, dir := range HexDirections {
			if p := *n.field(dir); p != nil && !yield(dir, *p) {
				return
			}
		}
	}
}

// Values returns the present neighbors in direction order.
func (n HexNeighbors[T]) Values() []T {
	out := make([]T, 0, 6)
	n.Each(func(_ HexDirection, v T) {
		out = append(out, v)
	})
	return out
}

// hexNeighborsFrom builds a HexNeighbors by calling fn for each direction.
func hexNeighborsFrom[T any](fn func(HexDirection) (T, bool)) HexNeighbors[T] {
	var n HexNeighbors[T]
	for _, dir := range HexDirections {
		if v, ok := fn(dir); ok {
			*n.field(dir) = &v
		}
	}
	return n
}

// HexNeighboringPositions returns the positions adjacent to p on a hex map
// addressed with sys.
func HexNeighboringPositions(p TilePos, size MapSize, sys HexCoordSystem) HexNeighbors[TilePos] {
	a := AxialFromTilePos(p, sys)
	return hexNeighborsFrom(func(dir HexDirection) (TilePos, bool) {
		return a.Offset(dir).AsTilePos(sys, size)
	})
}

// AxialNeighbors returns the six axial positions adjacent to a. None are
// ever missing since axial space is unbounded.
func AxialNeighbors(a AxialPos) HexNeighbors[AxialPos] {
	return hexNeighborsFrom(func(dir HexDirection) (AxialPos, bool) {
		return a.Offset(dir), true
	})
}

// HexNeighborEntities resolves neighboring positions to the handles stored
// at them.
func HexNeighborEntities[H comparable](n HexNeighbors[TilePos], storage *TileStorage[H]) HexNeighbors[H] {
	var out HexNeighbors[H]
	n.Each(func(dir HexDirection, p TilePos) {
		if h, ok := storage.CheckedGet(p); ok {
			*out.field(dir) = &h
		}
	})
	return out
}

// NeighboringPositions returns the positions adjacent to p for any map type
// as a flat slice in direction order. Hex maps ignore includeDiagonals.
func NeighboringPositions(p TilePos, size MapSize, mapType MapType, includeDiagonals bool) []TilePos {
	switch mapType.Kind {
	case KindHexagon:
		return HexNeighboringPositions(p, size, mapType.Hex).Values()
	case KindIsometric:
		if mapType.Iso == IsoStaggered {
			return StaggeredNeighboringPositions(p, size, includeDiagonals).Values()
		}
		return DiamondNeighboringPositions(p, size, includeDiagonals).Values()
	default:
		return SquareNeighboringPositions(p, size, includeDiagonals).Values()
	}
}
