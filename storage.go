package tilegrid

import "fmt"

// TileStorage maps tile positions to opaque handles (entity IDs, sprite
// pointers, ...) for fast lookup. It is fixed-size, row-major, and every
// cell starts empty.
//
// Get, Set and Remove panic when the position lies outside the map; the
// Checked variants report absence instead.
type TileStorage[H comparable] struct {
	tiles []slot[H]
	size  MapSize
}

type slot[H comparable] struct {
	handle H
	ok     bool
}

// NewTileStorage creates an empty storage for a map of the given size.
func NewTileStorage[H comparable](size MapSize) *TileStorage[H] {
	return &TileStorage[H]{
		tiles: make([]slot[H], size.Count()),
		size:  size,
	}
}

// Size returns the map size the storage was created with.
func (s *TileStorage[H]) Size() MapSize {
	return s.size
}

// index returns the slot index for p, panicking if p is off the map.
func (s *TileStorage[H]) index(p TilePos, op string) int {
	if !p.WithinMapBounds(s.size) {
		panic(fmt.Sprintf("tilegrid: %s at %v outside map %dx%d", op, p, s.size.X, s.size.Y))
	}
	return p.ToIndex(s.size)
}

// Get returns the handle stored at p, if any. Panics if p lies outside the map.
func (s *TileStorage[H]) Get(p TilePos) (H, bool) {
	t := s.tiles[s.index(p, "Get")]
	return t.handle, t.ok
}

// CheckedGet returns the handle stored at p. It reports false if p lies
// outside the map or nothing is stored there.
func (s *TileStorage[H]) CheckedGet(p TilePos) (H, bool) {
	if !p.WithinMapBounds(s.size) {
		var zero H
		return zero, false
	}
	t := s.tiles[p.ToIndex(s.size)]
	return t.handle, t.ok
}

// Set stores h at p, replacing any previous handle. Panics if p lies
// outside the map.
func (s *TileStorage[H]) Set(p TilePos, h H) {
	s.tiles[s.index(p, "Set")] = slot[H]{handle: h, ok: true}
}

// CheckedSet stores h at p if p lies inside the map and reports whether the
// write happened.
func (s *TileStorage[H]) CheckedSet(p TilePos, h H) bool {
	if !p.WithinMapBounds(s.size) {
		debugf("CheckedSet at %v outside map %dx%d, dropped", p, s.size.X, s.size.Y)
		return false
	}
	s.tiles[p.ToIndex(s.size)] = slot[H]{handle: h, ok: true}
	return true
}

// Remove clears p and returns the handle that was stored there, if any.
// Panics if p lies outside the map.
func (s *TileStorage[H]) Remove(p TilePos) (H, bool) {
	i := s.index(p, "Remove")
	t := s.tiles[i]
	s.tiles[i] = slot[H]{}
	return t.handle, t.ok
}

// CheckedRemove clears p and returns the handle that was stored there. It
// reports false if p lies outside the map or nothing was stored.
func (s *TileStorage[H]) CheckedRemove(p TilePos) (H, bool) {
	if !p.WithinMapBounds(s.size) {
		var zero H
		return zero, false
	}
	return s.Remove(p)
}

// Each calls fn for every occupied cell in row-major order.
func (s *TileStorage[H]) Each(fn func(p TilePos, h H)) {
	w := int(s.size.X)
	for i, t := range s.tiles {
		if !t.ok {
			continue
		}
		fn(TilePos{X: uint32(i % w), Y: uint32(i / w)}, t.handle)
	}
}

// Len returns the number of occupied cells.
func (s *TileStorage[H]) Len() int {
	n := 0
	for _, t := range s.tiles {
		if t.ok {
			n++
		}
	}
	return n
}

// Drain empties the storage and returns every handle it held, in row-major
// order.
func (s *TileStorage[H]) Drain() []H {
	var out []H
	for i := range s.tiles {
		if s.tiles[i].ok {
			out = append(out, s.tiles[i].handle)
			s.tiles[i] = slot[H]{}
		}
	}
	return out
}

// Remap replaces every stored handle h with fn(h). Use it after copying a
// world to point the storage at the new handles.
func (s *TileStorage[H]) Remap(fn func(H) H) {
	for i := range s.tiles {
		if s.tiles[i].ok {
			s.tiles[i].handle = fn(s.tiles[i].handle)
		}
	}
}
