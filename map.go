package tilegrid

// Map bundles the geometry of one tilemap so callers don't have to thread
// size, cell sizes, layout, and anchor through every call. The anchor offset
// is computed by the constructor and the setters, so lookups only read and
// may run concurrently. The setters must not race with lookups.
type Map struct {
	size    MapSize
	grid    GridSize
	tile    TileSize
	mapType MapType
	anchor  Anchor

	offset Vec2
}

// NewMap creates a Map. Sizes must be positive; see MapConfig.Validate.
func NewMap(size MapSize, grid GridSize, tile TileSize, mapType MapType, anchor Anchor) *Map {
	debugCheckMap(size, grid, tile)
	m := &Map{
		size:    size,
		grid:    grid,
		tile:    tile,
		mapType: mapType,
		anchor:  anchor,
	}
	m.updateOffset()
	return m
}

func (m *Map) updateOffset() {
	m.offset = m.anchor.Offset(m.size, m.grid, m.tile, m.mapType)
}

// Size returns the map extent in tiles.
func (m *Map) Size() MapSize { return m.size }

// GridSize returns the grid cell size.
func (m *Map) GridSize() GridSize { return m.grid }

// TileSize returns the visual tile size.
func (m *Map) TileSize() TileSize { return m.tile }

// Type returns the map layout.
func (m *Map) Type() MapType { return m.mapType }

// Anchor returns the current anchor.
func (m *Map) Anchor() Anchor { return m.anchor }

// SetAnchor changes the anchor.
func (m *Map) SetAnchor(a Anchor) {
	if a == m.anchor {
		return
	}
	m.anchor = a
	m.updateOffset()
}

// SetTileSize changes the visual tile size, which moves edge anchors.
func (m *Map) SetTileSize(tile TileSize) {
	m.tile = tile
	m.updateOffset()
}

// AnchorOffset returns the translation the anchor applies to every tile.
func (m *Map) AnchorOffset() Vec2 {
	return m.offset
}

// CenterInWorld returns the anchored world center of p.
func (m *Map) CenterInWorld(p TilePos) Vec2 {
	return m.AnchorOffset().Add(p.CenterInWorldUnanchored(m.grid, m.mapType))
}

// TileAt returns the tile containing the world position, if any.
func (m *Map) TileAt(world Vec2) (TilePos, bool) {
	// The anchor is already folded into the offset; pass AnchorNone so it is
	// not recomputed per call.
	return TilePosFromWorld(world.Sub(m.AnchorOffset()), m.size, m.grid, m.tile, m.mapType, AnchorNone)
}

// Neighbors returns the on-map neighbors of p in direction order.
func (m *Map) Neighbors(p TilePos, includeDiagonals bool) []TilePos {
	return NeighboringPositions(p, m.size, m.mapType, includeDiagonals)
}

// Bounds returns the anchored world bounding box of the whole map.
func (m *Map) Bounds() AABB {
	return MapAABB(m.size, m.grid, m.tile, m.mapType).Translate(m.AnchorOffset())
}

// ChunkBounds returns the anchored world bounding box of the chunk at index.
func (m *Map) ChunkBounds(index, chunkSize MapSize) AABB {
	origin := ChunkIndexToWorldSpace(index, chunkSize, m.grid, m.mapType)
	return ChunkAABB(chunkSize, m.grid, m.tile, m.mapType).Translate(origin.Add(m.AnchorOffset()))
}

// VisibleChunks returns the indices of chunks whose bounds intersect view.
// Chunks at the map edge are clipped to the map.
func (m *Map) VisibleChunks(chunkSize MapSize, view AABB) []MapSize {
	if chunkSize.X == 0 || chunkSize.Y == 0 {
		return nil
	}
	nx := (m.size.X + chunkSize.X - 1) / chunkSize.X
	ny := (m.size.Y + chunkSize.Y - 1) / chunkSize.Y
	var out []MapSize
	for y := uint32(0); y < ny; y++ {
		for x := uint32(0); x < nx; x++ {
			idx := MapSize{x, y}
			if m.ChunkBounds(idx, chunkSize).Intersects(view) {
				out = append(out, idx)
			}
		}
	}
	return out
}

// anchorPoint returns the fractional point equivalent to a on this map.
// AnchorNone maps to the point that produces a zero offset.
func (m *Map) anchorPoint(a Anchor) Vec2 {
	if pt, ok := a.Point(); ok {
		return pt
	}
	box := MapAABB(m.size, m.grid, m.tile, m.mapType)
	size := box.Size()
	return Vec2{
		X: -0.5 - box.Min.X/size.X,
		Y: -0.5 - box.Min.Y/size.Y,
	}
}

// TileOutline returns the anchored world corners of p in order around the
// tile.
func (m *Map) TileOutline(p TilePos) []Vec2 {
	center := m.CenterInWorld(p)
	out := TileCornerOffsets(m.grid, m.mapType)
	for i := range out {
		out[i] = center.Add(out[i])
	}
	return out
}
