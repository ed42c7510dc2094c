package tilegrid

// ChunkIndexToWorldSpace returns the world position of the bottom-left tile
// center of the chunk at index, for chunks of chunkSize tiles.
func ChunkIndexToWorldSpace(index, chunkSize MapSize, grid GridSize, mapType MapType) Vec2 {
	anchorTile := TilePos{X: index.X * chunkSize.X, Y: index.Y * chunkSize.Y}
	return anchorTile.CenterInWorldUnanchored(grid, mapType)
}

// ChunkAABB returns the bounding box of a chunk of chunkSize tiles, placed
// with its first tile center at the origin. Z spans [0, 1].
//
// All four chunk corners are projected because some layouts (isometric
// diamond) are not monotonic along the tile axes. The box is then grown by
// half of the larger of grid and tile size so that oversized tiles fit.
// Translate the result by the chunk's placement before culling.
func ChunkAABB(chunkSize MapSize, grid GridSize, tile TileSize, mapType MapType) AABB {
	border := Vec2{max(grid.X, tile.X), max(grid.Y, tile.Y)}.Scale(0.5)

	c0 := ChunkIndexToWorldSpace(MapSize{0, 0}, chunkSize, grid, mapType)
	c1 := ChunkIndexToWorldSpace(MapSize{1, 0}, chunkSize, grid, mapType)
	c2 := ChunkIndexToWorldSpace(MapSize{0, 1}, chunkSize, grid, mapType)
	c3 := ChunkIndexToWorldSpace(MapSize{1, 1}, chunkSize, grid, mapType)

	lo := c0.Min(c1).Min(c2).Min(c3).Sub(border)
	hi := c0.Max(c1).Max(c2).Max(c3).Add(border)
	return AABB{
		Min: Vec3{lo.X, lo.Y, 0},
		Max: Vec3{hi.X, hi.Y, 1},
	}
}

// MapAABB returns the bounding box of a whole map, unanchored. It is the box
// anchors are measured against.
func MapAABB(size MapSize, grid GridSize, tile TileSize, mapType MapType) AABB {
	last := MapSize{X: size.X, Y: size.Y}
	if last.X > 0 {
		last.X--
	}
	if last.Y > 0 {
		last.Y--
	}
	return ChunkAABB(last, grid, tile, mapType)
}
