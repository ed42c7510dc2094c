package tilegrid

// CenterInWorldUnanchored returns the center of the tile in world space
// relative to the map's natural origin, the center of tile (0, 0).
func (p TilePos) CenterInWorldUnanchored(grid GridSize, mapType MapType) Vec2 {
	switch mapType.Kind {
	case KindHexagon:
		x, y := int32(p.X), int32(p.Y)
		switch mapType.Hex {
		case HexRowEven:
			return RowEvenPos{x, y}.CenterInWorld(grid)
		case HexRowOdd:
			return RowOddPos{x, y}.CenterInWorld(grid)
		case HexColumnEven:
			return ColEvenPos{x, y}.CenterInWorld(grid)
		case HexColumnOdd:
			return ColOddPos{x, y}.CenterInWorld(grid)
		case HexColumn:
			return AxialPos{x, y}.CenterInWorldCol(grid)
		default:
			return AxialPos{x, y}.CenterInWorldRow(grid)
		}
	case KindIsometric:
		if mapType.Iso == IsoStaggered {
			return StaggeredPosFromTilePos(p).CenterInWorld(grid)
		}
		return DiamondPosFromTilePos(p).CenterInWorld(grid)
	default:
		return Vec2{grid.X * float32(p.X), grid.Y * float32(p.Y)}
	}
}

// CenterInWorld returns the center of the tile in world space with the
// anchor's translation applied.
func (p TilePos) CenterInWorld(size MapSize, grid GridSize, tile TileSize, mapType MapType, anchor Anchor) Vec2 {
	offset := anchor.Offset(size, grid, tile, mapType)
	return offset.Add(p.CenterInWorldUnanchored(grid, mapType))
}

// TilePosFromWorld returns the tile whose cell contains the world position.
// The anchor's translation is removed before the inverse projection. It
// reports false if the position falls outside the map.
func TilePosFromWorld(world Vec2, size MapSize, grid GridSize, tile TileSize, mapType MapType, anchor Anchor) (TilePos, bool) {
	pos := world.Sub(anchor.Offset(size, grid, tile, mapType))
	switch mapType.Kind {
	case KindHexagon:
		switch mapType.Hex {
		case HexRowEven:
			return RowEvenPosFromWorld(pos, grid).AsTilePos(size)
		case HexRowOdd:
			return RowOddPosFromWorld(pos, grid).AsTilePos(size)
		case HexColumnEven:
			return ColEvenPosFromWorld(pos, grid).AsTilePos(size)
		case HexColumnOdd:
			return ColOddPosFromWorld(pos, grid).AsTilePos(size)
		case HexColumn:
			return AxialFromWorldCol(pos, grid).AsTilePos(HexColumn, size)
		default:
			return AxialFromWorldRow(pos, grid).AsTilePos(HexRow, size)
		}
	case KindIsometric:
		if mapType.Iso == IsoStaggered {
			return StaggeredPosFromWorld(pos, grid).AsTilePos(size)
		}
		return DiamondPosFromWorld(pos, grid).AsTilePos(size)
	default:
		x := roundHalfUp(pos.X / grid.X)
		y := roundHalfUp(pos.Y / grid.Y)
		return TilePosFromInts(x, y, size)
	}
}

var tileCornerDirections = [4]SquareDirection{SquareNorthEast, SquareNorthWest, SquareSouthWest, SquareSouthEast}

// TileCornerOffsets returns the offsets from a tile's center to its corners
// in order around the tile: six for hexagons, four otherwise.
func TileCornerOffsets(grid GridSize, mapType MapType) []Vec2 {
	switch mapType.Kind {
	case KindHexagon:
		out := make([]Vec2, 6)
		for i := range out {
			switch mapType.Hex {
			case HexColumnEven, HexColumnOdd, HexColumn:
				out[i] = CornerOffsetInWorldCol(HexRowDirection(i), grid)
			default:
				out[i] = CornerOffsetInWorldRow(HexColDirection(i), grid)
			}
		}
		return out
	case KindIsometric:
		out := make([]Vec2, len(tileCornerDirections))
		for i, d := range tileCornerDirections {
			out[i] = DiamondCornerOffsetInWorld(d, grid)
		}
		return out
	default:
		out := make([]Vec2, len(tileCornerDirections))
		for i, d := range tileCornerDirections {
			out[i] = SquareCornerOffsetInWorld(d, grid)
		}
		return out
	}
}
