package tilegrid

// HexRing returns the hexes at exactly distance radius from origin. The
// walk starts at the corner in direction HexZero and proceeds
// counter-clockwise. A radius of zero yields just origin.
func HexRing(origin AxialPos, radius uint32) []AxialPos {
	if radius == 0 {
		return []AxialPos{origin}
	}
	r := int32(radius)
	ring := make([]AxialPos, 0, 6*radius)
	for i, dir := range HexOffsets {
		corner := origin.Add(dir.Scale(r))
		tangent := HexOffsets[(i+2)%6]
		for k := int32(0); k < r; k++ {
			ring = append(ring, corner.Add(tangent.Scale(k)))
		}
	}
	return ring
}

// Hexagon returns every hex within distance radius of origin, ring by ring
// from the center outward.
func Hexagon(origin AxialPos, radius uint32) []AxialPos {
	hex := make([]AxialPos, 0, 1+3*radius*(radius+1))
	for r := uint32(0); r <= radius; r++ {
		hex = append(hex, HexRing(origin, r)...)
	}
	return hex
}

// RectPositions returns the tile positions of the rectangle of the given
// size whose bottom-left tile is origin, column by column.
func RectPositions(origin TilePos, size MapSize) []TilePos {
	out := make([]TilePos, 0, size.Count())
	for x := uint32(0); x < size.X; x++ {
		for y := uint32(0); y < size.Y; y++ {
			out = append(out, TilePos{X: origin.X + x, Y: origin.Y + y})
		}
	}
	return out
}

// HexagonTilePositions returns the tile positions of the hexagon of the
// given radius around origin, interpreted under sys. Hexes with negative
// tile components are skipped; the rest must still be bounds-checked
// against the map.
func HexagonTilePositions(origin TilePos, radius uint32, sys HexCoordSystem) []TilePos {
	hex := Hexagon(AxialFromTilePos(origin, sys), radius)
	out := make([]TilePos, 0, len(hex))
	for _, a := range hex {
		x, y := a.tileInts(sys)
		if x < 0 || y < 0 {
			continue
		}
		out = append(out, TilePos{X: uint32(x), Y: uint32(y)})
	}
	return out
}

// FillTilemap calls spawn for every tile of the storage's map and stores the
// returned handle.
func FillTilemap[H comparable](storage *TileStorage[H], spawn func(TilePos) H) {
	FillTilemapRect(storage, TilePos{}, storage.Size(), spawn)
}

// FillTilemapRect calls spawn for every tile in the rectangle and stores the
// returned handle. The rectangle must lie within the map.
func FillTilemapRect[H comparable](storage *TileStorage[H], origin TilePos, size MapSize, spawn func(TilePos) H) {
	for _, p := range RectPositions(origin, size) {
		storage.Set(p, spawn(p))
	}
}

// FillTilemapHexagon calls spawn for every tile of the hexagon that lies on
// the map and stores the returned handle. Off-map hexes are never spawned.
// It returns the number of tiles filled.
func FillTilemapHexagon[H comparable](storage *TileStorage[H], origin TilePos, radius uint32, sys HexCoordSystem, spawn func(TilePos) H) int {
	size := storage.Size()
	n, clipped := 0, 0
	for _, p := range HexagonTilePositions(origin, radius, sys) {
		if !p.WithinMapBounds(size) {
			clipped++
			continue
		}
		storage.Set(p, spawn(p))
		n++
	}
	if clipped > 0 {
		debugf("hexagon fill at %v radius %d clipped %d tiles", origin, radius, clipped)
	}
	return n
}
