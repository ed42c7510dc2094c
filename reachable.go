package tilegrid

import "github.com/zyedidia/generic/mapset"

// HexReachable returns every hex reachable from origin in at most steps
// moves, where each move goes to an adjacent hex for which blocked returns
// false. Origin is always included and is never tested against blocked.
// Results are ordered by move count, then by discovery order. A nil blocked
// reduces to Hexagon(origin, steps) in a different order.
func HexReachable(origin AxialPos, steps uint32, blocked func(AxialPos) bool) []AxialPos {
	visited := mapset.New[AxialPos]()
	visited.Put(origin)
	out := []AxialPos{origin}
	fringe := []AxialPos{origin}

	for k := uint32(0); k < steps && len(fringe) > 0; k++ {
		var next []AxialPos
		for _, p := range fringe {
			for _, dir := range HexDirections {
				n := p.Offset(dir)
				if visited.Has(n) {
					continue
				}
				if blocked != nil && blocked(n) {
					continue
				}
				visited.Put(n)
				out = append(out, n)
				next = append(next, n)
			}
		}
		fringe = next
	}
	return out
}

// HexReachableTiles runs HexReachable on a bounded map. Hexes off the map
// count as blocked, and blocked is consulted with tile positions.
func HexReachableTiles(origin TilePos, steps uint32, size MapSize, sys HexCoordSystem, blocked func(TilePos) bool) []TilePos {
	axial := HexReachable(AxialFromTilePos(origin, sys), steps, func(a AxialPos) bool {
		p, ok := a.AsTilePos(sys, size)
		if !ok {
			return true
		}
		return blocked != nil && blocked(p)
	})
	out := make([]TilePos, 0, len(axial))
	for _, a := range axial {
		out = append(out, a.AsTilePosUnchecked(sys))
	}
	return out
}
