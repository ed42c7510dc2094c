// Package tilegrid is the coordinate geometry of 2D tilemaps: square,
// hexagonal and isometric layouts, conversions between their coordinate
// systems, and projection between tile positions and world space.
//
// A map is described by its size in tiles, the grid cell size that spaces
// tile centers, the visual tile size, a [MapType] and an [Anchor]:
//
//	m := tilegrid.NewMap(
//		tilegrid.MapSize{X: 20, Y: 12},
//		tilegrid.GridSize{X: 32, Y: 28},
//		tilegrid.TileSize{X: 32, Y: 32},
//		tilegrid.MapTypeHexagon(tilegrid.HexRowOdd),
//		tilegrid.AnchorCenter,
//	)
//	world := m.CenterInWorld(tilegrid.TilePos{X: 3, Y: 5})
//	pos, ok := m.TileAt(world)
//
// The free functions [TilePos.CenterInWorld] and [TilePosFromWorld] do the
// same without a Map. World space is y-up with tile (0, 0) centered on the
// origin until an anchor moves it.
//
// # Layouts
//
// Hexagonal maps address tiles in one of six [HexCoordSystem]s. Math is done
// in [AxialPos] and [CubePos]; the offset systems ([RowOddPos], [RowEvenPos],
// [ColOddPos], [ColEvenPos]) convert to and from axial. Isometric maps are
// either [DiamondPos] or [StaggeredPos]. Rounding a world position to a hex
// uses cube rounding, so a point always resolves to the hexagon that
// contains it.
//
// # Queries
//
// [NeighboringPositions] and the per-layout neighbor functions return
// on-map neighbors. [HexRing], [Hexagon] and [HexReachable] enumerate hex
// regions. [ChunkAABB] and [Map.VisibleChunks] support culling.
//
// # Storage and config
//
// [TileStorage] maps tile positions to caller handles (entity IDs) and backs
// the fill helpers. [MapConfig] loads a map description from YAML.
//
// # Ebitengine
//
// [Map.TileGeoM], [Camera] and [Map.ScreenToTile] bridge world space to
// [Ebitengine] draw calls and cursor picking. [TilePicker] turns mouse
// input into tile hover, click and drag events. [TweenAnchor] animates a
// map's anchor with [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package tilegrid
