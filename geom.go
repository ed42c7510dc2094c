package tilegrid

import "github.com/hajimehoshi/ebiten/v2"

// Draw space is world space with Y flipped, matching ebiten's screen
// orientation: draw = (world.X, -world.Y). A camera or view GeoM then maps
// draw space onto the screen.

// WorldToDraw converts a world position to draw space.
func WorldToDraw(world Vec2) (float64, float64) {
	return float64(world.X), float64(-world.Y)
}

// DrawToWorld converts a draw-space position back to world space.
func DrawToWorld(x, y float64) Vec2 {
	return Vec2{float32(x), float32(-y)}
}

// GeoMAt returns a GeoM that draws an image of w x h pixels scaled to
// the map's tile size and centered on the world position.
func (m *Map) GeoMAt(world Vec2, w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	if w > 0 && h > 0 {
		g.Scale(float64(m.tile.X)/float64(w), float64(m.tile.Y)/float64(h))
	}
	x, y := WorldToDraw(world)
	g.Translate(x-float64(m.tile.X)/2, y-float64(m.tile.Y)/2)
	return g
}

// TileGeoM returns the GeoM placing a w x h tile image on p. Concatenate a
// view GeoM to move it into screen space.
func (m *Map) TileGeoM(p TilePos, w, h int) ebiten.GeoM {
	return m.GeoMAt(m.CenterInWorld(p), w, h)
}

// ScreenToTile returns the tile under a screen position, given the view
// GeoM that maps draw space to the screen. It reports false if the view is
// not invertible or the position is off the map.
func (m *Map) ScreenToTile(view ebiten.GeoM, sx, sy float64) (TilePos, bool) {
	if !view.IsInvertible() {
		return TilePos{}, false
	}
	inv := view
	inv.Invert()
	return m.TileAt(DrawToWorld(inv.Apply(sx, sy)))
}
