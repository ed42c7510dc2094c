package tilegrid

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view onto a map: world position, zoom, rotation and
// the screen viewport. Its View GeoM maps draw space to the screen, so
// Map.TileGeoM concatenated with View places a tile on screen and
// Map.ScreenToTile(cam.View(), x, y) picks one.
type Camera struct {
	// X and Y are the world position (y up) the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen rectangle this camera renders into.
	Viewport image.Rectangle

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world box the camera is clamped to, usually Map.Bounds.
	Bounds AABB

	follow     func() Vec2
	followLerp float64

	view    ebiten.GeoM
	invView ebiten.GeoM
	viewKey viewKey
	dirty   bool

	scrollTween *scrollAnim
}

// viewKey is the camera state the cached view was built from.
type viewKey struct {
	x, y, zoom, rotation float64
	viewport             image.Rectangle
}

// NewCamera creates a Camera with zoom 1 looking at the world origin.
func NewCamera(viewport image.Rectangle) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// Follow makes the camera track the position returned by target each
// Update. A lerp of 1.0 snaps immediately; lower values give smoother
// following.
func (c *Camera) Follow(target func() Vec2, lerp float64) {
	c.follow = target
	c.followLerp = lerp
}

// Unfollow stops tracking.
func (c *Camera) Unfollow() {
	c.follow = nil
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(world Vec2, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), world.X, duration, easeFn),
		tweenY: gween.New(float32(c.Y), world.Y, duration, easeFn),
	}
}

// ScrollToTile scrolls to the anchored center of tile p on m.
func (c *Camera) ScrollToTile(m *Map, p TilePos, duration float32, easeFn ease.TweenFunc) {
	c.ScrollTo(m.CenterInWorld(p), duration, easeFn)
}

// SetBounds enables bounds clamping.
func (c *Camera) SetBounds(bounds AABB) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position. Call it after
// changing X/Y directly, e.g. while dragging. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// MarkDirty forces a recomputation of the view.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// Update advances follow, scroll and bounds clamping by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.follow != nil {
		target := c.follow()
		c.X += (float64(target.X) - c.X) * c.followLerp
		c.Y += (float64(target.Y) - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

func (c *Camera) clampToBounds() {
	halfW := float64(c.Viewport.Dx()) / (2 * c.Zoom)
	halfH := float64(c.Viewport.Dy()) / (2 * c.Zoom)

	minX := float64(c.Bounds.Min.X) + halfW
	maxX := float64(c.Bounds.Max.X) - halfW
	minY := float64(c.Bounds.Min.Y) + halfH
	maxY := float64(c.Bounds.Max.Y) - halfH

	// Bounds smaller than the visible area center the camera.
	if minX > maxX {
		c.X = float64(c.Bounds.Min.X+c.Bounds.Max.X) / 2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = float64(c.Bounds.Min.Y+c.Bounds.Max.Y) / 2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// View returns the GeoM mapping draw space to the screen:
//
//	Translate(viewport center) * Scale(zoom) * Rotate(-rotation) * Translate(-X, Y)
//
// The camera position is negated on Y because draw space flips the world.
func (c *Camera) View() ebiten.GeoM {
	key := viewKey{c.X, c.Y, c.Zoom, c.Rotation, c.Viewport}
	if !c.dirty && key == c.viewKey {
		return c.view
	}
	c.dirty = false
	c.viewKey = key

	var g ebiten.GeoM
	g.Translate(-c.X, c.Y)
	g.Rotate(-c.Rotation)
	g.Scale(c.Zoom, c.Zoom)
	center := c.Viewport.Min.Add(c.Viewport.Max)
	g.Translate(float64(center.X)/2, float64(center.Y)/2)

	c.view = g
	c.invView = g
	if c.invView.IsInvertible() {
		c.invView.Invert()
	}
	return g
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(world Vec2) (sx, sy float64) {
	view := c.View()
	return view.Apply(WorldToDraw(world))
}

// ScreenToWorld converts screen coordinates to a world position.
func (c *Camera) ScreenToWorld(sx, sy float64) Vec2 {
	c.View()
	return DrawToWorld(c.invView.Apply(sx, sy))
}

// VisibleBounds returns the world box covered by the viewport, with Z
// spanning [0, 1] so it can be tested against chunk boxes directly.
func (c *Camera) VisibleBounds() AABB {
	vp := c.Viewport
	corners := [4]Vec2{
		c.ScreenToWorld(float64(vp.Min.X), float64(vp.Min.Y)),
		c.ScreenToWorld(float64(vp.Max.X), float64(vp.Min.Y)),
		c.ScreenToWorld(float64(vp.Max.X), float64(vp.Max.Y)),
		c.ScreenToWorld(float64(vp.Min.X), float64(vp.Max.Y)),
	}
	lo, hi := corners[0], corners[0]
	for _, p := range corners[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return AABB{Min: Vec3{lo.X, lo.Y, 0}, Max: Vec3{hi.X, hi.Y, 1}}
}
