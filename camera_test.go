package tilegrid

import (
	"image"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func newTestCamera() *Camera {
	return NewCamera(image.Rect(0, 0, 800, 600))
}

func TestCameraDefaults(t *testing.T) {
	cam := newTestCamera()
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.Viewport.Dx() != 800 || cam.Viewport.Dy() != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
}

func TestCameraIdentityView(t *testing.T) {
	cam := newTestCamera()
	// At (0,0), zoom 1, no rotation the origin sits at the viewport center.
	sx, sy := cam.WorldToScreen(Vec2{})
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraTranslation(t *testing.T) {
	cam := newTestCamera()
	cam.X = 100
	cam.Y = 50
	sx, sy := cam.WorldToScreen(Vec2{100, 50})
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(100,50) with cam at (100,50) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraWorldUpIsScreenUp(t *testing.T) {
	cam := newTestCamera()
	_, sy := cam.WorldToScreen(Vec2{0, 10})
	if !approxEqual(sy, 290, epsilon) {
		t.Errorf("world +Y maps to screen y %f, want 290", sy)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := newTestCamera()
	cam.Zoom = 2.0

	sx1, _ := cam.WorldToScreen(Vec2{1, 0})
	sx0, _ := cam.WorldToScreen(Vec2{0, 0})
	if d := sx1 - sx0; !approxEqual(d, 2.0, epsilon) {
		t.Errorf("zoom 2x: 1 world unit = %f screen pixels, want 2.0", d)
	}
}

func TestCameraRotation90(t *testing.T) {
	cam := newTestCamera()
	cam.Rotation = math.Pi / 2

	// Rotate(-π/2) maps draw (1,0) to (0,-1).
	sx, sy := cam.WorldToScreen(Vec2{1, 0})
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 299, epsilon) {
		t.Errorf("90° rotation: WorldToScreen(1,0) = (%f,%f), want (400,299)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := newTestCamera()
	cam.X = 42
	cam.Y = -17
	cam.Zoom = 1.5
	cam.Rotation = 0.3

	orig := Vec2{123, -456}
	sx, sy := cam.WorldToScreen(orig)
	assertVec(t, "roundtrip", cam.ScreenToWorld(sx, sy), orig)
}

func TestVisibleBoundsZoom1(t *testing.T) {
	cam := newTestCamera()
	cam.X = 400
	cam.Y = 300
	b := cam.VisibleBounds()
	assertAABB(t, "visible", b, AABB{Min: Vec3{0, 0, 0}, Max: Vec3{800, 600, 1}})
}

func TestVisibleBoundsZoom2(t *testing.T) {
	cam := newTestCamera()
	cam.X = 400
	cam.Y = 300
	cam.Zoom = 2.0
	size := cam.VisibleBounds().Size()
	assertNear(t, "width", size.X, 400)
	assertNear(t, "height", size.Y, 300)
}

func TestCameraFollow(t *testing.T) {
	cam := newTestCamera()
	target := Vec2{200, 150}
	cam.Follow(func() Vec2 { return target }, 1.0)

	cam.Update(1.0 / 60.0)
	if !approxEqual(cam.X, 200, epsilon) || !approxEqual(cam.Y, 150, epsilon) {
		t.Errorf("after follow snap: cam = (%f,%f), want (200,150)", cam.X, cam.Y)
	}

	cam.Follow(func() Vec2 { return Vec2{} }, 0.5)
	cam.Update(1.0 / 60.0)
	if !approxEqual(cam.X, 100, epsilon) || !approxEqual(cam.Y, 75, epsilon) {
		t.Errorf("after half lerp: cam = (%f,%f), want (100,75)", cam.X, cam.Y)
	}

	cam.Unfollow()
	cam.Update(1.0 / 60.0)
	if !approxEqual(cam.X, 100, epsilon) {
		t.Errorf("camera moved after Unfollow: %f", cam.X)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := newTestCamera()
	cam.ScrollTo(Vec2{100, -40}, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling = false after ScrollTo")
	}

	cam.Update(0.5)
	if !approxEqual(cam.X, 50, epsilon) || !approxEqual(cam.Y, -20, epsilon) {
		t.Errorf("halfway: cam = (%f,%f), want (50,-20)", cam.X, cam.Y)
	}
	cam.Update(0.5)
	if !approxEqual(cam.X, 100, epsilon) || !approxEqual(cam.Y, -40, epsilon) {
		t.Errorf("end: cam = (%f,%f), want (100,-40)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("scroll not cleared after completion")
	}
}

func TestCameraScrollToTile(t *testing.T) {
	m := NewMap(MapSize{4, 4}, GridSize{32, 32}, TileSize{32, 32}, MapTypeSquare, AnchorNone)
	cam := newTestCamera()
	cam.ScrollToTile(m, TilePos{2, 1}, 0.25, ease.OutQuad)
	cam.Update(0.25)
	if !approxEqual(cam.X, 64, epsilon) || !approxEqual(cam.Y, 32, epsilon) {
		t.Errorf("cam = (%f,%f), want (64,32)", cam.X, cam.Y)
	}
}

func TestCameraClampToBounds(t *testing.T) {
	cam := newTestCamera()
	cam.SetBounds(AABB{Max: Vec3{1000, 1000, 1}})
	cam.ClampToBounds()
	if !approxEqual(cam.X, 400, epsilon) || !approxEqual(cam.Y, 300, epsilon) {
		t.Errorf("clamped cam = (%f,%f), want (400,300)", cam.X, cam.Y)
	}

	// Bounds smaller than the view center the camera.
	cam.SetBounds(AABB{Min: Vec3{10, 20, 0}, Max: Vec3{110, 60, 1}})
	cam.Update(0)
	if !approxEqual(cam.X, 60, epsilon) || !approxEqual(cam.Y, 40, epsilon) {
		t.Errorf("centered cam = (%f,%f), want (60,40)", cam.X, cam.Y)
	}

	cam.ClearBounds()
	cam.X = -500
	cam.ClampToBounds()
	if cam.X != -500 {
		t.Error("ClampToBounds moved the camera with bounds disabled")
	}
}

func TestCameraPicksTiles(t *testing.T) {
	m := NewMap(MapSize{10, 8}, GridSize{32, 28}, TileSize{32, 32}, MapTypeIsometric(IsoStaggered), AnchorCenter)
	cam := newTestCamera()
	cam.Zoom = 1.5
	cam.Rotation = 0.2
	cam.X, cam.Y = 30, -12

	for _, p := range []TilePos{{0, 0}, {4, 3}, {9, 7}} {
		sx, sy := cam.WorldToScreen(m.CenterInWorld(p))
		got, ok := m.ScreenToTile(cam.View(), sx, sy)
		if !ok || got != p {
			t.Errorf("picked %v, %v at tile %v", got, ok, p)
		}
	}
}

func TestCameraVisibleChunks(t *testing.T) {
	m := NewMap(MapSize{64, 64}, GridSize{16, 16}, TileSize{16, 16}, MapTypeSquare, AnchorBottomLeft)
	cam := NewCamera(image.Rect(0, 0, 256, 256))
	// The view covers world [0, 256] on both axes, which is the first
	// 16x16 block of tiles.
	cam.X, cam.Y = 128, 128
	got := m.VisibleChunks(MapSize{16, 16}, cam.VisibleBounds())
	if len(got) == 0 || got[0] != (MapSize{0, 0}) {
		t.Fatalf("visible chunks = %v", got)
	}
	for _, idx := range got {
		if idx.X > 1 || idx.Y > 1 {
			t.Errorf("far chunk %v reported visible", idx)
		}
	}
}
