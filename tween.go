package tilegrid

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnchorTween slides a Map from its current anchor to another one. Call
// Update(dt) each frame; the map's anchor is rewritten on every call.
//
// There is no global animation manager. Callers drive Update themselves.
type AnchorTween struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	target *Map
	to     Anchor
	Done   bool
}

// TweenAnchor creates an AnchorTween moving m's anchor to the given anchor
// over duration seconds using the easing function. Tweening from or to
// AnchorNone works; the map lands exactly on the target anchor.
func TweenAnchor(m *Map, to Anchor, duration float32, fn ease.TweenFunc) *AnchorTween {
	from := m.anchorPoint(m.Anchor())
	dest := m.anchorPoint(to)
	return &AnchorTween{
		tweenX: gween.New(from.X, dest.X, duration, fn),
		tweenY: gween.New(from.Y, dest.Y, duration, fn),
		target: m,
		to:     to,
	}
}

// Update advances the tween by dt seconds and applies the interpolated anchor.
func (t *AnchorTween) Update(dt float32) {
	if t.Done {
		return
	}
	x, doneX := t.tweenX.Update(dt)
	y, doneY := t.tweenY.Update(dt)
	if doneX && doneY {
		t.target.SetAnchor(t.to)
		t.Done = true
		return
	}
	t.target.SetAnchor(AnchorCustom(x, y))
}
