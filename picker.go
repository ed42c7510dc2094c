package tilegrid

import (
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// TileEventType identifies the kind of a TileEvent.
type TileEventType uint8

const (
	EventTileEnter   TileEventType = iota // pointer moved onto a tile
	EventTileLeave                        // pointer left a tile
	EventTilePress                        // button pressed over a tile
	EventTileRelease                      // button released over a tile
	EventTileClick                        // press and release on the same tile without dragging
	EventDragStart                        // pointer moved past the dead zone while pressed
	EventDrag                             // pointer moved during a drag
	EventDragEnd                          // button released after a drag
	numTileEvents
)

// TileEvent is delivered to TilePicker callbacks. Pos is meaningful only
// when OnTile is true; drag events fire on and off the map.
type TileEvent struct {
	Type   TileEventType
	Pos    TilePos
	OnTile bool
	World  Vec2
	// ScreenX and ScreenY are the pointer position in screen pixels.
	ScreenX, ScreenY float64
	// DeltaX and DeltaY are the screen movement since the previous drag
	// event, or since the press for EventDragStart.
	DeltaX, DeltaY float64
	Button         MouseButton
}

// PointerSample is one frame of pointer input in screen coordinates.
type PointerSample struct {
	X, Y    float64
	Pressed bool
	Button  MouseButton
}

type tileHandler struct {
	id uint32
	fn func(TileEvent)
}

// CallbackHandle allows removing a registered picker callback.
type CallbackHandle struct {
	id     uint32
	picker *TilePicker
	event  TileEventType
}

// Remove unregisters the callback so it no longer fires. It is safe to call
// from inside a callback; handlers already being dispatched still run.
func (h CallbackHandle) Remove() {
	if h.picker == nil {
		return
	}
	hs := h.picker.handlers[h.event]
	for i, th := range hs {
		if th.id == h.id {
			h.picker.handlers[h.event] = slices.Delete(slices.Clone(hs), i, i+1)
			return
		}
	}
}

// TilePicker turns mouse input into tile events for a Map viewed through a
// Camera. Call Update once per frame. Synthetic input queued with Inject
// replaces the real mouse for the frames it covers.
type TilePicker struct {
	m   *Map
	cam *Camera

	// DragDeadZone is how far in pixels the pointer must move while pressed
	// before a drag starts.
	DragDeadZone float64
	// PanOnDrag scrolls the camera so the world follows the pointer while
	// dragging.
	PanOnDrag bool

	handlers [numTileEvents][]tileHandler
	nextID   uint32
	queue    []PointerSample

	hover    TilePos
	hovering bool

	down        bool
	dragging    bool
	button      MouseButton
	startX      float64
	startY      float64
	lastX       float64
	lastY       float64
	pressPos    TilePos
	pressOnTile bool
}

// NewTilePicker creates a picker for m seen through cam.
func NewTilePicker(m *Map, cam *Camera) *TilePicker {
	return &TilePicker{m: m, cam: cam, DragDeadZone: 4}
}

// SetMap switches the picked map. Hover state is reset without events.
func (p *TilePicker) SetMap(m *Map) {
	p.m = m
	p.hovering = false
	p.pressOnTile = false
}

// On registers fn for events of the given type.
func (p *TilePicker) On(event TileEventType, fn func(TileEvent)) CallbackHandle {
	p.nextID++
	p.handlers[event] = append(p.handlers[event], tileHandler{id: p.nextID, fn: fn})
	return CallbackHandle{id: p.nextID, picker: p, event: event}
}

// Hovered returns the tile under the pointer as of the last Update.
func (p *TilePicker) Hovered() (TilePos, bool) {
	return p.hover, p.hovering
}

// Dragging reports whether a drag is in progress.
func (p *TilePicker) Dragging() bool {
	return p.dragging
}

// Inject queues one frame of synthetic pointer input.
func (p *TilePicker) Inject(s PointerSample) {
	p.queue = append(p.queue, s)
}

// InjectClick queues a left press followed by a release at the same screen
// position. Consumes two frames.
func (p *TilePicker) InjectClick(x, y float64) {
	p.Inject(PointerSample{X: x, Y: y, Pressed: true})
	p.Inject(PointerSample{X: x, Y: y})
}

// InjectDrag queues a left-button drag: a press at (fromX, fromY), frames-2
// evenly spaced moves, and a release at (toX, toY). Minimum frames is 2.
func (p *TilePicker) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.Inject(PointerSample{X: fromX, Y: fromY, Pressed: true})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.Inject(PointerSample{
			X:       fromX + (toX-fromX)*t,
			Y:       fromY + (toY-fromY)*t,
			Pressed: true,
		})
	}
	p.Inject(PointerSample{X: toX, Y: toY})
}

// Update processes one frame of input: the next injected sample if any,
// otherwise the real mouse.
func (p *TilePicker) Update() {
	if len(p.queue) > 0 {
		s := p.queue[0]
		copy(p.queue, p.queue[1:])
		p.queue = p.queue[:len(p.queue)-1]
		p.process(s)
		return
	}
	p.process(readMouse())
}

func readMouse() PointerSample {
	mx, my := ebiten.CursorPosition()
	s := PointerSample{X: float64(mx), Y: float64(my)}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.Pressed, s.Button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		s.Pressed, s.Button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		s.Pressed, s.Button = true, MouseButtonMiddle
	}
	return s
}

func (p *TilePicker) fire(ev TileEvent) {
	for _, h := range p.handlers[ev.Type] {
		h.fn(ev)
	}
}

func (p *TilePicker) process(s PointerSample) {
	pos, onTile := p.m.ScreenToTile(p.cam.View(), s.X, s.Y)
	ev := TileEvent{
		Pos:     pos,
		OnTile:  onTile,
		World:   p.cam.ScreenToWorld(s.X, s.Y),
		ScreenX: s.X,
		ScreenY: s.Y,
		Button:  s.Button,
	}

	if onTile != p.hovering || (onTile && pos != p.hover) {
		if p.hovering {
			leave := ev
			leave.Type, leave.Pos, leave.OnTile = EventTileLeave, p.hover, true
			p.fire(leave)
		}
		if onTile {
			ev.Type = EventTileEnter
			p.fire(ev)
		}
		p.hover, p.hovering = pos, onTile
	}

	switch {
	case s.Pressed && !p.down:
		p.down = true
		p.dragging = false
		p.button = s.Button
		p.startX, p.startY = s.X, s.Y
		p.lastX, p.lastY = s.X, s.Y
		p.pressPos, p.pressOnTile = pos, onTile
		if onTile {
			ev.Type = EventTilePress
			p.fire(ev)
		}

	case !s.Pressed && p.down:
		ev.Button = p.button
		if p.dragging {
			ev.DeltaX, ev.DeltaY = s.X-p.lastX, s.Y-p.lastY
			if p.PanOnDrag {
				p.pan(s.X, s.Y)
			}
			ev.Type = EventDragEnd
			p.fire(ev)
		} else if p.pressOnTile && onTile && pos == p.pressPos {
			ev.Type = EventTileClick
			p.fire(ev)
		}
		if onTile {
			ev.Type = EventTileRelease
			ev.DeltaX, ev.DeltaY = 0, 0
			p.fire(ev)
		}
		p.down = false
		p.dragging = false
		p.pressOnTile = false

	case s.Pressed && p.down:
		ev.Button = p.button
		if s.X == p.lastX && s.Y == p.lastY {
			return
		}
		if !p.dragging && math.Hypot(s.X-p.startX, s.Y-p.startY) > p.DragDeadZone {
			p.dragging = true
			start := ev
			start.Type = EventDragStart
			start.DeltaX, start.DeltaY = s.X-p.startX, s.Y-p.startY
			p.fire(start)
		}
		if p.dragging {
			ev.DeltaX, ev.DeltaY = s.X-p.lastX, s.Y-p.lastY
			if p.PanOnDrag {
				p.pan(s.X, s.Y)
			}
			ev.Type = EventDrag
			p.fire(ev)
		}
		p.lastX, p.lastY = s.X, s.Y
	}
}

// pan moves the camera so the world point under the last pointer position
// ends up under (x, y).
func (p *TilePicker) pan(x, y float64) {
	from := p.cam.ScreenToWorld(p.lastX, p.lastY)
	to := p.cam.ScreenToWorld(x, y)
	p.cam.X -= float64(to.X - from.X)
	p.cam.Y -= float64(to.Y - from.Y)
	p.cam.ClampToBounds()
}
