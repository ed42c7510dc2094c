package ecs

import (
	"image"
	"image/color"
	"testing"

	"github.com/phanxgames/tilegrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewTilemap(t *testing.T) {
	world := donburi.NewWorld()
	tm := NewTilemap(world, tilegrid.MapSize{X: 4, Y: 3})
	if tm == nil {
		t.Fatal("NewTilemap returned nil")
	}
	if !world.Valid(tm.Entity()) {
		t.Fatal("map entity not created")
	}
	if got := MapSizeComponent.GetValue(world.Entry(tm.Entity())); got != (tilegrid.MapSize{X: 4, Y: 3}) {
		t.Errorf("map size component = %v", got)
	}
	if tm.Storage.Len() != 0 {
		t.Errorf("new storage has %d tiles", tm.Storage.Len())
	}
}

func TestFillTilemap(t *testing.T) {
	world := donburi.NewWorld()
	tm := NewTilemap(world, tilegrid.MapSize{X: 4, Y: 3})
	FillTilemap(tm, 7)

	if tm.Storage.Len() != 12 {
		t.Fatalf("stored %d tiles, want 12", tm.Storage.Len())
	}
	// 12 tiles plus the map entity.
	if world.Len() != 13 {
		t.Errorf("world has %d entities", world.Len())
	}

	entry, ok := tm.TileAt(tilegrid.TilePos{X: 3, Y: 2})
	if !ok {
		t.Fatal("no tile at (3,2)")
	}
	if got := TilePosComponent.GetValue(entry); got != (tilegrid.TilePos{X: 3, Y: 2}) {
		t.Errorf("TilePos = %v", got)
	}
	if got := TextureIndexComponent.GetValue(entry); got != 7 {
		t.Errorf("TextureIndex = %d", got)
	}
	if got := TilemapIDComponent.GetValue(entry); got != tm.ID() {
		t.Errorf("TilemapID = %v, want %v", got, tm.ID())
	}
	if entry.HasComponent(ColorComponent) {
		t.Error("plain fill added a color")
	}
}

func TestFillTilemapRectColor(t *testing.T) {
	world := donburi.NewWorld()
	tm := NewTilemap(world, tilegrid.MapSize{X: 5, Y: 5})
	tint := color.RGBA{R: 255, A: 128}
	FillTilemapRectColor(tm, 1, tilegrid.TilePos{X: 1, Y: 2}, tilegrid.MapSize{X: 3, Y: 2}, tint)

	if tm.Storage.Len() != 6 {
		t.Fatalf("stored %d tiles, want 6", tm.Storage.Len())
	}
	if _, ok := tm.TileAt(tilegrid.TilePos{X: 0, Y: 0}); ok {
		t.Error("tile outside the rect")
	}
	entry, ok := tm.TileAt(tilegrid.TilePos{X: 3, Y: 3})
	if !ok {
		t.Fatal("no tile at (3,3)")
	}
	if got := ColorComponent.GetValue(entry); got != tint {
		t.Errorf("color = %v", got)
	}
}

func TestFillReplacesExistingTiles(t *testing.T) {
	world := donburi.NewWorld()
	tm := NewTilemap(world, tilegrid.MapSize{X: 3, Y: 3})
	FillTilemap(tm, 1)
	FillTilemapRect(tm, 2, tilegrid.TilePos{}, tilegrid.MapSize{X: 2, Y: 2})

	if world.Len() != 10 {
		t.Errorf("world has %d entities, replaced tiles leaked", world.Len())
	}
	entry, _ := tm.TileAt(tilegrid.TilePos{X: 1, Y: 1})
	if TextureIndexComponent.GetValue(entry) != 2 {
		t.Error("rect fill did not replace the tile")
	}
	entry, _ = tm.TileAt(tilegrid.TilePos{X: 2, Y: 2})
	if TextureIndexComponent.GetValue(entry) != 1 {
		t.Error("tile outside the rect changed")
	}
}

func TestFillTilemapHexagonClips(t *testing.T) {
	world := donburi.NewWorld()
	tm := NewTilemap(world, tilegrid.MapSize{X: 4, Y: 4})
	n := FillTilemapHexagon(tm, 0, tilegrid.TilePos{X: 0, Y: 0}, 2, tilegrid.HexRowEven)
	if n == 0 || n >= 19 {
		t.Fatalf("spawned %d tiles", n)
	}
	if world.Len() != n+1 {
		t.Errorf("world has %d entities for %d tiles", world.Len(), n)
	}
}

func TestTileChangedEvents(t *testing.T) {
	world := donburi.NewWorld()
	tm := NewTilemap(world, tilegrid.MapSize{X: 2, Y: 2})

	var spawned, removed []TileChanged
	TileChangedEvent.Subscribe(world, func(w donburi.World, e TileChanged) {
		if e.Removed {
			removed = append(removed, e)
		} else {
			spawned = append(spawned, e)
		}
	})

	FillTilemap(tm, 0)
	// Events are queued until processed.
	if len(spawned) != 0 {
		t.Fatal("events delivered before ProcessEvents")
	}
	TileChangedEvent.ProcessEvents(world)
	if len(spawned) != 4 {
		t.Fatalf("got %d spawn events", len(spawned))
	}
	for _, e := range spawned {
		if e.Tilemap != tm.ID() {
			t.Errorf("event for tilemap %v", e.Tilemap)
		}
		if got, _ := tm.Storage.Get(e.Pos); got != e.Entity {
			t.Errorf("event entity %v not stored at %v", e.Entity, e.Pos)
		}
	}

	DespawnAll(tm)
	events.ProcessAllEvents(world)
	if len(removed) != 4 {
		t.Errorf("got %d removal events", len(removed))
	}
}

func TestDespawnAll(t *testing.T) {
	world := donburi.NewWorld()
	tm := NewTilemap(world, tilegrid.MapSize{X: 3, Y: 2})
	FillTilemap(tm, 0)
	DespawnAll(tm)

	if tm.Storage.Len() != 0 {
		t.Errorf("storage still has %d tiles", tm.Storage.Len())
	}
	if world.Len() != 1 || !world.Valid(tm.Entity()) {
		t.Errorf("world has %d entities, want only the map", world.Len())
	}
}

func TestRemoveTile(t *testing.T) {
	world := donburi.NewWorld()
	tm := NewTilemap(world, tilegrid.MapSize{X: 2, Y: 2})
	FillTilemap(tm, 0)
	p := tilegrid.TilePos{X: 1, Y: 0}
	if !tm.RemoveTile(p) {
		t.Fatal("RemoveTile reported nothing removed")
	}
	if _, ok := tm.TileAt(p); ok {
		t.Error("tile still stored")
	}
	if tm.RemoveTile(p) {
		t.Error("second RemoveTile reported a tile")
	}
	if tm.RemoveTile(tilegrid.TilePos{X: 9, Y: 9}) {
		t.Error("RemoveTile off the map reported a tile")
	}
}

func TestBridgePicker(t *testing.T) {
	world := donburi.NewWorld()
	size := tilegrid.MapSize{X: 4, Y: 4}
	tm := NewTilemap(world, size)
	FillTilemap(tm, 0)

	m := tilegrid.NewMap(size, tilegrid.GridSize{X: 32, Y: 32}, tilegrid.TileSize{X: 32, Y: 32},
		tilegrid.MapTypeSquare, tilegrid.AnchorNone)
	picker := tilegrid.NewTilePicker(m, tilegrid.NewCamera(image.Rect(0, 0, 800, 600)))
	handles := BridgePicker(world, picker)

	var clicked []donburi.Entity
	PickerEvent.Subscribe(world, func(w donburi.World, e tilegrid.TileEvent) {
		if e.Type != tilegrid.EventTileClick {
			return
		}
		if entry, ok := tm.TileAt(e.Pos); ok {
			clicked = append(clicked, entry.Entity())
		}
	})

	// Tile (1,2) is centered at screen (432, 236).
	picker.InjectClick(432, 236)
	picker.Update()
	picker.Update()
	PickerEvent.ProcessEvents(world)

	want, _ := tm.Storage.Get(tilegrid.TilePos{X: 1, Y: 2})
	if len(clicked) != 1 || clicked[0] != want {
		t.Fatalf("clicked = %v, want [%v]", clicked, want)
	}

	for _, h := range handles {
		h.Remove()
	}
	picker.InjectClick(432, 236)
	picker.Update()
	picker.Update()
	PickerEvent.ProcessEvents(world)
	if len(clicked) != 1 {
		t.Error("events published after the bridge was removed")
	}
}
