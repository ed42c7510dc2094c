package ecs

import (
	"image/color"

	"github.com/phanxgames/tilegrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TextureIndex selects a tile image from the tilemap's texture.
type TextureIndex uint32

// TilemapID points a tile back at the entity of the map that owns it.
type TilemapID struct {
	Entity donburi.Entity
}

// Tile and map components.
var (
	TilePosComponent      = donburi.NewComponentType[tilegrid.TilePos]()
	TextureIndexComponent = donburi.NewComponentType[TextureIndex]()
	ColorComponent        = donburi.NewComponentType[color.RGBA]()
	TilemapIDComponent    = donburi.NewComponentType[TilemapID]()
	MapSizeComponent      = donburi.NewComponentType[tilegrid.MapSize]()
)

// TileChanged is published when a fill spawns a tile or DespawnAll removes one.
type TileChanged struct {
	Tilemap TilemapID
	Pos     tilegrid.TilePos
	Entity  donburi.Entity
	Removed bool
}

// TileChangedEvent is the Donburi event type for TileChanged. Events are
// queued; call ProcessEvents to deliver them.
var TileChangedEvent = events.NewEventType[TileChanged]()

// Tilemap is a map entity plus the storage of its tile entities.
type Tilemap struct {
	world   donburi.World
	entity  donburi.Entity
	Storage *tilegrid.TileStorage[donburi.Entity]
}

// NewTilemap creates the map entity and an empty storage of the given size.
func NewTilemap(world donburi.World, size tilegrid.MapSize) *Tilemap {
	e := world.Create(MapSizeComponent)
	MapSizeComponent.SetValue(world.Entry(e), size)
	return &Tilemap{
		world:   world,
		entity:  e,
		Storage: tilegrid.NewTileStorage[donburi.Entity](size),
	}
}

// ID returns the component value tiles of this map carry.
func (tm *Tilemap) ID() TilemapID { return TilemapID{Entity: tm.entity} }

// Entity returns the map entity.
func (tm *Tilemap) Entity() donburi.Entity { return tm.entity }

// TileAt returns the entry of the tile stored at p.
func (tm *Tilemap) TileAt(p tilegrid.TilePos) (*donburi.Entry, bool) {
	e, ok := tm.Storage.CheckedGet(p)
	if !ok || !tm.world.Valid(e) {
		return nil, false
	}
	return tm.world.Entry(e), true
}

// RemoveTile despawns the tile at p. It reports false if there was none.
func (tm *Tilemap) RemoveTile(p tilegrid.TilePos) bool {
	e, ok := tm.Storage.CheckedRemove(p)
	if !ok {
		return false
	}
	if tm.world.Valid(e) {
		tm.world.Remove(e)
	}
	return true
}

// spawner returns a spawn callback for the tilegrid fill helpers. A tile
// already stored at the position is despawned first.
func (tm *Tilemap) spawner(tex TextureIndex, tint *color.RGBA) func(tilegrid.TilePos) donburi.Entity {
	id := tm.ID()
	return func(p tilegrid.TilePos) donburi.Entity {
		if old, ok := tm.Storage.CheckedGet(p); ok && tm.world.Valid(old) {
			tm.world.Remove(old)
		}
		var e donburi.Entity
		if tint != nil {
			e = tm.world.Create(TilePosComponent, TextureIndexComponent, TilemapIDComponent, ColorComponent)
		} else {
			e = tm.world.Create(TilePosComponent, TextureIndexComponent, TilemapIDComponent)
		}
		entry := tm.world.Entry(e)
		TilePosComponent.SetValue(entry, p)
		TextureIndexComponent.SetValue(entry, tex)
		TilemapIDComponent.SetValue(entry, id)
		if tint != nil {
			ColorComponent.SetValue(entry, *tint)
		}
		TileChangedEvent.Publish(tm.world, TileChanged{Tilemap: id, Pos: p, Entity: e})
		return e
	}
}

// FillTilemap spawns a tile with the given texture on every cell of the map.
func FillTilemap(tm *Tilemap, tex TextureIndex) {
	tilegrid.FillTilemap(tm.Storage, tm.spawner(tex, nil))
}

// FillTilemapRect spawns tiles on the rectangle of size cells starting at
// origin. The rectangle must lie on the map.
func FillTilemapRect(tm *Tilemap, tex TextureIndex, origin tilegrid.TilePos, size tilegrid.MapSize) {
	tilegrid.FillTilemapRect(tm.Storage, origin, size, tm.spawner(tex, nil))
}

// FillTilemapRectColor is FillTilemapRect with a ColorComponent on each tile.
func FillTilemapRectColor(tm *Tilemap, tex TextureIndex, origin tilegrid.TilePos, size tilegrid.MapSize, tint color.RGBA) {
	tilegrid.FillTilemapRect(tm.Storage, origin, size, tm.spawner(tex, &tint))
}

// FillTilemapHexagon spawns tiles on the hexagon of radius around origin.
// Cells off the map are skipped. It returns the number of tiles spawned.
func FillTilemapHexagon(tm *Tilemap, tex TextureIndex, origin tilegrid.TilePos, radius uint32, sys tilegrid.HexCoordSystem) int {
	return tilegrid.FillTilemapHexagon(tm.Storage, origin, radius, sys, tm.spawner(tex, nil))
}

// DespawnAll removes every tile entity of the map and empties its storage.
// The map entity itself is kept.
func DespawnAll(tm *Tilemap) {
	id := tm.ID()
	var removed []TileChanged
	tm.Storage.Each(func(p tilegrid.TilePos, e donburi.Entity) {
		removed = append(removed, TileChanged{Tilemap: id, Pos: p, Entity: e, Removed: true})
	})
	for _, e := range tm.Storage.Drain() {
		if tm.world.Valid(e) {
			tm.world.Remove(e)
		}
	}
	for _, ev := range removed {
		TileChangedEvent.Publish(tm.world, ev)
	}
}

// PickerEvent is the Donburi event type for tilegrid picker events.
// Subscribe to it in ECS systems to react to hovered and clicked tiles.
var PickerEvent = events.NewEventType[tilegrid.TileEvent]()

// BridgePicker publishes every event of picker to PickerEvent in world.
// Remove the returned handles to disconnect.
func BridgePicker(world donburi.World, picker *tilegrid.TilePicker) []tilegrid.CallbackHandle {
	types := []tilegrid.TileEventType{
		tilegrid.EventTileEnter, tilegrid.EventTileLeave,
		tilegrid.EventTilePress, tilegrid.EventTileRelease, tilegrid.EventTileClick,
		tilegrid.EventDragStart, tilegrid.EventDrag, tilegrid.EventDragEnd,
	}
	handles := make([]tilegrid.CallbackHandle, len(types))
	for i, typ := range types {
		handles[i] = picker.On(typ, func(e tilegrid.TileEvent) {
			PickerEvent.Publish(world, e)
		})
	}
	return handles
}
