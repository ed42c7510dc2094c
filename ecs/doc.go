// Package ecs stores tilemaps as [Donburi] entities.
//
// A [Tilemap] owns a map entity and a tilegrid.TileStorage of tile
// entities. The fill helpers spawn one entity per tile carrying
// [TilePosComponent], [TextureIndexComponent] and [TilemapIDComponent],
// record it in storage, and publish a [TileChanged] on [TileChangedEvent]:
//
//	world := donburi.NewWorld()
//	tm := ecs.NewTilemap(world, tilegrid.MapSize{X: 16, Y: 16})
//	ecs.FillTilemapHexagon(tm, 3, tilegrid.TilePos{X: 8, Y: 8}, 4, tilegrid.HexRowOdd)
//	ecs.TileChangedEvent.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
