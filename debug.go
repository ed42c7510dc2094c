package tilegrid

import (
	"fmt"
	"log"
	"os"
)

// globalDebug enables diagnostic logging for operations that silently drop
// work: checked storage writes off the map, clipped hexagon fills, and
// defaulted config fields. Geometry functions never log.
var globalDebug bool

// SetDebug enables or disables diagnostic logging.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugCheckMap warns on stderr when a map configuration would make the
// projections degenerate. Callers validate first; this only catches misuse
// while debugging.
func debugCheckMap(size MapSize, grid GridSize, tile TileSize) {
	if !globalDebug {
		return
	}
	if size.X == 0 || size.Y == 0 {
		_, _ = fmt.Fprintf(os.Stderr, "[tilegrid] warning: empty map %dx%d\n", size.X, size.Y)
	}
	if !(grid.X > 0) || !(grid.Y > 0) {
		_, _ = fmt.Fprintf(os.Stderr, "[tilegrid] warning: non-positive grid size %gx%g\n", grid.X, grid.Y)
	}
	if !(tile.X > 0) || !(tile.Y > 0) {
		_, _ = fmt.Fprintf(os.Stderr, "[tilegrid] warning: non-positive tile size %gx%g\n", tile.X, tile.Y)
	}
}

// debugf logs a tilegrid-prefixed message when debugging is enabled.
func debugf(format string, args ...any) {
	if globalDebug {
		log.Printf("tilegrid: "+format, args...)
	}
}
