package tilegrid

import (
	"slices"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestHexRingRadiusZero(t *testing.T) {
	origin := AxialPos{3, -2}
	if got := HexRing(origin, 0); !slices.Equal(got, []AxialPos{origin}) {
		t.Errorf("HexRing(r=0) = %v", got)
	}
}

func TestHexRingSizeAndDistance(t *testing.T) {
	origin := AxialPos{0, 0}
	for r := uint32(1); r <= 4; r++ {
		ring := HexRing(origin, r)
		if len(ring) != int(6*r) {
			t.Errorf("radius %d: len = %d, want %d", r, len(ring), 6*r)
		}
		uniq := mapset.New[AxialPos]()
		for _, p := range ring {
			uniq.Put(p)
			if p.DistanceFrom(origin) != int32(r) {
				t.Errorf("radius %d: %v at distance %d", r, p, p.DistanceFrom(origin))
			}
		}
		if uniq.Size() != len(ring) {
			t.Errorf("radius %d contains duplicates", r)
		}
	}
}

func TestHexRingIsContiguous(t *testing.T) {
	ring := HexRing(AxialPos{1, 1}, 3)
	for i := range ring {
		next := ring[(i+1)%len(ring)]
		if ring[i].DistanceFrom(next) != 1 {
			t.Errorf("ring step %d: %v -> %v not adjacent", i, ring[i], next)
		}
	}
	if ring[0] != (AxialPos{4, 1}) {
		t.Errorf("ring starts at %v, want the HexZero corner", ring[0])
	}
}

func TestHexagonAreaAndRings(t *testing.T) {
	origin := AxialPos{-1, 2}
	for r := uint32(0); r <= 4; r++ {
		hex := Hexagon(origin, r)
		if want := int(1 + 3*r*(r+1)); len(hex) != want {
			t.Errorf("radius %d: len = %d, want %d", r, len(hex), want)
		}
		set := mapset.New[AxialPos]()
		for _, p := range hex {
			set.Put(p)
		}
		for inner := uint32(0); inner <= r; inner++ {
			for _, p := range HexRing(origin, inner) {
				if !set.Has(p) {
					t.Errorf("ring %d element %v missing from hexagon %d", inner, p, r)
				}
			}
		}
	}
}

func TestRectPositions(t *testing.T) {
	got := RectPositions(TilePos{1, 2}, MapSize{2, 2})
	want := []TilePos{{1, 2}, {1, 3}, {2, 2}, {2, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("RectPositions = %v, want %v", got, want)
	}
	if len(RectPositions(TilePos{}, MapSize{0, 5})) != 0 {
		t.Error("empty rect yielded positions")
	}
}

func TestHexagonTilePositionsSkipsNegative(t *testing.T) {
	got := HexagonTilePositions(TilePos{0, 0}, 1, HexRow)
	// Axial (0,0) radius 1 on HexRow: only (0,0), (1,0) and (0,1) are
	// non-negative.
	if len(got) != 3 {
		t.Errorf("got %v", got)
	}
}

func TestFillTilemap(t *testing.T) {
	s := NewTileStorage[int](MapSize{4, 3})
	calls := 0
	FillTilemap(s, func(p TilePos) int {
		calls++
		return p.ToIndex(s.Size())
	})
	if calls != 12 || s.Len() != 12 {
		t.Errorf("calls = %d, len = %d", calls, s.Len())
	}
	if h, _ := s.Get(TilePos{3, 2}); h != 11 {
		t.Errorf("handle at (3,2) = %d", h)
	}
}

func TestFillTilemapRect(t *testing.T) {
	s := NewTileStorage[TilePos](MapSize{5, 5})
	FillTilemapRect(s, TilePos{1, 1}, MapSize{2, 3}, func(p TilePos) TilePos { return p })
	if s.Len() != 6 {
		t.Errorf("Len = %d, want 6", s.Len())
	}
	if _, ok := s.Get(TilePos{0, 0}); ok {
		t.Error("cell outside the rect was filled")
	}
	if h, ok := s.Get(TilePos{2, 3}); !ok || h != (TilePos{2, 3}) {
		t.Errorf("Get(2,3) = %v, %v", h, ok)
	}
}

func TestFillTilemapHexagonClips(t *testing.T) {
	size := MapSize{5, 5}
	s := NewTileStorage[int](size)
	n := FillTilemapHexagon(s, TilePos{2, 2}, 1, HexRowOdd, func(TilePos) int { return 1 })
	if n != 7 || s.Len() != 7 {
		t.Errorf("interior fill: n = %d, len = %d", n, s.Len())
	}

	s = NewTileStorage[int](size)
	spawned := 0
	n = FillTilemapHexagon(s, TilePos{4, 4}, 2, HexRowOdd, func(TilePos) int {
		spawned++
		return 1
	})
	if n != spawned || n != s.Len() {
		t.Errorf("n = %d, spawned = %d, len = %d", n, spawned, s.Len())
	}
	if n >= 19 {
		t.Errorf("corner fill was not clipped: %d", n)
	}
}
