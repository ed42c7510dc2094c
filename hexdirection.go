package tilegrid

// HexDirection names the six neighbors of a hex by index, counter-clockwise
// starting from the +q axis. Compass names depend on the projection; see
// HexRowDirection and HexColDirection.
type HexDirection uint8

const (
	HexZero  HexDirection = iota // (+1,  0)
	HexOne                       // ( 0, +1)
	HexTwo                       // (-1, +1)
	HexThree                     // (-1,  0)
	HexFour                      // ( 0, -1)
	HexFive                      // (+1, -1)
)

// HexDirections lists every HexDirection in order.
var HexDirections = [6]HexDirection{HexZero, HexOne, HexTwo, HexThree, HexFour, HexFive}

// HexOffsets holds the axial unit step for each HexDirection.
var HexOffsets = [6]AxialPos{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

// HexDirectionFromIndex wraps any integer onto the six directions.
func HexDirectionFromIndex(i int) HexDirection {
	i %= 6
	if i < 0 {
		i += 6
	}
	return HexDirection(i)
}

func (d HexDirection) normalize() HexDirection {
	return d % 6
}

// Opposite returns the direction pointing the other way.
func (d HexDirection) Opposite() HexDirection {
	return (d.normalize() + 3) % 6
}

// HexRowDirection gives compass names to hex directions on a pointy-top
// (row) grid. The values equal the HexDirection they name.
type HexRowDirection uint8

const (
	HexRowEast      HexRowDirection = iota // HexZero
	HexRowNorthEast                        // HexOne
	HexRowNorthWest                        // HexTwo
	HexRowWest                             // HexThree
	HexRowSouthWest                        // HexFour
	HexRowSouthEast                        // HexFive
)

// HexDirection returns the indexed direction d names on a row grid.
func (d HexRowDirection) HexDirection() HexDirection {
	return HexDirection(d).normalize()
}

// HexColDirection gives compass names to hex directions on a flat-top
// (column) grid. The values equal the HexDirection they name.
type HexColDirection uint8

const (
	HexColNorthEast HexColDirection = iota // HexZero
	HexColNorth                            // HexOne
	HexColNorthWest                        // HexTwo
	HexColSouthWest                        // HexThree
	HexColSouth                            // HexFour
	HexColSouthEast                        // HexFive
)

// HexDirection returns the indexed direction d names on a column grid.
func (d HexColDirection) HexDirection() HexDirection {
	return HexDirection(d).normalize()
}
