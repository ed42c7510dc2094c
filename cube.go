package tilegrid

import "math"

// CubePos is a hex position in cube coordinates. The three components
// always satisfy Q+R+S == 0; S is redundant but makes distances and
// rotations symmetric.
type CubePos struct {
	Q, R, S int32
}

// Axial drops the redundant S component.
func (c CubePos) Axial() AxialPos {
	return AxialPos{Q: c.Q, R: c.R}
}

// Add returns c+o.
func (c CubePos) Add(o CubePos) CubePos { return CubePos{c.Q + o.Q, c.R + o.R, c.S + o.S} }

// Sub returns c-o.
func (c CubePos) Sub(o CubePos) CubePos { return CubePos{c.Q - o.Q, c.R - o.R, c.S - o.S} }

// Scale returns c multiplied by k.
func (c CubePos) Scale(k int32) CubePos { return CubePos{k * c.Q, k * c.R, k * c.S} }

// Magnitude returns the hex distance from the origin.
func (c CubePos) Magnitude() int32 {
	return max(abs32(c.Q), abs32(c.R), abs32(c.S))
}

// RotateRight rotates c by 60 degrees clockwise around the origin, as seen
// in world space (Y up). It steps HexDirection n to n-1.
func (c CubePos) RotateRight() CubePos {
	return CubePos{Q: -c.S, R: -c.Q, S: -c.R}
}

// RotateLeft rotates c by 60 degrees counter-clockwise around the origin.
// It steps HexDirection n to n+1.
func (c CubePos) RotateLeft() CubePos {
	return CubePos{Q: -c.R, R: -c.S, S: -c.Q}
}

// FractionalCubePos is a continuous cube position, produced by inverse
// projection before it is snapped to the lattice.
type FractionalCubePos struct {
	Q, R, S float32
}

// Round snaps the position to the nearest valid cube position. Each axis is
// rounded independently, then the axis with the largest rounding error is
// recomputed from the other two so that Q+R+S == 0 holds exactly.
func (f FractionalCubePos) Round() CubePos {
	fq := clampCoord(float64(f.Q))
	fr := clampCoord(float64(f.R))
	fs := clampCoord(float64(f.S))

	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return CubePos{Q: int32(q), R: int32(r), S: int32(s)}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
