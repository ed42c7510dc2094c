package tilegrid

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Layout matrices are f32.Aff3 values in row-major order:
//
//	| m[0]  m[1]  m[2] |
//	| m[3]  m[4]  m[5] |
//	|  0     0     1   |
//
// so that x' = m[0]*x + m[1]*y + m[2] and y' = m[3]*x + m[4]*y + m[5].
// Projections are purely linear; the translation column stays zero.

// identityTransform is the identity affine matrix.
var identityTransform = f32.Aff3{1, 0, 0, 0, 1, 0}

const sqrt3 = 1.7320508075688772

// Unit bases, given as the world images of the native x/q and y/r axes.
var (
	// rowBasis maps axial (q, r) of a pointy-top grid into unit world space.
	rowBasis = basis(Vec2{1, 0}, Vec2{0.5, sqrt3 / 2})
	// colBasis maps axial (q, r) of a flat-top grid into unit world space.
	colBasis = basis(Vec2{sqrt3 / 2, 0.5}, Vec2{0, 1})
	// diamondBasis maps diamond (x, y) into unit world space.
	diamondBasis = basis(Vec2{0.5, -0.5}, Vec2{0.5, 0.5})
	// staggerShear maps staggered (x, y) onto diamond (x, y+x).
	staggerShear = basis(Vec2{1, 1}, Vec2{0, 1})
)

// basis builds a linear transform whose columns are the images of the x
// and y unit vectors.
func basis(xAxis, yAxis Vec2) f32.Aff3 {
	return f32.Aff3{xAxis.X, yAxis.X, 0, xAxis.Y, yAxis.Y, 0}
}

// scaleTransform returns a transform scaling x by sx and y by sy.
func scaleTransform(sx, sy float32) f32.Aff3 {
	return f32.Aff3{sx, 0, 0, 0, sy, 0}
}

// multiplyAffine multiplies two affine matrices: result = p * c, so c is
// applied first.
func multiplyAffine(p, c f32.Aff3) f32.Aff3 {
	return f32.Aff3{
		p[0]*c[0] + p[1]*c[3],
		p[0]*c[1] + p[1]*c[4],
		p[0]*c[2] + p[1]*c[5] + p[2],
		p[3]*c[0] + p[4]*c[3],
		p[3]*c[1] + p[4]*c[4],
		p[3]*c[2] + p[4]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of an affine matrix. The determinant
// and cofactors are evaluated in float64 to keep round trips exact at
// tile centers. Returns the identity matrix if the matrix is singular.
func invertAffine(m f32.Aff3) f32.Aff3 {
	a, b, c := float64(m[0]), float64(m[1]), float64(m[2])
	d, e, f := float64(m[3]), float64(m[4]), float64(m[5])
	det := a*e - b*d
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	inv := 1.0 / det
	ia := e * inv
	ib := -b * inv
	id := -d * inv
	ie := a * inv
	return f32.Aff3{
		float32(ia), float32(ib), float32(-(ia*c + ib*f)),
		float32(id), float32(ie), float32(-(id*c + ie*f)),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m f32.Aff3, p Vec2) Vec2 {
	return Vec2{
		m[0]*p.X + m[1]*p.Y + m[2],
		m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// squareProjection maps square (x, y) to world space.
func squareProjection(grid GridSize) f32.Aff3 {
	return scaleTransform(grid.X, grid.Y)
}

// rowProjection maps pointy-top axial (q, r) to world space. Rows are
// stacked at three quarters of the grid height so that a grid cell sized
// to the hexagon's bounding box tiles without gaps.
func rowProjection(grid GridSize) f32.Aff3 {
	return multiplyAffine(scaleTransform(grid.X, rowBasis[4]*grid.Y), rowBasis)
}

// colProjection maps flat-top axial (q, r) to world space. Columns are
// stacked at three quarters of the grid width.
func colProjection(grid GridSize) f32.Aff3 {
	return multiplyAffine(scaleTransform(colBasis[0]*grid.X, grid.Y), colBasis)
}

// diamondProjection maps diamond (x, y) to world space.
func diamondProjection(grid GridSize) f32.Aff3 {
	return multiplyAffine(scaleTransform(grid.X, grid.Y), diamondBasis)
}

// staggeredProjection maps staggered (x, y) to world space.
func staggeredProjection(grid GridSize) f32.Aff3 {
	return multiplyAffine(diamondProjection(grid), staggerShear)
}

// coordLimit bounds native coordinates produced from world positions. It
// leaves headroom so sums and differences of two coordinates fit in int32.
// Positions beyond it are off any map.
const coordLimit = 1 << 29

// clampCoord limits v to [-coordLimit, coordLimit] before the int32
// conversion. NaN maps to -coordLimit.
func clampCoord(v float64) float64 {
	if !(v > -coordLimit) {
		return -coordLimit
	}
	return min(v, coordLimit)
}

// roundHalfUp rounds v to the nearest integer, resolving ties toward
// positive infinity. This is the tie-break for world positions lying
// exactly on a cell boundary.
func roundHalfUp(v float32) int32 {
	return int32(clampCoord(math.Floor(float64(v) + 0.5)))
}
