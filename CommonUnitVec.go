package plane2d

import (
	"math"
)

/// A 2D direction vector with unit magnitude. Values built through
/// MakeUnitVec or MakeUnitVecFromAngle satisfy X*X + Y*Y == 1 within
/// floating point tolerance, unless they are one of the caller-supplied
/// fallbacks returned for degenerate input.
type UnitVec struct {
	X, Y float64
}

/// Predefined directions usable as MakeUnitVec fallbacks.
var UnitVecRight = UnitVec{X: 1.0, Y: 0.0}
var UnitVecLeft = UnitVec{X: -1.0, Y: 0.0}
var UnitVecUp = UnitVec{X: 0.0, Y: 1.0}
var UnitVecDown = UnitVec{X: 0.0, Y: -1.0}

/// The zero fallback. Callers that prefer a null direction over an
/// arbitrary one for degenerate input can pass this; it is the one
/// UnitVec that deliberately breaks the unit-magnitude invariant.
var UnitVecZero = UnitVec{X: 0.0, Y: 0.0}

/// A direction paired with the magnitude of the vector it was derived
/// from. Magnitude is zero exactly when Dir is the fallback.
type PolarCoord struct {
	Dir       UnitVec
	Magnitude float64
}

/// Construct a unit vector from an arbitrary vector, robustly.
///
/// Fast path: when x*x + y*y is a normal number, a plain square root and
/// divide is accurate. Near the extremes of the floating point range
/// (underflow, overflow, non-finite input) the squared magnitude is not
/// trustworthy and the magnitude is recomputed with the slower but stable
/// two-argument hypot. When neither strategy yields a normal magnitude
/// (zero vector, NaN or Inf components) the fallback is returned with a
/// reported magnitude of exactly zero. Never returns NaN or Inf.
func MakeUnitVec(x, y float64, fallback UnitVec) (UnitVec, float64) {
	magnitudeSquared := x*x + y*y
	if IsNormal(magnitudeSquared) {
		magnitude := math.Sqrt(magnitudeSquared)
		return UnitVec{X: x / magnitude, Y: y / magnitude}, magnitude
	}

	magnitude := math.Hypot(x, y)
	if IsNormal(magnitude) {
		return UnitVec{X: x / magnitude, Y: y / magnitude}, magnitude
	}

	return fallback, 0.0
}

/// Construct a unit vector for an angle in radians. Always exactly unit
/// length by construction; MakeUnitVecFromAngle(0) is UnitVecRight.
func MakeUnitVecFromAngle(anglerad float64) UnitVec {
	return UnitVec{X: math.Cos(anglerad), Y: math.Sin(anglerad)}
}

/// Construct the direction and magnitude of a vector, robustly.
/// Equivalent to MakeUnitVec on the vector's components.
func MakePolarCoord(v Vec2, fallback UnitVec) PolarCoord {
	dir, magnitude := MakeUnitVec(v.X, v.Y, fallback)
	return PolarCoord{Dir: dir, Magnitude: magnitude}
}

func (u UnitVec) GetVec2() Vec2 {
	return MakeVec2(u.X, u.Y)
}

/// Negate this direction.
func (u UnitVec) OperatorNegate() UnitVec {
	return UnitVec{X: -u.X, Y: -u.Y}
}

/// Get the direction rotated 90 degrees counter-clockwise.
func (u UnitVec) Skew() UnitVec {
	return UnitVec{X: -u.Y, Y: u.X}
}

/// Rotate a vector by this direction treated as a rotation.
func (u UnitVec) Rotate(v Vec2) Vec2 {
	return MakeVec2(u.X*v.X-u.Y*v.Y, u.Y*v.X+u.X*v.Y)
}

/// Rotate a direction. Rotation preserves unit magnitude.
func RotUnitVecMul(q Rot, u UnitVec) UnitVec {
	return UnitVec{X: q.C*u.X - q.S*u.Y, Y: q.S*u.X + q.C*u.Y}
}
