package plane2d

import "math"

func Assert(a bool) {
	if !a {
		panic("Assert")
	}
}

const MaxFloat = math.MaxFloat64
const Epsilon = math.SmallestNonzeroFloat64
const Pi = math.Pi

// Smallest positive normal float64. Below this, division loses precision
// and the fast normalization path cannot be trusted.
const MinNormalFloat = 0x1p-1022

/// @file
/// Global tuning constants based on meters-kilograms-seconds (MKS) units.
///

/// You can use this to change the length scale used by your game.
/// For example for inches you could use 39.4.
const LengthUnitsPerMeter = 1.0

/// The maximum number of vertices on a convex polygon.
const MaxPolygonVertices = 8

/// This is used to fatten AABBs registered with the broad-phase. This allows
/// proxies to move by a small amount without being re-registered.
/// This is in meters.
const AABBExtension = 0.1 * LengthUnitsPerMeter

/// A small length used as a collision and constraint tolerance. Usually it is
/// chosen to be numerically significant, but visually insignificant.
const LinearSlop = 0.005 * LengthUnitsPerMeter

/// The default radius of the polygon/edge shape skin. Making this smaller
/// means polygons will have an insufficient buffer for rounded collision.
/// Making it larger may create artifacts for vertex collision.
const PolygonRadius = 2.0 * LinearSlop

// IsValid reports whether x is a finite, non-NaN number.
func IsValid(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsNormal reports whether x is a positive normal number: neither zero,
// subnormal, infinite nor NaN. NaN fails every comparison, so no explicit
// check is needed.
func IsNormal(x float64) bool {
	return x >= MinNormalFloat && x <= MaxFloat
}
