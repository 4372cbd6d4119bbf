package plane2d

import (
	"math"
)

/// A 2D column vector.
type Vec2 struct {
	X, Y float64
}

func MakeVec2(xIn, yIn float64) Vec2 {
	return Vec2{
		X: xIn,
		Y: yIn,
	}
}

func NewVec2(xIn, yIn float64) *Vec2 {
	res := MakeVec2(xIn, yIn)
	return &res
}

/// Set this vector to all zeros.
func (v *Vec2) SetZero() {
	v.X = 0.0
	v.Y = 0.0
}

/// Set this vector to some specified coordinates.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

/// Negate this vector.
func (v Vec2) OperatorNegate() Vec2 {
	return MakeVec2(-v.X, -v.Y)
}

/// Add a vector to this vector.
func (v *Vec2) OperatorPlusInplace(other Vec2) {
	v.X += other.X
	v.Y += other.Y
}

/// Subtract a vector from this vector.
func (v *Vec2) OperatorMinusInplace(other Vec2) {
	v.X -= other.X
	v.Y -= other.Y
}

/// Multiply this vector by a scalar.
func (v *Vec2) OperatorScalarMulInplace(a float64) {
	v.X *= a
	v.Y *= a
}

/// Get the length of this vector (the norm).
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

/// Get the length squared. For performance, use this instead of
/// Length (if possible).
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

/// Does this vector contain finite coordinates?
func (v Vec2) IsValid() bool {
	return IsValid(v.X) && IsValid(v.Y)
}

/// Get the skew vector such that dot(skew_vec, other) == cross(vec, other)
func (v Vec2) Skew() Vec2 {
	return MakeVec2(-v.Y, v.X)
}

func (v Vec2) Clone() Vec2 {
	return MakeVec2(v.X, v.Y)
}

///////////////////////////////////////////////////////////////////////////////

/// Rotation
type Rot struct {
	/// Sine and cosine
	S, C float64
}

func MakeRot() Rot {
	return Rot{
		S: 0.0,
		C: 1.0,
	}
}

/// Initialize from an angle in radians.
func MakeRotFromAngle(anglerad float64) Rot {
	return Rot{
		S: math.Sin(anglerad),
		C: math.Cos(anglerad),
	}
}

/// Set using an angle in radians.
func (r *Rot) Set(anglerad float64) {
	r.S = math.Sin(anglerad)
	r.C = math.Cos(anglerad)
}

/// Set to the identity rotation.
func (r *Rot) SetIdentity() {
	r.S = 0.0
	r.C = 1.0
}

/// Get the angle in radians.
func (r Rot) GetAngle() float64 {
	return math.Atan2(r.S, r.C)
}

/// Get the x-axis.
func (r Rot) GetXAxis() Vec2 {
	return MakeVec2(r.C, r.S)
}

/// Get the u-axis.
func (r Rot) GetYAxis() Vec2 {
	return MakeVec2(-r.S, r.C)
}

///////////////////////////////////////////////////////////////////////////////

/// A transform contains translation and rotation. It is used to represent
/// the position and orientation of rigid frames.
type Transform struct {
	P Vec2
	Q Rot
}

func MakeTransform() Transform {
	return Transform{
		P: MakeVec2(0, 0),
		Q: MakeRot(),
	}
}

/// Initialize using a position vector and a rotation.
func MakeTransformByPositionAndRotation(position Vec2, rotation Rot) Transform {
	return Transform{
		P: position,
		Q: rotation,
	}
}

/// Set this to the identity transform.
func (t *Transform) SetIdentity() {
	t.P.SetZero()
	t.Q.SetIdentity()
}

/// Set this based on the position and angle.
func (t *Transform) Set(position Vec2, anglerad float64) {
	t.P = position
	t.Q.Set(anglerad)
}

///////////////////////////////////////////////////////////////////////////////

/// Useful constant
var Vec2_zero = MakeVec2(0, 0)

/// Perform the dot product on two vectors.
func Vec2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

/// Perform the cross product on two vectors. In 2D this produces a scalar.
func Vec2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

/// Perform the cross product on a vector and a scalar. In 2D this produces
/// a vector.
func Vec2CrossVectorScalar(a Vec2, s float64) Vec2 {
	return MakeVec2(s*a.Y, -s*a.X)
}

/// Perform the cross product on a scalar and a vector. In 2D this produces
/// a vector.
func Vec2CrossScalarVector(s float64, a Vec2) Vec2 {
	return MakeVec2(-s*a.Y, s*a.X)
}

/// Add two vectors component-wise.
func Vec2Add(a, b Vec2) Vec2 {
	return MakeVec2(a.X+b.X, a.Y+b.Y)
}

/// Subtract two vectors component-wise.
func Vec2Sub(a, b Vec2) Vec2 {
	return MakeVec2(a.X-b.X, a.Y-b.Y)
}

func Vec2MulScalar(s float64, a Vec2) Vec2 {
	return MakeVec2(s*a.X, s*a.Y)
}

func Vec2Equals(a, b Vec2) bool {
	return a.X == b.X && a.Y == b.Y
}

func Vec2Distance(a, b Vec2) float64 {
	c := Vec2Sub(a, b)
	return c.Length()
}

func Vec2DistanceSquared(a, b Vec2) float64 {
	c := Vec2Sub(a, b)
	return Vec2Dot(c, c)
}

func Vec2Min(a, b Vec2) Vec2 {
	return MakeVec2(
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
	)
}

func Vec2Max(a, b Vec2) Vec2 {
	return MakeVec2(
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
	)
}

/// Multiply two rotations: q * r
func RotMul(q, r Rot) Rot {
	// [qc -qs] * [rc -rs] = [qc*rc-qs*rs -qc*rs-qs*rc]
	// [qs  qc]   [rs  rc]   [qs*rc+qc*rs -qs*rs+qc*rc]
	// s = qs * rc + qc * rs
	// c = qc * rc - qs * rs
	return Rot{
		S: q.S*r.C + q.C*r.S,
		C: q.C*r.C - q.S*r.S,
	}
}

/// Transpose multiply two rotations: qT * r
func RotMulT(q, r Rot) Rot {
	// [ qc qs] * [rc -rs] = [qc*rc+qs*rs -qc*rs+qs*rc]
	// [-qs qc]   [rs  rc]   [-qs*rc+qc*rs qs*rs+qc*rc]
	// s = qc * rs - qs * rc
	// c = qc * rc + qs * rs
	return Rot{
		S: q.C*r.S - q.S*r.C,
		C: q.C*r.C + q.S*r.S,
	}
}

/// Rotate a vector
func RotVec2Mul(q Rot, v Vec2) Vec2 {
	return MakeVec2(q.C*v.X-q.S*v.Y, q.S*v.X+q.C*v.Y)
}

/// Inverse rotate a vector
func RotVec2MulT(q Rot, v Vec2) Vec2 {
	return MakeVec2(q.C*v.X+q.S*v.Y, -q.S*v.X+q.C*v.Y)
}

func TransformVec2Mul(T Transform, v Vec2) Vec2 {
	x := (T.Q.C*v.X - T.Q.S*v.Y) + T.P.X
	y := (T.Q.S*v.X + T.Q.C*v.Y) + T.P.Y

	return MakeVec2(x, y)
}

func TransformVec2MulT(T Transform, v Vec2) Vec2 {
	px := v.X - T.P.X
	py := v.Y - T.P.Y
	x := T.Q.C*px + T.Q.S*py
	y := -T.Q.S*px + T.Q.C*py

	return MakeVec2(x, y)
}

// v2 = A.q.Rot(B.q.Rot(v1) + B.p) + A.p
//    = (A.q * B.q).Rot(v1) + A.q.Rot(B.p) + A.p
func TransformMul(A, B Transform) Transform {
	q := RotMul(A.Q, B.Q)
	p := Vec2Add(RotVec2Mul(A.Q, B.P), A.P)
	return MakeTransformByPositionAndRotation(p, q)
}

// v2 = A.q' * (B.q * v1 + B.p - A.p)
//    = A.q' * B.q * v1 + A.q' * (B.p - A.p)
func TransformMulT(A, B Transform) Transform {
	q := RotMulT(A.Q, B.Q)
	p := RotVec2MulT(A.Q, Vec2Sub(B.P, A.P))
	return MakeTransformByPositionAndRotation(p, q)
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

///////////////////////////////////////////////////////////////////////////////

/// An axis aligned bounding box.
type AABB struct {
	LowerBound Vec2
	UpperBound Vec2
}

func MakeAABB() AABB {
	return AABB{}
}

/// Verify that the bounds are sorted.
func (bb AABB) IsValid() bool {
	d := Vec2Sub(bb.UpperBound, bb.LowerBound)
	valid := d.X >= 0.0 && d.Y >= 0.0
	valid = valid && bb.LowerBound.IsValid() && bb.UpperBound.IsValid()
	return valid
}

/// Get the center of the AABB.
func (bb AABB) GetCenter() Vec2 {
	return Vec2MulScalar(0.5, Vec2Add(bb.LowerBound, bb.UpperBound))
}

/// Get the extents of the AABB (half-widths).
func (bb AABB) GetExtents() Vec2 {
	return Vec2MulScalar(0.5, Vec2Sub(bb.UpperBound, bb.LowerBound))
}

/// Get the perimeter length.
func (bb AABB) GetPerimeter() float64 {
	wx := bb.UpperBound.X - bb.LowerBound.X
	wy := bb.UpperBound.Y - bb.LowerBound.Y
	return 2.0 * (wx + wy)
}

/// Combine an AABB into this one.
func (bb *AABB) CombineInPlace(aabb AABB) {
	bb.LowerBound = Vec2Min(bb.LowerBound, aabb.LowerBound)
	bb.UpperBound = Vec2Max(bb.UpperBound, aabb.UpperBound)
}

/// Combine two AABBs into this one.
func (bb *AABB) CombineTwoInPlace(aabb1, aabb2 AABB) {
	bb.LowerBound = Vec2Min(aabb1.LowerBound, aabb2.LowerBound)
	bb.UpperBound = Vec2Max(aabb1.UpperBound, aabb2.UpperBound)
}

/// Does this aabb contain the provided AABB?
func (bb AABB) Contains(aabb AABB) bool {
	result := true
	result = result && bb.LowerBound.X <= aabb.LowerBound.X
	result = result && bb.LowerBound.Y <= aabb.LowerBound.Y
	result = result && aabb.UpperBound.X <= bb.UpperBound.X
	result = result && aabb.UpperBound.Y <= bb.UpperBound.Y
	return result
}

func TestOverlapBoundingBoxes(a, b AABB) bool {
	d1 := Vec2Sub(b.LowerBound, a.UpperBound)
	d2 := Vec2Sub(a.LowerBound, b.UpperBound)

	if d1.X > 0.0 || d1.Y > 0.0 {
		return false
	}

	if d2.X > 0.0 || d2.Y > 0.0 {
		return false
	}

	return true
}
