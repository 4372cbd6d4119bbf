package plane2d_test

import (
	"math"
	"testing"

	"github.com/plane2d/plane2d"
)

const unitTolerance = 1e-12

func checkUnit(t *testing.T, u plane2d.UnitVec) {
	t.Helper()
	norm := math.Sqrt(u.X*u.X + u.Y*u.Y)
	if math.Abs(norm-1.0) > unitTolerance {
		t.Fatalf("expected unit magnitude, got %v for (%v, %v)", norm, u.X, u.Y)
	}
}

func TestMakeUnitVec(t *testing.T) {
	dir, magnitude := plane2d.MakeUnitVec(3.0, 4.0, plane2d.UnitVecRight)
	if dir.X != 0.6 || dir.Y != 0.8 {
		t.Fatalf("expected (0.6, 0.8), got (%v, %v)", dir.X, dir.Y)
	}
	if magnitude != 5.0 {
		t.Fatalf("expected magnitude 5, got %v", magnitude)
	}
	checkUnit(t, dir)
}

func TestMakeUnitVecZeroVectorReturnsFallback(t *testing.T) {
	dir, magnitude := plane2d.MakeUnitVec(0.0, 0.0, plane2d.UnitVecLeft)
	if dir != plane2d.UnitVecLeft {
		t.Fatalf("expected the fallback, got (%v, %v)", dir.X, dir.Y)
	}
	if magnitude != 0.0 {
		t.Fatalf("expected magnitude exactly 0, got %v", magnitude)
	}
}

func TestMakeUnitVecSubnormalSquaredMagnitude(t *testing.T) {
	// 1e-200 squared underflows to zero; the hypot path must still
	// recover the direction.
	dir, magnitude := plane2d.MakeUnitVec(1e-200, 0.0, plane2d.UnitVecUp)
	if dir != plane2d.UnitVecRight {
		t.Fatalf("expected (1, 0), got (%v, %v)", dir.X, dir.Y)
	}
	if magnitude != 1e-200 {
		t.Fatalf("expected magnitude 1e-200, got %v", magnitude)
	}
}

func TestMakeUnitVecOverflowingSquaredMagnitude(t *testing.T) {
	// 1e300 squared overflows to +Inf; the hypot path must still recover
	// the direction.
	dir, magnitude := plane2d.MakeUnitVec(3e300, 4e300, plane2d.UnitVecUp)
	if math.Abs(dir.X-0.6) > unitTolerance || math.Abs(dir.Y-0.8) > unitTolerance {
		t.Fatalf("expected (0.6, 0.8), got (%v, %v)", dir.X, dir.Y)
	}
	if math.Abs(magnitude-5e300)/5e300 > unitTolerance {
		t.Fatalf("expected magnitude 5e300, got %v", magnitude)
	}
	checkUnit(t, dir)
}

func TestMakeUnitVecNonFiniteInputReturnsFallback(t *testing.T) {
	inputs := []struct {
		x, y float64
	}{
		{math.NaN(), 1.0},
		{1.0, math.NaN()},
		{math.Inf(1), 0.0},
		{0.0, math.Inf(-1)},
		{math.Inf(1), math.Inf(1)},
	}

	for _, input := range inputs {
		dir, magnitude := plane2d.MakeUnitVec(input.x, input.y, plane2d.UnitVecDown)
		if dir != plane2d.UnitVecDown {
			t.Fatalf("input (%v, %v): expected the fallback, got (%v, %v)", input.x, input.y, dir.X, dir.Y)
		}
		if magnitude != 0.0 {
			t.Fatalf("input (%v, %v): expected magnitude 0, got %v", input.x, input.y, magnitude)
		}
	}
}

func TestMakeUnitVecNeverReturnsNaN(t *testing.T) {
	inputs := [][2]float64{
		{0, 0}, {math.NaN(), math.NaN()}, {math.Inf(1), math.NaN()},
		{1e-308, 1e-308}, {1e308, 1e308}, {-2, 7},
	}

	for _, input := range inputs {
		dir, magnitude := plane2d.MakeUnitVec(input[0], input[1], plane2d.UnitVecRight)
		if math.IsNaN(dir.X) || math.IsNaN(dir.Y) || math.IsInf(dir.X, 0) || math.IsInf(dir.Y, 0) {
			t.Fatalf("input %v: non-finite direction (%v, %v)", input, dir.X, dir.Y)
		}
		if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
			t.Fatalf("input %v: non-finite magnitude %v", input, magnitude)
		}
	}
}

func TestMakeUnitVecFromAngle(t *testing.T) {
	if got := plane2d.MakeUnitVecFromAngle(0.0); got != plane2d.UnitVecRight {
		t.Fatalf("expected (1, 0), got (%v, %v)", got.X, got.Y)
	}

	for _, angle := range []float64{0.1, 1.0, math.Pi / 3, math.Pi, -math.Pi / 4, 123.456} {
		dir := plane2d.MakeUnitVecFromAngle(angle)
		checkUnit(t, dir)
		if math.Abs(math.Atan2(dir.Y, dir.X)-math.Atan2(math.Sin(angle), math.Cos(angle))) > unitTolerance {
			t.Fatalf("angle %v: direction (%v, %v) does not match", angle, dir.X, dir.Y)
		}
	}
}

func TestMakePolarCoord(t *testing.T) {
	pc := plane2d.MakePolarCoord(plane2d.MakeVec2(0.0, -2.0), plane2d.UnitVecRight)
	if pc.Dir != plane2d.UnitVecDown {
		t.Fatalf("expected (0, -1), got (%v, %v)", pc.Dir.X, pc.Dir.Y)
	}
	if pc.Magnitude != 2.0 {
		t.Fatalf("expected magnitude 2, got %v", pc.Magnitude)
	}

	degenerate := plane2d.MakePolarCoord(plane2d.MakeVec2(0.0, 0.0), plane2d.UnitVecUp)
	if degenerate.Dir != plane2d.UnitVecUp || degenerate.Magnitude != 0.0 {
		t.Fatalf("expected fallback with zero magnitude, got (%v, %v) %v",
			degenerate.Dir.X, degenerate.Dir.Y, degenerate.Magnitude)
	}
}

func TestUnitVecRotate(t *testing.T) {
	q := plane2d.MakeRotFromAngle(math.Pi / 2)
	rotated := plane2d.RotUnitVecMul(q, plane2d.UnitVecRight)
	checkUnit(t, rotated)
	if math.Abs(rotated.X) > unitTolerance || math.Abs(rotated.Y-1.0) > unitTolerance {
		t.Fatalf("expected (0, 1), got (%v, %v)", rotated.X, rotated.Y)
	}
}
