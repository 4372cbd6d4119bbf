package plane2d_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/plane2d/plane2d"
	"github.com/pmezard/go-difflib/difflib"
)

var expectedUnitVecDecomposition string = strings.Join([]string{
	"dir = (0.6, 0.8), magnitude = 5",
	"dir = (1, 0), magnitude = 0",
	"dir = (-1, 0), magnitude = 5",
	"dir = (0, 1), magnitude = 2",
	"dir = (1, 0), magnitude = 0",
}, "\n")

func TestComplianceUnitVecDecomposition(t *testing.T) {
	inputs := []plane2d.Vec2{
		plane2d.MakeVec2(3.0, 4.0),
		plane2d.MakeVec2(0.0, 0.0),
		plane2d.MakeVec2(-5.0, 0.0),
		plane2d.MakeVec2(0.0, 2.0),
		plane2d.MakeVec2(5e-324, 5e-324),
	}

	lines := make([]string, 0, len(inputs))
	for _, v := range inputs {
		dir, magnitude := plane2d.MakeUnitVec(v.X, v.Y, plane2d.UnitVecRight)
		lines = append(lines, fmt.Sprintf("dir = (%v, %v), magnitude = %v", dir.X, dir.Y, magnitude))
	}
	msg := strings.Join(lines, "\n")

	fmt.Println(msg)

	if msg != expectedUnitVecDecomposition {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(expectedUnitVecDecomposition),
			B:        difflib.SplitLines(msg),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("NOT Matching reference. Failure: \n%s", text)
	}
}

var expectedFilterMatrix string = strings.Join([]string{
	"0001/ffff/0 vs 0001/ffff/0 = true",
	"0001/ffff/0 vs 0002/0002/0 = false",
	"0001/ffff/2 vs 0002/0002/2 = true",
	"0001/ffff/-3 vs 0001/ffff/-3 = false",
	"0004/0002/0 vs 0002/0004/0 = true",
	"0000/0000/0 vs 0001/ffff/0 = false",
}, "\n")

func TestComplianceFilterMatrix(t *testing.T) {
	pairs := [][2]plane2d.Filter{
		{plane2d.MakeFilter(), plane2d.MakeFilter()},
		{{CategoryBits: 0x0001, MaskBits: 0xFFFF}, {CategoryBits: 0x0002, MaskBits: 0x0002}},
		{{CategoryBits: 0x0001, MaskBits: 0xFFFF, GroupIndex: 2}, {CategoryBits: 0x0002, MaskBits: 0x0002, GroupIndex: 2}},
		{{CategoryBits: 0x0001, MaskBits: 0xFFFF, GroupIndex: -3}, {CategoryBits: 0x0001, MaskBits: 0xFFFF, GroupIndex: -3}},
		{{CategoryBits: 0x0004, MaskBits: 0x0002}, {CategoryBits: 0x0002, MaskBits: 0x0004}},
		{{}, plane2d.MakeFilter()},
	}

	lines := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		lines = append(lines, fmt.Sprintf("%04x/%04x/%d vs %04x/%04x/%d = %v",
			a.CategoryBits, a.MaskBits, a.GroupIndex,
			b.CategoryBits, b.MaskBits, b.GroupIndex,
			plane2d.ShouldCollideFilters(a, b)))
	}
	msg := strings.Join(lines, "\n")

	fmt.Println(msg)

	if msg != expectedFilterMatrix {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(expectedFilterMatrix),
			B:        difflib.SplitLines(msg),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("NOT Matching reference. Failure: \n%s", text)
	}
}

var expectedContactKeys string = strings.Join([]string{
	"key(3, 7) = 0x300000007",
	"key(7, 3) = 0x300000007",
	"key(0, 1) = 0x1",
	"key(2147483647, 0) = 0x7fffffff",
}, "\n")

func TestComplianceContactKeyPacking(t *testing.T) {
	pairs := [][2]plane2d.ProxyID{
		{3, 7},
		{7, 3},
		{0, 1},
		{2147483647, 0},
	}

	lines := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		key := plane2d.MakeContactKey(pair[0], pair[1])
		lines = append(lines, fmt.Sprintf("key(%d, %d) = %#x", pair[0], pair[1], key.Key()))
	}
	msg := strings.Join(lines, "\n")

	fmt.Println(msg)

	if msg != expectedContactKeys {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(expectedContactKeys),
			B:        difflib.SplitLines(msg),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("NOT Matching reference. Failure: \n%s", text)
	}
}
