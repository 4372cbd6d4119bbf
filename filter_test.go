package plane2d_test

import (
	"testing"

	"github.com/plane2d/plane2d"
)

func TestFilterDefaults(t *testing.T) {
	filter := plane2d.MakeFilter()
	if filter.CategoryBits != 0x0001 {
		t.Fatalf("expected default category 0x0001, got %#04x", filter.CategoryBits)
	}
	if filter.MaskBits != 0xFFFF {
		t.Fatalf("expected default mask 0xFFFF, got %#04x", filter.MaskBits)
	}
	if filter.GroupIndex != 0 {
		t.Fatalf("expected default group 0, got %d", filter.GroupIndex)
	}

	if !plane2d.ShouldCollideFilters(plane2d.MakeFilter(), plane2d.MakeFilter()) {
		t.Fatalf("default filters should collide")
	}
}

func TestShouldCollideFiltersMaskIsSymmetricAnd(t *testing.T) {
	// A accepts everything, but B only accepts category 0x0002 and A is
	// category 0x0001: both sides must accept for a collision.
	a := plane2d.Filter{CategoryBits: 0x0001, MaskBits: 0xFFFF, GroupIndex: 0}
	b := plane2d.Filter{CategoryBits: 0x0002, MaskBits: 0x0002, GroupIndex: 0}

	if plane2d.ShouldCollideFilters(a, b) {
		t.Fatalf("one-sided acceptance must not collide")
	}
	if plane2d.ShouldCollideFilters(b, a) {
		t.Fatalf("filter test must be symmetric")
	}

	// Mutual acceptance.
	c := plane2d.Filter{CategoryBits: 0x0004, MaskBits: 0x0002, GroupIndex: 0}
	d := plane2d.Filter{CategoryBits: 0x0002, MaskBits: 0x0004, GroupIndex: 0}
	if !plane2d.ShouldCollideFilters(c, d) || !plane2d.ShouldCollideFilters(d, c) {
		t.Fatalf("mutual acceptance must collide")
	}
}

func TestShouldCollideFiltersGroupOverride(t *testing.T) {
	// A shared positive group always collides, whatever the masks say.
	a := plane2d.Filter{CategoryBits: 0x0001, MaskBits: 0x0000, GroupIndex: 7}
	b := plane2d.Filter{CategoryBits: 0x0002, MaskBits: 0x0000, GroupIndex: 7}
	if !plane2d.ShouldCollideFilters(a, b) {
		t.Fatalf("shared positive group must collide")
	}

	// A shared negative group never collides, whatever the masks say.
	c := plane2d.Filter{CategoryBits: 0x0001, MaskBits: 0xFFFF, GroupIndex: -1}
	d := plane2d.Filter{CategoryBits: 0x0001, MaskBits: 0xFFFF, GroupIndex: -1}
	if plane2d.ShouldCollideFilters(c, d) {
		t.Fatalf("shared negative group must not collide")
	}

	// Unequal groups fall back to the mask test.
	e := plane2d.Filter{CategoryBits: 0x0001, MaskBits: 0xFFFF, GroupIndex: -1}
	f := plane2d.Filter{CategoryBits: 0x0001, MaskBits: 0xFFFF, GroupIndex: -2}
	if !plane2d.ShouldCollideFilters(e, f) {
		t.Fatalf("unequal groups must use the mask test")
	}
}

func TestShouldCollideFiltersZeroMasks(t *testing.T) {
	zero := plane2d.Filter{}
	if plane2d.ShouldCollideFilters(zero, plane2d.MakeFilter()) {
		t.Fatalf("a zeroed filter must never collide")
	}
	if plane2d.ShouldCollideFilters(zero, zero) {
		t.Fatalf("two zeroed filters must never collide")
	}
}

func TestShouldCollideFiltersSymmetry(t *testing.T) {
	filters := []plane2d.Filter{
		plane2d.MakeFilter(),
		{CategoryBits: 0x0001, MaskBits: 0xFFFF, GroupIndex: 0},
		{CategoryBits: 0x0002, MaskBits: 0x0002, GroupIndex: 0},
		{CategoryBits: 0x8000, MaskBits: 0x0001, GroupIndex: 3},
		{CategoryBits: 0x0001, MaskBits: 0x8000, GroupIndex: -3},
		{},
	}

	for i, a := range filters {
		for j, b := range filters {
			ab := plane2d.ShouldCollideFilters(a, b)
			ba := plane2d.ShouldCollideFilters(b, a)
			if ab != ba {
				t.Fatalf("filters %d and %d: asymmetric result %v vs %v", i, j, ab, ba)
			}
		}
	}
}
