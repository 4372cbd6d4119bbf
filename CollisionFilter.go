package plane2d

/// This holds contact filtering data.
type Filter struct {
	/// The collision category bits. Normally you would just set one bit.
	CategoryBits uint16 `yaml:"categoryBits"`

	/// The collision mask bits. This states the categories that this
	/// shape would accept for collision.
	MaskBits uint16 `yaml:"maskBits"`

	/// Collision groups allow a certain group of objects to never collide
	/// (negative) or always collide (positive). Zero means no collision
	/// group. Non-zero group filtering always wins against the mask bits.
	GroupIndex int16 `yaml:"groupIndex"`
}

func MakeFilter() Filter {
	return Filter{
		CategoryBits: 0x0001,
		MaskBits:     0xFFFF,
		GroupIndex:   0,
	}
}

// Return true if contact calculations should be performed between shapes
// carrying these two filters. Symmetric in its arguments. Zeroed bitmasks
// simply never collide.
func ShouldCollideFilters(filterA, filterB Filter) bool {
	if filterA.GroupIndex == filterB.GroupIndex && filterA.GroupIndex != 0 {
		return filterA.GroupIndex > 0
	}

	collide := (filterA.MaskBits&filterB.CategoryBits) != 0 && (filterA.CategoryBits&filterB.MaskBits) != 0
	return collide
}

type ContactFilterInterface interface {
	ShouldCollide(fixtureA *Fixture, fixtureB *Fixture) bool
}

type ContactFilter struct {
}

// Return true if contact calculations should be performed between these two
// fixtures. If you implement your own collision filter you may want to
// build from this implementation.
func (cf *ContactFilter) ShouldCollide(fixtureA *Fixture, fixtureB *Fixture) bool {
	return ShouldCollideFilters(fixtureA.GetFilterData(), fixtureB.GetFilterData())
}
