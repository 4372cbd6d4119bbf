package plane2d

import (
	"math"
)

var Contact_Flag = struct {
	/// Used when crawling contact graph when forming islands.
	E_islandFlag uint32

	/// Set when the fixtures are touching.
	E_touchingFlag uint32

	/// This contact can be disabled (by user).
	E_enabledFlag uint32

	/// This contact needs filtering because a fixture filter was changed.
	E_filterFlag uint32
}{
	E_islandFlag:   0x0001,
	E_touchingFlag: 0x0002,
	E_enabledFlag:  0x0004,
	E_filterFlag:   0x0008,
}

/// Friction mixing law. The idea is to allow either fixture to drive the
/// friction to zero. For example, anything slides on ice.
func MixFriction(friction1, friction2 float64) float64 {
	return math.Sqrt(friction1 * friction2)
}

/// Restitution mixing law. The idea is allow for anything to bounce off an
/// inelastic surface. For example, a superball bounces on anything.
func MixRestitution(restitution1, restitution2 float64) float64 {
	if restitution1 > restitution2 {
		return restitution1
	}

	return restitution2
}

/// The runtime object representing one potentially-colliding (fixture,
/// child) pair across simulation steps. Contacts are created and destroyed
/// by the contact manager, which keys them by ContactKey in its persistent
/// table.
type Contact struct {
	M_flags uint32

	M_fixtureA *Fixture
	M_fixtureB *Fixture

	M_indexA int
	M_indexB int

	M_friction    float64
	M_restitution float64
}

func MakeContact(fixtureA *Fixture, indexA int, fixtureB *Fixture, indexB int) *Contact {
	return &Contact{
		M_flags: Contact_Flag.E_enabledFlag,

		M_fixtureA: fixtureA,
		M_fixtureB: fixtureB,

		M_indexA: indexA,
		M_indexB: indexB,

		M_friction:    MixFriction(fixtureA.M_shape.GetFriction(), fixtureB.M_shape.GetFriction()),
		M_restitution: MixRestitution(fixtureA.M_shape.GetRestitution(), fixtureB.M_shape.GetRestitution()),
	}
}

func (contact Contact) GetFixtureA() *Fixture {
	return contact.M_fixtureA
}

func (contact Contact) GetFixtureB() *Fixture {
	return contact.M_fixtureB
}

func (contact Contact) GetChildIndexA() int {
	return contact.M_indexA
}

func (contact Contact) GetChildIndexB() int {
	return contact.M_indexB
}

func (contact Contact) GetFlags() uint32 {
	return contact.M_flags
}

/// Flag this contact for filtering. Filtering will occur the next contact
/// pass.
func (contact *Contact) FlagForFiltering() {
	contact.M_flags |= Contact_Flag.E_filterFlag
}

/// Enable/disable this contact. The contact is only disabled for the
/// current contact pass (or until manually re-enabled).
func (contact *Contact) SetEnabled(flag bool) {
	if flag {
		contact.M_flags |= Contact_Flag.E_enabledFlag
	} else {
		contact.M_flags &^= Contact_Flag.E_enabledFlag
	}
}

func (contact Contact) IsEnabled() bool {
	return (contact.M_flags & Contact_Flag.E_enabledFlag) != 0
}

/// Is this contact touching in the broad-phase?
func (contact Contact) IsTouching() bool {
	return (contact.M_flags & Contact_Flag.E_touchingFlag) != 0
}

func (contact Contact) GetFriction() float64 {
	return contact.M_friction
}

/// Override the default friction mixture. You can call this in a contact
/// listener.
func (contact *Contact) SetFriction(friction float64) {
	contact.M_friction = friction
}

/// Reset the friction mixture to the default value.
func (contact *Contact) ResetFriction() {
	contact.M_friction = MixFriction(contact.M_fixtureA.M_shape.GetFriction(), contact.M_fixtureB.M_shape.GetFriction())
}

func (contact Contact) GetRestitution() float64 {
	return contact.M_restitution
}

func (contact *Contact) SetRestitution(restitution float64) {
	contact.M_restitution = restitution
}

/// Reset the restitution to the default value.
func (contact *Contact) ResetRestitution() {
	contact.M_restitution = MixRestitution(contact.M_fixtureA.M_shape.GetRestitution(), contact.M_fixtureB.M_shape.GetRestitution())
}
