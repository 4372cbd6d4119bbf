package plane2d

var World_Flags = struct {
	E_newFixture uint32
	E_locked     uint32
}{
	E_newFixture: 0x0001,
	E_locked:     0x0002,
}

/// The world holds the broad-phase, the fixtures registered with it and
/// the persistent contact table. Structural mutation (creating or
/// destroying fixtures) is forbidden while a contact pass is running; the
/// pass holds the locked bit through a FlagGuard and the mutation entry
/// points assert on it.
type World struct {
	/// Flag word. Zero at creation. The locked bit is managed exclusively
	/// by FlagGuards inside the contact pass.
	M_flags uint32

	M_contactManager ContactManager

	M_fixtureList  *Fixture
	M_fixtureCount int
}

func MakeWorld() World {
	return World{
		M_flags:          0,
		M_contactManager: MakeContactManager(NewBroadPhase()),
		M_fixtureList:    nil,
		M_fixtureCount:   0,
	}
}

func NewWorld() *World {
	res := MakeWorld()
	return &res
}

/// Is the world in the middle of a contact pass?
func (world World) IsLocked() bool {
	return (world.M_flags & World_Flags.E_locked) == World_Flags.E_locked
}

func (world World) GetFixtureList() *Fixture {
	return world.M_fixtureList
}

func (world World) GetFixtureCount() int {
	return world.M_fixtureCount
}

func (world World) GetContactCount() int {
	return world.M_contactManager.GetContactCount()
}

func (world *World) GetContactManager() *ContactManager {
	return &world.M_contactManager
}

/// Register a contact filter to provide specific control over collision.
/// Otherwise the default filter is used.
func (world *World) SetContactFilter(filter ContactFilterInterface) {
	world.M_contactManager.M_contactFilter = filter
}

/// Create a fixture from a definition and register its children with the
/// broad-phase. The shape is shared with the caller, not cloned.
/// @warning This function is locked during the contact pass.
func (world *World) CreateFixture(def FixtureDef) *Fixture {
	Assert(!world.IsLocked())
	if world.IsLocked() {
		return nil
	}

	fixture := NewFixture()
	fixture.Create(world, def)
	fixture.CreateProxies(world.M_contactManager.M_broadPhase)

	fixture.M_next = world.M_fixtureList
	world.M_fixtureList = fixture
	world.M_fixtureCount++

	// New pairs may exist; flag for the next contact pass.
	world.M_flags |= World_Flags.E_newFixture

	return fixture
}

/// Destroy a fixture, its contacts and its broad-phase proxies.
/// @warning This function is locked during the contact pass.
func (world *World) DestroyFixture(fixture *Fixture) {
	Assert(!world.IsLocked())
	if world.IsLocked() {
		return
	}

	Assert(world.M_fixtureCount > 0)

	// Destroy contacts while fixture proxies are still registered, so
	// their keys still resolve.
	world.M_contactManager.DestroyFixtureContacts(fixture)

	fixture.DestroyProxies(world.M_contactManager.M_broadPhase)
	fixture.Destroy()

	// Unlink from the fixture list.
	node := &world.M_fixtureList
	found := false
	for *node != nil {
		if *node == fixture {
			*node = fixture.M_next
			found = true
			break
		}

		node = &(*node).M_next
	}

	// You tried to remove a fixture that is not attached to this world.
	Assert(found)

	world.M_fixtureCount--
}

/// Run one contact identification pass: find new broad-phase pairs for
/// anything that moved and refresh the persistent contact table. The
/// whole pass holds the locked flag; reentrant structural mutation is a
/// contract violation and asserts.
func (world *World) UpdateContacts() {
	guard := MakeFlagGuard(&world.M_flags, World_Flags.E_locked)
	defer guard.Release()

	// New fixtures and moved proxies both surface here as buffered
	// moves; one pair scan covers them.
	world.M_contactManager.FindNewContacts()
	world.M_flags &^= World_Flags.E_newFixture

	world.M_contactManager.Collide()
}
