package plane2d

import (
	"sort"
)

/// Delegate of World. Owns the persistent contact table, keyed by the
/// canonical ContactKey so a pair reported as (A, B) in one step and
/// (B, A) in another maps to the same contact state.
type ContactManager struct {
	M_broadPhase BroadPhaseInterface

	M_contacts map[ContactKey]*Contact

	M_contactFilter ContactFilterInterface
}

func MakeContactManager(broadPhase BroadPhaseInterface) ContactManager {
	return ContactManager{
		M_broadPhase:    broadPhase,
		M_contacts:      map[ContactKey]*Contact{},
		M_contactFilter: &ContactFilter{},
	}
}

func (mgr ContactManager) GetContactCount() int {
	return len(mgr.M_contacts)
}

/// Look up the contact for a key. Returns nil when no contact with that
/// identity is materialized.
func (mgr ContactManager) GetContact(key ContactKey) *Contact {
	return mgr.M_contacts[key]
}

/// Broad-phase callback for a new candidate pair.
func (mgr *ContactManager) AddPair(userDataA interface{}, userDataB interface{}) {
	proxyA := userDataA.(*FixtureProxy)
	proxyB := userDataB.(*FixtureProxy)

	fixtureA := proxyA.Fixture
	fixtureB := proxyB.Fixture

	indexA := proxyA.ChildIndex
	indexB := proxyB.ChildIndex

	// Are the fixtures on the same body-fragment? No self collision.
	if fixtureA == fixtureB {
		return
	}

	// Does a contact with this identity already exist?
	key := MakeContactKey(proxyA.ProxyId, proxyB.ProxyId)
	if _, ok := mgr.M_contacts[key]; ok {
		return
	}

	// Check user filtering.
	if mgr.M_contactFilter != nil && !mgr.M_contactFilter.ShouldCollide(fixtureA, fixtureB) {
		return
	}

	mgr.M_contacts[key] = MakeContact(fixtureA, indexA, fixtureB, indexB)
}

func (mgr *ContactManager) FindNewContacts() {
	mgr.M_broadPhase.UpdatePairs(mgr.AddPair)
}

func (mgr *ContactManager) Destroy(contact *Contact) {
	key := MakeContactKeyForContact(contact)
	Assert(mgr.M_contacts[key] == contact)
	delete(mgr.M_contacts, key)
}

/// Destroy every contact touching a fixture. Called before the fixture's
/// proxies are torn down so contact keys are still resolvable.
func (mgr *ContactManager) DestroyFixtureContacts(fixture *Fixture) {
	for key, contact := range mgr.M_contacts {
		if contact.GetFixtureA() == fixture || contact.GetFixtureB() == fixture {
			delete(mgr.M_contacts, key)
		}
	}
}

// This is the top level collision call for the world pass. Here all the
// narrow phase collision state is refreshed for the contact table.
func (mgr *ContactManager) Collide() {
	// Walk the table in key order so refiltering and pruning behave
	// deterministically.
	keys := make([]ContactKey, 0, len(mgr.M_contacts))
	for key := range mgr.M_contacts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Key() < keys[j].Key() })

	for _, key := range keys {
		contact := mgr.M_contacts[key]

		fixtureA := contact.GetFixtureA()
		fixtureB := contact.GetFixtureB()
		indexA := contact.GetChildIndexA()
		indexB := contact.GetChildIndexB()

		// Is this contact flagged for filtering?
		if (contact.GetFlags() & Contact_Flag.E_filterFlag) != 0 {
			// Check user filtering.
			if mgr.M_contactFilter != nil && !mgr.M_contactFilter.ShouldCollide(fixtureA, fixtureB) {
				mgr.Destroy(contact)
				continue
			}

			// Clear the filtering flag.
			contact.M_flags &^= Contact_Flag.E_filterFlag
		}

		proxyIdA := fixtureA.M_proxies[indexA].ProxyId
		proxyIdB := fixtureB.M_proxies[indexB].ProxyId
		overlap := mgr.M_broadPhase.TestOverlap(proxyIdA, proxyIdB)

		// Here we destroy contacts that cease to overlap in the
		// broad-phase.
		if !overlap {
			mgr.Destroy(contact)
			continue
		}

		if contact.IsEnabled() {
			contact.M_flags |= Contact_Flag.E_touchingFlag
		} else {
			contact.M_flags &^= Contact_Flag.E_touchingFlag
		}
	}
}
