package plane2d

/// A canonical, order-independent identity for a potential contact between
/// two broad-phase proxies. The physical contact between A and B is the
/// contact between B and A, so construction sorts the two ids:
/// MakeContactKey(a, b) == MakeContactKey(b, a). The type is comparable
/// and is used directly as the contact table's map key.
type ContactKey struct {
	/// ProxyIdA <= ProxyIdB; maintained by the constructors.
	ProxyIdA ProxyID
	ProxyIdB ProxyID
}

/// Canonical construction from two broad-phase proxy ids.
func MakeContactKey(proxyIdA, proxyIdB ProxyID) ContactKey {
	Assert(proxyIdA != NullProxy)
	Assert(proxyIdB != NullProxy)

	if proxyIdA > proxyIdB {
		proxyIdA, proxyIdB = proxyIdB, proxyIdA
	}

	return ContactKey{
		ProxyIdA: proxyIdA,
		ProxyIdB: proxyIdB,
	}
}

/// Construction from a (fixture, child index) pair on each side. Each pair
/// is resolved to the fixture's registered broad-phase proxy. A fixture
/// without a registered proxy for the child index is a broken invariant in
/// the caller's bookkeeping; this asserts rather than guessing an
/// identity.
func MakeContactKeyForFixtures(fixtureA *Fixture, childIndexA int, fixtureB *Fixture, childIndexB int) ContactKey {
	proxyA := fixtureA.GetProxy(childIndexA)
	proxyB := fixtureB.GetProxy(childIndexB)
	Assert(proxyA != nil && proxyA.ProxyId != NullProxy)
	Assert(proxyB != nil && proxyB.ProxyId != NullProxy)

	return MakeContactKey(proxyA.ProxyId, proxyB.ProxyId)
}

/// Re-derive the identity of an existing contact from its two
/// fixture/child-index sides.
func MakeContactKeyForContact(contact *Contact) ContactKey {
	return MakeContactKeyForFixtures(
		contact.GetFixtureA(), contact.GetChildIndexA(),
		contact.GetFixtureB(), contact.GetChildIndexB(),
	)
}

// Used to quickly compare and pack contact keys.
func (k ContactKey) Key() uint64 {
	return uint64(uint32(k.ProxyIdA))<<32 | uint64(uint32(k.ProxyIdB))
}

func (k *ContactKey) SetKey(key uint64) {
	k.ProxyIdA = ProxyID(int32(key >> 32))
	k.ProxyIdB = ProxyID(int32(key & 0xFFFFFFFF))
}
