package plane2d

import (
	"sort"
)

/// An opaque identifier assigned by the broad-phase to one shape child.
/// The narrow-phase core only ever compares these; it never interprets
/// them.
type ProxyID int32

const NullProxy ProxyID = -1

type BroadPhaseAddPairCallback func(userDataA interface{}, userDataB interface{})

/// The broad-phase contract consumed by fixtures and the contact manager.
/// Any spatial index can sit behind it; this package only ships a plain
/// proxy table.
type BroadPhaseInterface interface {
	/// Create a proxy with an initial AABB. Pairs are not reported until
	/// UpdatePairs is called.
	CreateProxy(aabb AABB, userData interface{}) ProxyID

	/// Destroy a proxy. It is up to the client to remove any pairs.
	DestroyProxy(proxyId ProxyID)

	/// Call MoveProxy as many times as you like, then when you are done
	/// call UpdatePairs to finalize the proxy pairs.
	MoveProxy(proxyId ProxyID, aabb AABB, displacement Vec2)

	/// Call to trigger a re-processing of its pairs on the next call to
	/// UpdatePairs.
	TouchProxy(proxyId ProxyID)

	/// Test overlap of fat AABBs.
	TestOverlap(proxyIdA, proxyIdB ProxyID) bool

	/// Get user data from a proxy. Returns nil if the id is invalid.
	GetUserData(proxyId ProxyID) interface{}

	/// Update the pairs. This results in pair callbacks. This can only add
	/// pairs.
	UpdatePairs(addPairCallback BroadPhaseAddPairCallback)
}

type broadPhaseProxy struct {
	fatAABB  AABB
	userData interface{}
	moved    bool
}

/// A broad-phase backed by a flat proxy table. Pair finding is a scan of
/// moved proxies against all proxies. No spatial structure is maintained;
/// this trades query speed for simplicity and is adequate for moderate
/// proxy counts and for tests.
type BroadPhase struct {
	M_proxies map[ProxyID]*broadPhaseProxy

	M_nextProxyId ProxyID

	M_moveBuffer []ProxyID
}

func MakeBroadPhase() BroadPhase {
	return BroadPhase{
		M_proxies:     map[ProxyID]*broadPhaseProxy{},
		M_nextProxyId: 0,
		M_moveBuffer:  nil,
	}
}

func NewBroadPhase() *BroadPhase {
	res := MakeBroadPhase()
	return &res
}

func (bp BroadPhase) GetProxyCount() int {
	return len(bp.M_proxies)
}

func (bp BroadPhase) GetUserData(proxyId ProxyID) interface{} {
	proxy, ok := bp.M_proxies[proxyId]
	if !ok {
		return nil
	}
	return proxy.userData
}

func (bp BroadPhase) GetFatAABB(proxyId ProxyID) AABB {
	proxy, ok := bp.M_proxies[proxyId]
	Assert(ok)
	return proxy.fatAABB
}

func (bp BroadPhase) TestOverlap(proxyIdA, proxyIdB ProxyID) bool {
	return TestOverlapBoundingBoxes(
		bp.GetFatAABB(proxyIdA),
		bp.GetFatAABB(proxyIdB),
	)
}

func (bp *BroadPhase) CreateProxy(aabb AABB, userData interface{}) ProxyID {
	proxyId := bp.M_nextProxyId
	bp.M_nextProxyId++

	r := MakeVec2(AABBExtension, AABBExtension)
	bp.M_proxies[proxyId] = &broadPhaseProxy{
		fatAABB: AABB{
			LowerBound: Vec2Sub(aabb.LowerBound, r),
			UpperBound: Vec2Add(aabb.UpperBound, r),
		},
		userData: userData,
	}

	bp.bufferMove(proxyId)
	return proxyId
}

func (bp *BroadPhase) DestroyProxy(proxyId ProxyID) {
	_, ok := bp.M_proxies[proxyId]
	Assert(ok)
	bp.unBufferMove(proxyId)
	delete(bp.M_proxies, proxyId)
}

func (bp *BroadPhase) MoveProxy(proxyId ProxyID, aabb AABB, displacement Vec2) {
	proxy, ok := bp.M_proxies[proxyId]
	Assert(ok)

	if proxy.fatAABB.Contains(aabb) {
		// Still within the fat bounds, nothing to re-pair.
		return
	}

	// Extend the AABB and predict motion.
	r := MakeVec2(AABBExtension, AABBExtension)
	fat := AABB{
		LowerBound: Vec2Sub(aabb.LowerBound, r),
		UpperBound: Vec2Add(aabb.UpperBound, r),
	}

	d := Vec2MulScalar(2.0, displacement)
	if d.X < 0.0 {
		fat.LowerBound.X += d.X
	} else {
		fat.UpperBound.X += d.X
	}
	if d.Y < 0.0 {
		fat.LowerBound.Y += d.Y
	} else {
		fat.UpperBound.Y += d.Y
	}

	proxy.fatAABB = fat
	bp.bufferMove(proxyId)
}

func (bp *BroadPhase) TouchProxy(proxyId ProxyID) {
	bp.bufferMove(proxyId)
}

func (bp *BroadPhase) bufferMove(proxyId ProxyID) {
	proxy, ok := bp.M_proxies[proxyId]
	Assert(ok)
	if proxy.moved {
		return
	}

	proxy.moved = true
	bp.M_moveBuffer = append(bp.M_moveBuffer, proxyId)
}

func (bp *BroadPhase) unBufferMove(proxyId ProxyID) {
	for i := range bp.M_moveBuffer {
		if bp.M_moveBuffer[i] == proxyId {
			bp.M_moveBuffer[i] = NullProxy
		}
	}
}

func (bp *BroadPhase) UpdatePairs(addPairCallback BroadPhaseAddPairCallback) {
	type pair struct {
		proxyIdA ProxyID
		proxyIdB ProxyID
	}

	var pairs []pair

	// Scan all proxies against the moved ones. Iterate ids in sorted
	// order so pair callbacks fire deterministically.
	ids := make([]ProxyID, 0, len(bp.M_proxies))
	for id := range bp.M_proxies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, queryProxyId := range bp.M_moveBuffer {
		if queryProxyId == NullProxy {
			continue
		}
		queryProxy, ok := bp.M_proxies[queryProxyId]
		if !ok {
			continue
		}

		for _, proxyId := range ids {
			// A proxy cannot form a pair with itself.
			if proxyId == queryProxyId {
				continue
			}

			proxy := bp.M_proxies[proxyId]

			// Both proxies are moving. Avoid duplicate pairs.
			if proxy.moved && proxyId > queryProxyId {
				continue
			}

			if !TestOverlapBoundingBoxes(queryProxy.fatAABB, proxy.fatAABB) {
				continue
			}

			pairs = append(pairs, pair{
				proxyIdA: minProxyID(proxyId, queryProxyId),
				proxyIdB: maxProxyID(proxyId, queryProxyId),
			})
		}
	}

	// Sort the pair buffer to expose duplicates.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].proxyIdA != pairs[j].proxyIdA {
			return pairs[i].proxyIdA < pairs[j].proxyIdA
		}
		return pairs[i].proxyIdB < pairs[j].proxyIdB
	})

	// Send unique pairs to the caller.
	for i := 0; i < len(pairs); i++ {
		if i > 0 && pairs[i] == pairs[i-1] {
			continue
		}

		primaryPair := pairs[i]
		userDataA := bp.GetUserData(primaryPair.proxyIdA)
		userDataB := bp.GetUserData(primaryPair.proxyIdB)

		addPairCallback(userDataA, userDataB)
	}

	// Clear move flags and reset the move buffer.
	for _, proxyId := range bp.M_moveBuffer {
		if proxyId == NullProxy {
			continue
		}
		if proxy, ok := bp.M_proxies[proxyId]; ok {
			proxy.moved = false
		}
	}
	bp.M_moveBuffer = bp.M_moveBuffer[:0]
}

func minProxyID(a, b ProxyID) ProxyID {
	if a < b {
		return a
	}
	return b
}

func maxProxyID(a, b ProxyID) ProxyID {
	if a > b {
		return a
	}
	return b
}
