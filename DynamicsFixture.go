package plane2d

/// A fixture definition is used to create a fixture. You can reuse fixture
/// definitions safely. Physical properties (vertex radius, density,
/// friction, restitution) live on the shape itself.
type FixtureDef struct {
	/// The shape, this must be set. The shape is shared, not cloned; a
	/// shape may back any number of fixtures and is destroyed when its
	/// last fixture is destroyed.
	Shape ShapeInterface

	/// The world transform of the fixture.
	Transform Transform

	/// Use this to store application specific fixture data.
	UserData interface{}

	/// A sensor shape collects contact information but never generates a
	/// collision response.
	IsSensor bool

	/// Contact filtering data.
	Filter Filter
}

/// The constructor sets the default fixture definition values.
func MakeFixtureDef() FixtureDef {
	return FixtureDef{
		Shape:     nil,
		Transform: MakeTransform(),
		UserData:  nil,
		IsSensor:  false,
		Filter:    MakeFilter(),
	}
}

/// This proxy is used internally to connect fixtures to the broad-phase.
type FixtureProxy struct {
	Aabb       AABB
	Fixture    *Fixture
	ChildIndex int
	ProxyId    ProxyID
}

/// A fixture binds a shape to a world transform for collision detection.
/// Fixtures hold additional non-geometric data such as collision filters.
/// Fixtures are created via World.CreateFixture.
/// @warning you cannot reuse fixtures.
type Fixture struct {
	M_next  *Fixture
	M_world *World

	M_shape ShapeInterface

	M_xf Transform

	M_proxies []FixtureProxy

	M_filter Filter

	M_isSensor bool

	M_userData interface{}
}

func NewFixture() *Fixture {
	return &Fixture{
		M_next:   nil,
		M_world:  nil,
		M_filter: MakeFilter(),
	}
}

func (fix Fixture) GetType() uint8 {
	return fix.M_shape.GetType()
}

func (fix Fixture) GetShape() ShapeInterface {
	return fix.M_shape
}

func (fix Fixture) GetTransform() Transform {
	return fix.M_xf
}

func (fix Fixture) IsSensor() bool {
	return fix.M_isSensor
}

func (fix *Fixture) SetSensor(sensor bool) {
	fix.M_isSensor = sensor
}

func (fix Fixture) GetFilterData() Filter {
	return fix.M_filter
}

func (fix Fixture) GetUserData() interface{} {
	return fix.M_userData
}

func (fix *Fixture) SetUserData(data interface{}) {
	fix.M_userData = data
}

func (fix Fixture) GetNext() *Fixture {
	return fix.M_next
}

func (fix Fixture) GetProxyCount() int {
	return len(fix.M_proxies)
}

/// Get the broad-phase proxy registered for a child. Returns nil when the
/// child has no registered proxy, which callers building contact keys
/// treat as a contract violation.
func (fix *Fixture) GetProxy(childIndex int) *FixtureProxy {
	if childIndex < 0 || childIndex >= len(fix.M_proxies) {
		return nil
	}

	proxy := &fix.M_proxies[childIndex]
	if proxy.ProxyId == NullProxy {
		return nil
	}

	return proxy
}

/// Test a point in world coordinates for containment in this fixture's
/// shape.
func (fix Fixture) TestPoint(p Vec2) bool {
	return TestPoint(fix.M_shape, fix.M_xf, p)
}

/// Cast a ray against a child of this fixture's shape.
func (fix Fixture) RayCast(output *RayCastOutput, input RayCastInput, childIndex int) bool {
	return fix.M_shape.RayCast(output, input, fix.M_xf, childIndex)
}

///////////////////////////////////////////////////////////////////////////////

// We need separation create/destroy functions from the constructor/destructor because
// the destructor cannot access the broad-phase.
func (fix *Fixture) Create(world *World, def FixtureDef) {
	Assert(def.Shape != nil)

	fix.M_world = world
	fix.M_userData = def.UserData
	fix.M_filter = def.Filter
	fix.M_isSensor = def.IsSensor
	fix.M_xf = def.Transform

	fix.M_shape = def.Shape
	fix.M_shape.IncRef()

	// Reserve proxy space
	childCount := fix.M_shape.GetChildCount()
	fix.M_proxies = make([]FixtureProxy, childCount)
	for i := 0; i < childCount; i++ {
		fix.M_proxies[i].Fixture = nil
		fix.M_proxies[i].ProxyId = NullProxy
	}
}

func (fix *Fixture) Destroy() {
	// The proxies must be destroyed before calling this.
	Assert(len(fix.M_proxies) == 0 || fix.M_proxies[0].ProxyId == NullProxy)

	ReleaseShape(fix.M_shape)
	fix.M_shape = nil
	fix.M_proxies = nil
}

// These support broad-phase proxy management.
func (fix *Fixture) CreateProxies(broadPhase BroadPhaseInterface) {
	// Create proxies in the broad-phase.
	for i := range fix.M_proxies {
		proxy := &fix.M_proxies[i]
		Assert(proxy.ProxyId == NullProxy)

		fix.M_shape.ComputeAABB(&proxy.Aabb, fix.M_xf, i)
		proxy.Fixture = fix
		proxy.ChildIndex = i
		proxy.ProxyId = broadPhase.CreateProxy(proxy.Aabb, proxy)
	}
}

func (fix *Fixture) DestroyProxies(broadPhase BroadPhaseInterface) {
	// Destroy proxies in the broad-phase.
	for i := range fix.M_proxies {
		proxy := &fix.M_proxies[i]
		broadPhase.DestroyProxy(proxy.ProxyId)
		proxy.ProxyId = NullProxy
	}
}

/// Move the fixture to a new world transform and update its proxies.
func (fix *Fixture) SetTransform(xf Transform) {
	displacement := Vec2Sub(xf.P, fix.M_xf.P)
	fix.M_xf = xf

	broadPhase := fix.M_world.M_contactManager.M_broadPhase
	for i := range fix.M_proxies {
		proxy := &fix.M_proxies[i]
		if proxy.ProxyId == NullProxy {
			continue
		}

		fix.M_shape.ComputeAABB(&proxy.Aabb, xf, i)
		broadPhase.MoveProxy(proxy.ProxyId, proxy.Aabb, displacement)
	}
}

/// Set the contact filtering data. This will not update contacts until the
/// next world pass, but it does flag existing contacts for refiltering.
func (fix *Fixture) SetFilterData(filter Filter) {
	fix.M_filter = filter
	fix.Refilter()
}

func (fix *Fixture) Refilter() {
	if fix.M_world == nil {
		return
	}

	// Flag associated contacts for filtering.
	for _, contact := range fix.M_world.M_contactManager.M_contacts {
		if contact.GetFixtureA() == fix || contact.GetFixtureB() == fix {
			contact.FlagForFiltering()
		}
	}

	// Touch each proxy so that new pairs may be created.
	broadPhase := fix.M_world.M_contactManager.M_broadPhase
	for i := range fix.M_proxies {
		if fix.M_proxies[i].ProxyId != NullProxy {
			broadPhase.TouchProxy(fix.M_proxies[i].ProxyId)
		}
	}
}
