package collider

import "github.com/go-gl/mathgl/mgl32"

// ShapeKind discriminates the collider shape union.
type ShapeKind uint8

const (
	ShapeAABB ShapeKind = iota
	ShapeCircle
	ShapePoint
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeAABB:
		return "aabb"
	case ShapeCircle:
		return "circle"
	case ShapePoint:
		return "point"
	default:
		return "unknown"
	}
}

// FrameId is a dense index into the current frame's collider arena. It is
// only valid between the push that produced it and the next BeginFrame.
type FrameId uint32

// InvalidFrameId never names a real collider.
const InvalidFrameId FrameId = ^FrameId(0)

// ColKey is an opaque application-supplied identifier a caller can use to
// look a collider up by its own notion of identity instead of FrameId.
type ColKey uint64

// Collider is a frame-scoped shape: AABB, circle or point, plus the motion
// and consent data the broadphase and narrowphase need. HalfExtents is only
// meaningful for ShapeAABB, Radius only for ShapeCircle; points carry
// neither.
type Collider struct {
	ID          FrameId
	Kind        ShapeKind
	Center      mgl32.Vec2
	HalfExtents mgl32.Vec2
	Radius      float32
	Velocity    mgl32.Vec2
	Mask        LayerMask
	Key         ColKey
	HasKey      bool

	// Frozen by ComputeFrameAABB during EndFrame; zero until then. EndAABB is
	// the static box translated by velocity*dt; SweptAABB is its union with
	// StaticAABB. The grid keeps EndAABB around to bin tightened sweeps
	// without recomputing it per collider.
	StaticAABB AABB
	EndAABB    AABB
	SweptAABB  AABB
}

// staticAABB computes the un-swept bounding box at the collider's current
// center.
func (c *Collider) staticAABB() AABB {
	switch c.Kind {
	case ShapeAABB:
		return AABB{Min: c.Center.Sub(c.HalfExtents), Max: c.Center.Add(c.HalfExtents)}
	case ShapeCircle:
		r := mgl32.Vec2{c.Radius, c.Radius}
		return AABB{Min: c.Center.Sub(r), Max: c.Center.Add(r)}
	default: // ShapePoint
		return AABB{Min: c.Center, Max: c.Center}
	}
}

// ComputeFrameAABB freezes StaticAABB and SweptAABB for the given frame
// duration, per §3 of the spec: the swept AABB is the union of the static
// AABB at t=0 and at t=dt*velocity.
func (c *Collider) ComputeFrameAABB(dt float32) {
	c.StaticAABB = c.staticAABB()
	displacement := c.Velocity.Mul(dt)
	c.EndAABB = c.StaticAABB.Translate(displacement)
	c.SweptAABB = c.StaticAABB.Union(c.EndAABB)
}
