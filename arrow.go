package primer

import "github.com/go-gl/mathgl/mgl64"

// ScenePoint is an arrow endpoint: either a fixed vector or a node to follow.
// A fixed vector is in the arrow's parent space unless IsWorldPosition is
// set.
type ScenePoint struct {
	Vector          Vec3
	IsWorldPosition bool

	follow *Node
}

// Point returns a fixed point in parent space.
func Point(v Vec3) *ScenePoint {
	return &ScenePoint{Vector: v}
}

// FollowPoint returns a point that tracks n's world position.
func FollowPoint(n *Node) *ScenePoint {
	return &ScenePoint{follow: n}
}

// Follow starts tracking n.
func (p *ScenePoint) Follow(n *Node) {
	p.follow = n
}

// IsTracking reports whether the point follows a live node.
func (p *ScenePoint) IsTracking() bool {
	return p.follow != nil && !p.follow.IsDisposed()
}

// StopTracking freezes the point at the followed node's current world
// position.
func (p *ScenePoint) StopTracking() {
	if p.IsTracking() {
		p.Vector = p.follow.WorldPosition()
		p.IsWorldPosition = true
	}
	p.follow = nil
}

// Resolve returns the point in the local space of space. A nil space means
// world space.
func (p *ScenePoint) Resolve(space *Node) Vec3 {
	switch {
	case p.IsTracking():
		return toSpace(space, p.follow.WorldPosition())
	case p.IsWorldPosition:
		return toSpace(space, p.Vector)
	default:
		return p.Vector
	}
}

func toSpace(space *Node, world Vec3) Vec3 {
	if space == nil {
		return world
	}
	return space.WorldToLocal(world)
}

// setLocal stores v, given in the local space of space, keeping the point's
// world or local mode.
func (p *ScenePoint) setLocal(space *Node, v Vec3) {
	p.follow = nil
	if p.IsWorldPosition && space != nil {
		v = space.LocalToWorld(v)
	}
	p.Vector = v
}

// ArrowAnimation selects the endpoints of Arrow.Animate. A nil field means the
// endpoint's current position. Points are resolved when the tween starts.
type ArrowAnimation struct {
	HeadEnd, TailEnd     *ScenePoint
	HeadStart, TailStart *ScenePoint
	// PreventRestoreTracking keeps endpoints fixed after the animation
	// even if they were following nodes before it.
	PreventRestoreTracking bool
}

// Arrow is a shaft with optional pointers at either end, stretched between a
// tail and a head point.
type Arrow struct {
	Tail, Head   *ScenePoint
	TailSpace    float64
	HeadSpace    float64
	TailPointer  bool
	HeadPointer  bool
	Thickness    float64
	AxisRotation float64
	ArrowLength  float64

	node       *Node
	parts      *Container
	primitives *PrimitiveCache
}

// NewArrow creates an arrow node named name under parent, configured from cfg.
func NewArrow(parent *Node, name string, cfg ArrowConfig, primitives *PrimitiveCache) *Arrow {
	node := parent.Scene().NewNode(name, NodeKindArrow)
	parent.AddChild(node)
	a := &Arrow{
		Tail:       Point(cfg.Tail),
		Head:       Point(cfg.Head),
		node:       node,
		parts:      NewContainer(node),
		primitives: primitives,
	}
	a.configure(cfg)
	a.Recalculate()
	return a
}

func (a *Arrow) configure(cfg ArrowConfig) {
	a.TailSpace = cfg.TailSpace
	a.HeadSpace = cfg.HeadSpace
	a.TailPointer = cfg.TailPointer
	a.HeadPointer = cfg.HeadPointer
	a.Thickness = cfg.Thickness
	a.AxisRotation = cfg.AxisRotation
	a.ArrowLength = cfg.ArrowLength
}

// Node returns the arrow root node.
func (a *Arrow) Node() *Node {
	return a.node
}

// Apply takes every setting from cfg immediately and returns a tween that
// moves the endpoints to cfg.Tail and cfg.Head.
func (a *Arrow) Apply(cfg ArrowConfig) *Tween {
	a.configure(cfg)
	return a.Animate(ArrowAnimation{TailEnd: Point(cfg.Tail), HeadEnd: Point(cfg.Head)})
}

func (a *Arrow) space() *Node {
	return a.node.Parent()
}

// TailPosition returns the tail in parent space.
func (a *Arrow) TailPosition() Vec3 {
	return a.Tail.Resolve(a.space())
}

// HeadPosition returns the head in parent space.
func (a *Arrow) HeadPosition() Vec3 {
	return a.Head.Resolve(a.space())
}

func (a *Arrow) realArrowLength() float64 {
	return a.ArrowLength * a.Thickness
}

func (a *Arrow) pointersLength() float64 {
	var l float64
	if a.TailPointer {
		l += a.realArrowLength()
	}
	if a.HeadPointer {
		l += a.realArrowLength()
	}
	return l
}

// Length returns the visible length between the spaces at each end.
func (a *Arrow) Length() float64 {
	return a.HeadPosition().Sub(a.TailPosition()).Len() - a.TailSpace - a.HeadSpace
}

// SetLength moves the head along the arrow so Length becomes l. Lengths
// shorter than the pointer heads are refused and SetLength reports false.
func (a *Arrow) SetLength(l float64) bool {
	if l < a.pointersLength() {
		return false
	}
	tail, head := a.TailPosition(), a.HeadPosition()
	diff := head.Sub(tail)
	if diff.Len() == 0 {
		return false
	}
	head = head.Add(diff.Normalize().Mul(l - a.Length()))
	a.Head.setLocal(a.space(), head)
	a.Recalculate()
	return true
}

// SetFromTo sets both endpoints to fixed points in parent space.
func (a *Arrow) SetFromTo(from, to Vec3) {
	a.Tail = Point(from)
	a.Head = Point(to)
	a.Recalculate()
}

// FollowNodes makes the endpoints track from and to.
func (a *Arrow) FollowNodes(from, to *Node) *Arrow {
	a.Tail.Follow(from)
	a.Head.Follow(to)
	return a
}

// StopFollowing freezes both endpoints where they are.
func (a *Arrow) StopFollowing() {
	a.Tail.StopTracking()
	a.Head.StopTracking()
}

// SwapEnds exchanges tail and head.
func (a *Arrow) SwapEnds() {
	a.Tail, a.Head = a.Head, a.Tail
	a.Recalculate()
}

// Recalculate places the arrow node at the tail, turns it toward the head and
// lays out the shaft and pointers along its +X axis.
func (a *Arrow) Recalculate() {
	tail, head := a.TailPosition(), a.HeadPosition()
	diff := head.Sub(tail)
	dist := diff.Len()

	a.node.Position = tail
	rotation := QuatIdentity()
	if dist > 0 {
		rotation = mgl64.QuatBetweenVectors(VecX, diff.Normalize())
	}
	a.node.Rotation = rotation.Mul(mgl64.QuatRotate(mgl64.DegToRad(a.AxisRotation), VecX))

	var startArrow, endArrow float64
	if a.TailPointer {
		startArrow = a.realArrowLength()
	}
	if a.HeadPointer {
		endArrow = a.realArrowLength()
	}
	shaftLength := max(dist-a.TailSpace-a.HeadSpace-startArrow-endArrow, 0)

	shaft := a.part("Shaft", PrimitiveCylinder)
	shaft.Position = Vec3{a.TailSpace + startArrow, 0, 0}
	shaft.Scale = Vec3{shaftLength, a.Thickness, a.Thickness}

	if a.HeadPointer {
		h := a.part("Head", PrimitiveCone)
		h.Position = Vec3{dist - a.HeadSpace, 0, 0}
		h.Rotation = QuatIdentity()
		h.Scale = Uniform(a.Thickness)
	}
	if a.TailPointer {
		t := a.part("Tail", PrimitiveCone)
		t.Position = Vec3{a.TailSpace, 0, 0}
		t.Rotation = Euler(0, 180, 0)
		t.Scale = Uniform(a.Thickness)
	}
	a.parts.Purge(false)
}

func (a *Arrow) part(name string, typ PrimitiveType) *Node {
	if a.primitives != nil {
		return a.parts.AddPrimitive(a.primitives, typ, name)
	}
	return a.parts.Add(name)
}

// --- Animations ---

// Animate returns a tween that moves the endpoints. Endpoints that were
// following nodes resume following when the tween completes, unless
// PreventRestoreTracking is set.
func (a *Arrow) Animate(anim ArrowAnimation) *Tween {
	tailFollow, headFollow := a.Tail.follow, a.Head.follow
	tracking := a.Tail.IsTracking() || a.Head.IsTracking()

	var tailFrom, tailTo, headFrom, headTo Vec3
	resolve := func(p, current *ScenePoint) Vec3 {
		if p == nil {
			p = current
		}
		return p.Resolve(a.space())
	}

	tw := NewTween(func(t float64) {
		if a.node.IsDisposed() {
			return
		}
		a.Tail.setLocal(a.space(), LerpVec3(tailFrom, tailTo, t))
		a.Head.setLocal(a.space(), LerpVec3(headFrom, headTo, t))
		a.Recalculate()
	})
	tw.prepare = func() {
		tailFrom = resolve(anim.TailStart, a.Tail)
		tailTo = resolve(anim.TailEnd, a.Tail)
		headFrom = resolve(anim.HeadStart, a.Head)
		headTo = resolve(anim.HeadEnd, a.Head)
	}

	if anim.PreventRestoreTracking || !tracking {
		return tw
	}
	return tw.AfterComplete(func() {
		if tailFollow != nil {
			a.Tail.Follow(tailFollow)
		}
		if headFollow != nil {
			a.Head.Follow(headFollow)
		}
		a.Recalculate()
	})
}

// GrowFromStart collapses the head onto the tail and returns a tween that
// extends it back out. The arrow is activated when the tween starts.
func (a *Arrow) GrowFromStart() *Tween {
	original := *a.Head
	*a.Head = *a.Tail
	a.Recalculate()

	return a.Animate(ArrowAnimation{HeadEnd: &original}).Observe(Hooks{
		BeforeStart: func() { a.node.SetActive(true) },
		AfterComplete: func() {
			*a.Head = original
			a.Recalculate()
		},
	})
}

// ShrinkToEnd returns a tween that pulls the tail onto the head and then
// deactivates the arrow. With restoreTracking the endpoints resume following
// their nodes afterwards.
func (a *Arrow) ShrinkToEnd(restoreTracking bool) *Tween {
	head := *a.Head
	return a.Animate(ArrowAnimation{TailEnd: &head, PreventRestoreTracking: !restoreTracking}).Observe(Hooks{
		BeforeStart:   a.StopFollowing,
		AfterComplete: func() { a.node.SetActive(false) },
	})
}
