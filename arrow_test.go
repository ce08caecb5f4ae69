package primer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestArrow(cfg ArrowConfig) (*Scene, *Arrow) {
	s := NewScene()
	return s, NewArrow(s.Root(), "Arrow", cfg, NewPrimitiveCache(s))
}

func TestNewArrowLayout(t *testing.T) {
	_, a := newTestArrow(DefaultArrowConfig())

	if a.Node().Kind != NodeKindArrow {
		t.Errorf("Kind = %q, want Arrow", a.Node().Kind)
	}
	if diff := cmp.Diff([]string{"Shaft", "Head"}, names(a.Node().Children())); diff != "" {
		t.Fatalf("parts (-want +got):\n%s", diff)
	}
	assertNear(t, "Length", a.Length(), math.Sqrt(3))

	dir := Vec3{1, 1, 1}.Normalize()
	assertVec(t, "facing", a.Node().Rotation.Rotate(VecX), dir)

	shaft := a.Node().FindChild("Shaft")
	assertNear(t, "shaft length", shaft.Scale.X(), math.Sqrt(3)-0.18)
	if shaft.UserData != PrimitiveCylinder {
		t.Errorf("shaft UserData = %v, want Cylinder", shaft.UserData)
	}
	head := a.Node().FindChild("Head")
	assertVec(t, "head", head.Position, Vec3{math.Sqrt(3), 0, 0})
}

func TestArrowPointersAndSpaces(t *testing.T) {
	cfg := DefaultArrowConfig()
	cfg.Head = Vec3{4, 0, 0}
	cfg.TailPointer = true
	cfg.TailSpace = 0.5
	cfg.HeadSpace = 0.25
	cfg.Thickness = 2
	_, a := newTestArrow(cfg)

	if diff := cmp.Diff([]string{"Shaft", "Head", "Tail"}, names(a.Node().Children())); diff != "" {
		t.Fatalf("parts (-want +got):\n%s", diff)
	}
	// Each pointer is 0.18 * 2 long.
	shaft := a.Node().FindChild("Shaft")
	assertNear(t, "shaft length", shaft.Scale.X(), 4-0.5-0.25-0.72)
	assertNear(t, "shaft start", shaft.Position.X(), 0.5+0.36)
	assertNear(t, "Length", a.Length(), 3.25)
	assertVec(t, "tail", a.Node().FindChild("Tail").Position, Vec3{0.5, 0, 0})

	a.TailPointer = false
	a.Recalculate()
	if a.Node().FindChild("Tail") != nil {
		t.Error("tail pointer should be removed")
	}
}

func TestArrowSetLength(t *testing.T) {
	cfg := DefaultArrowConfig()
	cfg.Head = Vec3{2, 0, 0}
	_, a := newTestArrow(cfg)

	if !a.SetLength(5) {
		t.Fatal("SetLength(5) refused")
	}
	assertVec(t, "head", a.HeadPosition(), Vec3{5, 0, 0})
	assertNear(t, "Length", a.Length(), 5)

	if a.SetLength(0.1) {
		t.Error("length shorter than the pointer should be refused")
	}
	assertNear(t, "Length", a.Length(), 5)
}

func TestArrowSetFromToAndSwap(t *testing.T) {
	_, a := newTestArrow(DefaultArrowConfig())
	a.SetFromTo(Vec3{1, 0, 0}, Vec3{1, 3, 0})
	assertVec(t, "node", a.Node().Position, Vec3{1, 0, 0})
	assertVec(t, "facing", a.Node().Rotation.Rotate(VecX), VecY)

	a.SwapEnds()
	assertVec(t, "tail", a.TailPosition(), Vec3{1, 3, 0})
	assertVec(t, "facing", a.Node().Rotation.Rotate(VecX), VecY.Mul(-1))
}

func TestArrowFollowNodes(t *testing.T) {
	s, a := newTestArrow(DefaultArrowConfig())
	from := s.NewNode("from", NodeKindGroup)
	to := s.NewNode("to", NodeKindGroup)
	s.Root().AddChild(from)
	s.Root().AddChild(to)
	to.SetPosition(0, 2, 0)

	a.FollowNodes(from, to).Recalculate()
	assertNear(t, "Length", a.Length(), 2)

	to.SetPosition(0, 5, 0)
	a.Recalculate()
	assertNear(t, "Length after move", a.Length(), 5)

	a.StopFollowing()
	to.SetPosition(0, 9, 0)
	if a.Head.IsTracking() {
		t.Error("head should no longer track")
	}
	assertVec(t, "frozen head", a.HeadPosition(), Vec3{0, 5, 0})
}

func TestScenePointResolveSpaces(t *testing.T) {
	s := NewScene()
	space := s.NewNode("space", NodeKindGroup)
	space.SetPosition(10, 0, 0)

	local := Point(Vec3{1, 0, 0})
	assertVec(t, "local", local.Resolve(space), Vec3{1, 0, 0})

	world := &ScenePoint{Vector: Vec3{1, 0, 0}, IsWorldPosition: true}
	assertVec(t, "world", world.Resolve(space), Vec3{-9, 0, 0})
	assertVec(t, "world in nil space", world.Resolve(nil), Vec3{1, 0, 0})

	target := s.NewNode("target", NodeKindGroup)
	target.SetPosition(12, 0, 0)
	follow := FollowPoint(target)
	assertVec(t, "follow", follow.Resolve(space), Vec3{2, 0, 0})

	target.Dispose()
	if follow.IsTracking() {
		t.Error("a disposed node cannot be tracked")
	}
}

func TestArrowApplyAnimates(t *testing.T) {
	_, a := newTestArrow(DefaultArrowConfig())
	cfg := DefaultArrowConfig()
	cfg.Head = Vec3{2, 0, 0}
	cfg.Thickness = 3

	tw := a.Apply(cfg)
	if a.Thickness != 3 {
		t.Error("settings should apply immediately")
	}
	assertVec(t, "head before", a.HeadPosition(), VecOne)
	tw.Step(1)
	assertVec(t, "head after", a.HeadPosition(), Vec3{2, 0, 0})
}

func TestArrowAnimateRestoresTracking(t *testing.T) {
	s, a := newTestArrow(DefaultArrowConfig())
	target := s.NewNode("target", NodeKindGroup)
	s.Root().AddChild(target)
	target.SetPosition(0, 0, 4)
	a.Head.Follow(target)

	tw := a.Animate(ArrowAnimation{HeadEnd: Point(Vec3{3, 0, 0})})
	tw.Step(0.5)
	if a.Head.IsTracking() {
		t.Error("head should be fixed while animating")
	}
	tw.Step(1)
	if !a.Head.IsTracking() {
		t.Fatal("head should resume tracking after the animation")
	}
	assertVec(t, "head", a.HeadPosition(), Vec3{0, 0, 4})

	tw = a.Animate(ArrowAnimation{HeadEnd: Point(Vec3{3, 0, 0}), PreventRestoreTracking: true})
	tw.Step(1)
	if a.Head.IsTracking() {
		t.Error("PreventRestoreTracking should keep the head fixed")
	}
}

func TestArrowGrowFromStart(t *testing.T) {
	_, a := newTestArrow(DefaultArrowConfig())
	a.Node().SetActive(false)

	tw := a.GrowFromStart()
	assertNear(t, "collapsed", a.Length(), 0)

	tw.Step(0)
	if !a.Node().Active() {
		t.Error("arrow should activate when the tween starts")
	}
	tw.Step(1)
	assertVec(t, "head", a.HeadPosition(), VecOne)
}

func TestArrowShrinkToEnd(t *testing.T) {
	_, a := newTestArrow(DefaultArrowConfig())
	tw := a.ShrinkToEnd(false)
	tw.Step(1)

	assertVec(t, "tail", a.TailPosition(), VecOne)
	if a.Node().Active() {
		t.Error("arrow should deactivate after shrinking")
	}
}

func TestArrowAnimateAfterDispose(t *testing.T) {
	_, a := newTestArrow(DefaultArrowConfig())
	tw := a.Animate(ArrowAnimation{HeadEnd: Point(Vec3{5, 0, 0})})
	a.Node().Dispose()
	tw.Step(1)
	assertVec(t, "head", a.Head.Vector, VecOne)
}
