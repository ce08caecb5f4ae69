package primer

import "testing"

func TestMoveToCapturesStartLazily(t *testing.T) {
	n := NewScene().NewNode("n", NodeKindGroup)
	tw := MoveTo(n, Vec3{10, 0, 0}).WithEasing(Linear)
	n.Position = Vec3{2, 0, 0}

	tw.Step(0.5)
	assertVec(t, "Position", n.Position, Vec3{6, 0, 0})
}

func TestScaleFromTo(t *testing.T) {
	n := NewScene().NewNode("n", NodeKindGroup)
	tw := ScaleFromTo(n, Const(VecZero), VecOne).WithEasing(Linear)
	tw.Step(0)
	assertVec(t, "Scale", n.Scale, VecZero)
	tw.Step(0.5)
	assertVec(t, "Scale", n.Scale, Uniform(0.5))
}

func TestRotateToAndFadeTo(t *testing.T) {
	n := NewScene().NewNode("n", NodeKindGroup)
	RotateTo(n, Euler(0, 0, 90)).Step(1)
	assertVec(t, "rotated", n.Rotation.Rotate(VecX), VecY)

	FadeTo(n, 0.2).WithEasing(Linear).Step(0.5)
	assertNear(t, "Opacity", n.Opacity, 0.6)
}

func TestTransformTo(t *testing.T) {
	n := NewScene().NewNode("n", NodeKindGroup)
	to := Transform{Position: Vec3{2, 2, 2}, Rotation: QuatIdentity(), Scale: Uniform(3)}
	TransformTo(n, to).Step(1)
	if n.LocalTransform() != to {
		t.Errorf("LocalTransform = %+v, want %+v", n.LocalTransform(), to)
	}
}

func TestAnimationSkipsDisposedNode(t *testing.T) {
	n := NewScene().NewNode("n", NodeKindGroup)
	tw := MoveTo(n, Vec3{1, 0, 0})
	tw.Step(0)
	n.Dispose()
	tw.Step(1)
	if n.Position != VecZero {
		t.Errorf("Position = %v, want unchanged", n.Position)
	}
}

func TestShrinkAndDispose(t *testing.T) {
	n := NewScene().NewNode("n", NodeKindGroup)
	tw := ShrinkAndDispose(n)
	tw.Step(0.5)
	if n.IsDisposed() {
		t.Fatal("node disposed before the tween")
	}
	tw.Step(1)
	assertVec(t, "Scale", n.Scale, VecZero)
	tw.Dispose()
	if !n.IsDisposed() {
		t.Error("node should be disposed with the tween")
	}
}

func TestShrinkAndDisposeCancelled(t *testing.T) {
	n := NewScene().NewNode("n", NodeKindGroup)
	ShrinkAndDispose(n).Dispose()
	if !n.IsDisposed() {
		t.Error("cancelled exit should still dispose the node")
	}
}
