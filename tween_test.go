package primer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder returns a linear tween that appends every eased value it receives.
func recorder(duration float64, into *[]float64) *Tween {
	return NewTween(func(t float64) { *into = append(*into, t) }).
		WithDuration(duration).
		WithEasing(Linear)
}

// --- Atomic tweens ---

func TestNewTweenDefaults(t *testing.T) {
	tw := NewTween(nil)
	if tw.Duration != DefaultDuration {
		t.Errorf("Duration = %v, want %v", tw.Duration, DefaultDuration)
	}
	if tw.IsStarted() || tw.IsCompleted() || tw.IsDisposed() {
		t.Error("new tween should be idle")
	}
	tw.Step(1)
	if !tw.IsCompleted() {
		t.Error("tween without a step function should still complete")
	}
}

func TestTweenStepClamps(t *testing.T) {
	var got []float64
	tw := recorder(1, &got)
	tw.Step(-1)
	tw.Step(0.25)
	tw.Step(3)
	if diff := cmp.Diff([]float64{0, 0.25, 1}, got); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
}

func TestTweenEasingApplied(t *testing.T) {
	var got []float64
	tw := recorder(1, &got).WithEasing(func(t float64) float64 { return t * t })
	tw.Step(0.5)
	assertNear(t, "eased", got[0], 0.25)
}

func TestTweenBuildersClamp(t *testing.T) {
	tw := NewTween(nil).WithDuration(-2).WithDelay(-1).WithEasing(nil)
	if tw.Duration != 0 || tw.Delay != 0 {
		t.Errorf("Duration, Delay = %v, %v; want 0, 0", tw.Duration, tw.Delay)
	}
	assertNear(t, "easing", tw.Easing(0.3), 0.3)
	assertNear(t, "TotalDuration", NewTween(nil).WithDelay(1).WithDuration(2).TotalDuration(), 3)
}

func TestValueLazyStart(t *testing.T) {
	x := 1.0
	tw := Float(func(v float64) { x = v }, func() float64 { return x }, Const(5.0)).WithEasing(Linear)

	// Changed after construction but before the first step.
	x = 3
	tw.Step(0.5)
	assertNear(t, "x", x, 4)
	tw.Step(1)
	assertNear(t, "x", x, 5)
	tw.Step(0)
	assertNear(t, "x after rewind", x, 3)
}

func TestVectorAndQuatValue(t *testing.T) {
	var v Vec3
	VectorValue(func(p Vec3) { v = p }, Const(VecZero), Const(Vec3{2, 4, 6})).WithEasing(Linear).Step(0.5)
	assertVec(t, "vector", v, Vec3{1, 2, 3})

	var q Quat
	QuatValue(func(r Quat) { q = r }, Const(QuatIdentity()), Const(Euler(0, 0, 90))).Step(1)
	assertVec(t, "rotated", q.Rotate(VecX), VecY)
}

// --- Hooks ---

func TestHooksFireOnce(t *testing.T) {
	var log callLog
	tw := NewTween(func(float64) { log = append(log, "step") }).Observe(Hooks{
		BeforeStart:   log.hook("before"),
		OnStart:       log.hook("start"),
		AfterComplete: log.hook("complete"),
		OnDispose:     log.hook("dispose"),
	})

	tw.Step(0.5)
	tw.Step(1)
	tw.Step(1)
	tw.Dispose()
	tw.Dispose()

	want := callLog{"before", "start", "step", "step", "complete", "step", "dispose"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("hooks (-want +got):\n%s", diff)
	}
}

func TestPrepareRunsBetweenStartHooks(t *testing.T) {
	var log callLog
	inner := Value(func(float64) {}, func() float64 {
		log = append(log, "prepare")
		return 0
	}, Const(1.0), lerpFloat)
	tw := inner.Observe(Hooks{BeforeStart: log.hook("before"), OnStart: log.hook("start")})
	tw.Step(0)

	// The wrapper's hooks bracket its own first step; the inner tween prepares
	// when the wrapper drives it.
	if diff := cmp.Diff(callLog{"before", "start", "prepare"}, log); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestCancelSkipsAfterComplete(t *testing.T) {
	var log callLog
	tw := NewTween(nil).Observe(Hooks{
		AfterComplete: log.hook("complete"),
		OnDispose:     log.hook("dispose"),
	})
	tw.Step(0.5)
	tw.Dispose()
	tw.Step(1)

	if diff := cmp.Diff(callLog{"dispose"}, log); diff != "" {
		t.Errorf("hooks (-want +got):\n%s", diff)
	}
}

func TestAfterCompleteSeesFinalState(t *testing.T) {
	x := 0.0
	var seen float64
	tw := Float(func(v float64) { x = v }, Const(0.0), Const(10.0)).
		AfterComplete(func() { seen = x })
	tw.Step(1)
	assertNear(t, "seen", seen, 10)
}

func TestObserveCopiesTiming(t *testing.T) {
	inner := NewTween(nil).WithDuration(2).WithDelay(0.5)
	w := inner.OnDispose(func() {})
	if w.Duration != 2 || w.Delay != 0.5 {
		t.Errorf("wrapper timing = %v/%v, want 2/0.5", w.Duration, w.Delay)
	}
	w.Dispose()
	if !inner.IsDisposed() {
		t.Error("disposing the wrapper should dispose the inner tween")
	}
}

func TestDisposeChildrenBeforeParent(t *testing.T) {
	var log callLog
	a := NewTween(nil).OnDispose(log.hook("a"))
	b := NewTween(nil).OnDispose(log.hook("b"))
	p := Parallel(a, b).OnDispose(log.hook("parent"))
	p.Dispose()

	if diff := cmp.Diff(callLog{"a", "b", "parent"}, log); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

// --- Parallel ---

func TestParallelDuration(t *testing.T) {
	p := Parallel(
		NewTween(nil).WithDuration(1),
		NewTween(nil).WithDuration(2),
		NewTween(nil).WithDuration(0.5).WithDelay(2),
	)
	assertNear(t, "Duration", p.Duration, 2.5)
	if len(p.Children()) != 3 {
		t.Errorf("Children = %d, want 3", len(p.Children()))
	}
}

func TestParallelProgress(t *testing.T) {
	var short, long []float64
	p := Parallel(recorder(1, &short), recorder(2, &long))
	p.Step(0.25)
	p.Step(0.75)

	if diff := cmp.Diff([]float64{0.5, 1}, short); diff != "" {
		t.Errorf("short (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.25, 0.75}, long); diff != "" {
		t.Errorf("long (-want +got):\n%s", diff)
	}
}

func TestParallelCompletionOrder(t *testing.T) {
	var log callLog
	p := Parallel(
		NewTween(nil).WithDuration(1).AfterComplete(log.hook("a")),
		NewTween(nil).WithDuration(1).AfterComplete(log.hook("b")),
	).AfterComplete(log.hook("parent"))
	p.Step(1)

	if diff := cmp.Diff(callLog{"a", "b", "parent"}, log); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestParallelNilAndEmpty(t *testing.T) {
	p := Parallel(nil, nil)
	assertNear(t, "Duration", p.Duration, 0)
	p.Step(1)
	if !p.IsCompleted() {
		t.Error("empty composite should complete")
	}
}

// --- Sequential ---

func TestSequentialDuration(t *testing.T) {
	s := Sequential(
		NewTween(nil).WithDuration(1),
		nil,
		NewTween(nil).WithDuration(0.5).WithDelay(0.25),
	)
	assertNear(t, "Duration", s.Duration, 1.75)
	if len(s.Children()) != 2 {
		t.Errorf("Children = %d, want 2", len(s.Children()))
	}
}

func TestSequentialOrdering(t *testing.T) {
	var a, b []float64
	s := Sequential(recorder(1, &a), recorder(1, &b))

	s.Step(0.25)
	if len(b) != 0 {
		t.Fatalf("second tween stepped early: %v", b)
	}
	s.Step(0.75)
	if diff := cmp.Diff([]float64{0.5, 1}, a); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.5}, b); diff != "" {
		t.Errorf("b (-want +got):\n%s", diff)
	}
}

func TestSequentialSeesPreviousEndState(t *testing.T) {
	x := 0.0
	set := func(v float64) { x = v }
	get := func() float64 { return x }
	s := Sequential(
		Float(set, get, Const(4.0)).WithEasing(Linear),
		Float(set, get, Const(8.0)).WithEasing(Linear),
	)
	s.Step(0.75)
	assertNear(t, "x", x, 6)
}

func TestSequentialRewind(t *testing.T) {
	x := 0.0
	set := func(v float64) { x = v }
	get := func() float64 { return x }
	s := Sequential(
		Float(set, get, Const(4.0)).WithEasing(Linear),
		Float(set, get, Const(8.0)).WithEasing(Linear),
	)
	s.Step(1)
	assertNear(t, "x at end", x, 8)
	s.Step(0.25)
	assertNear(t, "x after seeking back", x, 2)
	s.Step(0)
	assertNear(t, "x at start", x, 0)
}

func TestSequentialZeroDurationChild(t *testing.T) {
	var log callLog
	s := Sequential(
		NewTween(nil).WithDuration(1),
		NewTween(func(float64) { log = append(log, "snap") }).WithDuration(0),
		NewTween(nil).WithDuration(1),
	)
	s.Step(0.25)
	if len(log) != 0 {
		t.Fatal("zero-duration child should wait for its start")
	}
	s.Step(0.5)
	if diff := cmp.Diff(callLog{"snap"}, log); diff != "" {
		t.Errorf("log (-want +got):\n%s", diff)
	}
}

func TestCompositeWithDuration(t *testing.T) {
	var a, b []float64
	s := Sequential(recorder(1, &a), recorder(3, &b)).WithDuration(2)

	assertNear(t, "Duration", s.Duration, 2)
	s.Step(0.25)
	if diff := cmp.Diff([]float64{1}, a); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0}, b); diff != "" {
		t.Errorf("b (-want +got):\n%s", diff)
	}
}

// --- Staggered ---

func TestSequentialWithDelay(t *testing.T) {
	var a, b, c []float64
	s := SequentialWithDelay(0.5, recorder(1, &a), recorder(1, &b), recorder(1, &c))
	assertNear(t, "Duration", s.Duration, 2)

	s.Step(0.5) // composite time 1
	if diff := cmp.Diff([]float64{1}, a); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.5}, b); diff != "" {
		t.Errorf("b (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0}, c); diff != "" {
		t.Errorf("c (-want +got):\n%s", diff)
	}
}

func TestSequentialWithZeroDelay(t *testing.T) {
	s := SequentialWithDelay(0, NewTween(nil).WithDuration(1), NewTween(nil).WithDuration(1))
	assertNear(t, "Duration", s.Duration, 2)
}
