package primer

// DefaultDuration is the duration, in seconds, of a tween built without an
// explicit duration.
const DefaultDuration = 0.5

// Hooks are optional lifecycle callbacks attached with Tween.Observe. Each
// fires at most once per tween.
type Hooks struct {
	// BeforeStart runs on the first step, before start values are captured.
	BeforeStart func()
	// OnStart runs on the first step, after start values are captured.
	OnStart func()
	// AfterComplete runs once when the tween first reaches t >= 1. It never
	// runs for a tween disposed before completion.
	AfterComplete func()
	// OnDispose runs exactly once when the tween is disposed, whether it
	// completed or was cancelled.
	OnDispose func()
}

// Tween is a time-parameterized unit of animation. Its step function maps
// normalized, eased progress to a side effect and must be replay-idempotent:
// stepping twice with the same t yields the same state.
//
// A Tween is driven by calling Step with non-decreasing t in [0, 1], or by a
// scheduler such as Player or Sequence. Composite tweens own their children:
// disposing a composite disposes every child.
type Tween struct {
	Duration float64
	Delay    float64
	Easing   Easing

	apply    func(e float64, done *[]*Tween)
	prepare  func()
	children []*Tween
	hooks    Hooks

	started   bool
	completed bool
	disposed  bool
}

// NewTween creates an atomic tween that calls step with eased progress.
// It uses DefaultDuration and cubic in-out easing.
func NewTween(step func(t float64)) *Tween {
	tw := &Tween{Duration: DefaultDuration, Easing: InOutCubic}
	if step != nil {
		tw.apply = func(e float64, _ *[]*Tween) { step(e) }
	}
	return tw
}

// Noop returns a zero-duration tween with no effect. It is the identity
// element for Parallel and Sequential.
func Noop() *Tween {
	return &Tween{Easing: Linear}
}

// --- Builders ---

// WithDuration rescales the tween's time base. The relative shape of its
// easing curve, and of a composite's child layout, is unchanged.
func (tw *Tween) WithDuration(d float64) *Tween {
	if d < 0 {
		d = 0
	}
	tw.Duration = d
	return tw
}

// WithDelay sets the delay a scheduler waits before starting the tween.
func (tw *Tween) WithDelay(d float64) *Tween {
	if d < 0 {
		d = 0
	}
	tw.Delay = d
	return tw
}

// WithEasing replaces the easing curve. Nil selects linear.
func (tw *Tween) WithEasing(e Easing) *Tween {
	if e == nil {
		e = Linear
	}
	tw.Easing = e
	return tw
}

// Observe wraps tw with lifecycle hooks. The wrapper adopts tw's duration and
// delay and owns tw, so disposing the wrapper disposes tw before OnDispose
// fires.
func (tw *Tween) Observe(h Hooks) *Tween {
	w := &Tween{
		Duration: tw.Duration,
		Delay:    tw.Delay,
		Easing:   Linear,
		hooks:    h,
		children: []*Tween{tw},
	}
	w.apply = func(e float64, done *[]*Tween) { tw.update(e, done) }
	return w
}

// OnDispose is shorthand for Observe(Hooks{OnDispose: fn}).
func (tw *Tween) OnDispose(fn func()) *Tween {
	return tw.Observe(Hooks{OnDispose: fn})
}

// AfterComplete is shorthand for Observe(Hooks{AfterComplete: fn}).
func (tw *Tween) AfterComplete(fn func()) *Tween {
	return tw.Observe(Hooks{AfterComplete: fn})
}

// --- State ---

// TotalDuration returns Delay + Duration.
func (tw *Tween) TotalDuration() float64 {
	return tw.Delay + tw.Duration
}

// IsStarted reports whether the tween has been stepped at least once.
func (tw *Tween) IsStarted() bool {
	return tw.started
}

// IsCompleted reports whether the tween has reached t >= 1.
func (tw *Tween) IsCompleted() bool {
	return tw.completed
}

// IsDisposed reports whether Dispose has been called.
func (tw *Tween) IsDisposed() bool {
	return tw.disposed
}

// --- Driving ---

// Step advances the tween to normalized time t, clamped to [0, 1]. Passing 0
// restores the start state; passing 1 snaps to the end state. Completion
// hooks run after every step effect of this call has been applied, children
// before their parents.
func (tw *Tween) Step(t float64) {
	var done []*Tween
	tw.update(t, &done)
	for _, c := range done {
		if c.hooks.AfterComplete != nil && !c.disposed {
			c.hooks.AfterComplete()
		}
	}
}

func (tw *Tween) update(t float64, done *[]*Tween) {
	if tw.disposed {
		return
	}
	t = clamp01(t)
	if !tw.started {
		tw.started = true
		if tw.hooks.BeforeStart != nil {
			tw.hooks.BeforeStart()
		}
		if tw.prepare != nil {
			tw.prepare()
		}
		if tw.hooks.OnStart != nil {
			tw.hooks.OnStart()
		}
	}
	if tw.apply != nil {
		e := t
		if tw.Easing != nil {
			e = tw.Easing(t)
		}
		tw.apply(e, done)
	}
	if t >= 1 && !tw.completed {
		tw.completed = true
		*done = append(*done, tw)
	}
}

// Dispose cancels the tween. Children are disposed first, then OnDispose
// fires. Disposing twice is a no-op.
func (tw *Tween) Dispose() {
	if tw.disposed {
		return
	}
	tw.disposed = true
	for _, c := range tw.children {
		c.Dispose()
	}
	if tw.hooks.OnDispose != nil {
		tw.hooks.OnDispose()
	}
}

// --- Value tweens ---

// Value builds an atomic tween that interpolates from start() to end() and
// hands each intermediate value to set. start and end are evaluated lazily on
// the first step, so they observe state left by earlier tweens in a sequence.
func Value[T any](set func(T), start, end func() T, lerp func(a, b T, t float64) T) *Tween {
	var from, to T
	tw := NewTween(func(t float64) { set(lerp(from, to, t)) })
	tw.prepare = func() {
		from = start()
		to = end()
	}
	return tw
}

// Float is Value for float64.
func Float(set func(float64), start, end func() float64) *Tween {
	return Value(set, start, end, lerpFloat)
}

// VectorValue is Value for Vec3, interpolated component-wise.
func VectorValue(set func(Vec3), start, end func() Vec3) *Tween {
	return Value(set, start, end, LerpVec3)
}

// QuatValue is Value for rotations, interpolated along the shorter arc.
func QuatValue(set func(Quat), start, end func() Quat) *Tween {
	return Value(set, start, end, SlerpQuat)
}

func lerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Const returns a getter for a fixed value.
func Const[T any](v T) func() T {
	return func() T { return v }
}
