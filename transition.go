package primer

import (
	"fmt"
	"strconv"
)

// morph animates one glyph node between two transforms inside the time
// window [from, to] of the transition.
type morph struct {
	node       *Node
	start, end Transform
	from, to   float64
}

// Transition is a temporary node that morphs one rendered expression into
// another. Groups are paired by index and classified; lerped groups move
// glyph by glyph, the others play out and in.
type Transition struct {
	node      *Node
	glyphs    *Container
	morphs    []morph
	from, to  *ExpressionRenderer
	offset    Vec3
	fromCount int
	toCount   int
}

// NewTransition builds the transition node next to from's node, carrying
// from's local transform. fromTypes and toTypes tag each group; nil tags every
// group as lerped. It fails with a *StructuralError if the two renderers have
// a different number of groups.
func NewTransition(from, to *ExpressionRenderer, fromTypes, toTypes []TransitionType) (*Transition, error) {
	fromGroups := from.Groups()
	toGroups := to.Groups()
	pairs, err := Classify(StateFromGroups(fromGroups, fromTypes), StateFromGroups(toGroups, toTypes))
	if err != nil {
		return nil, err
	}

	node := from.node.scene.NewNode("Transition", NodeKindGroup)
	if p := from.node.Parent(); p != nil {
		p.AddChild(node)
	}
	node.SetLocalTransform(from.node.LocalTransform())

	tr := &Transition{
		node:      node,
		glyphs:    NewContainer(node),
		from:      from,
		to:        to,
		fromCount: from.GlyphCount(),
		toCount:   to.GlyphCount(),
	}

	// Keep the first common group still so the eye can follow it.
	for _, p := range pairs {
		fg, tg := fromGroups[p.Index], toGroups[p.Index]
		if p.Type == TransitionLerped && !fg.IsEmpty() && !tg.IsEmpty() {
			tr.offset = fg[0].Position.Sub(tg[0].Position)
			break
		}
	}

	for _, p := range pairs {
		fg := fromGroups[p.Index]
		tg := toGroups[p.Index].Translate(tr.offset)
		switch p.Type {
		case TransitionLerped:
			for j := range max(len(fg), len(tg)) {
				switch {
				case j < len(fg) && j < len(tg):
					tr.add(fg[j], glyphTransform(fg[j]), glyphTransform(tg[j]), 0, 1)
				case j < len(fg):
					tr.exit(fg[j], 0, 1)
				default:
					tr.enter(tg[j], 0, 1)
				}
			}
		case TransitionReplaced:
			for _, g := range fg {
				tr.exit(g, 0, 0.5)
			}
			for _, g := range tg {
				tr.enter(g, 0.5, 1)
			}
		default:
			for _, g := range fg {
				tr.exit(g, 0, 1)
			}
			for _, g := range tg {
				tr.enter(g, 0, 1)
			}
		}
	}
	tr.glyphs.Purge(false)

	Logger().Debug("transition built",
		"from", from.node.Name, "to", to.node.Name, "groups", len(pairs), "glyphs", len(tr.morphs))

	tr.Apply(0)
	return tr, nil
}

func glyphTransform(g Glyph) Transform {
	return Transform{Position: g.Position, Rotation: QuatIdentity(), Scale: Uniform(g.scale())}
}

func (tr *Transition) add(g Glyph, start, end Transform, from, to float64) {
	n := tr.glyphs.Next("Glyph "+strconv.Itoa(len(tr.morphs)), NodeKindGlyph, nil, nil)
	n.UserData = g
	tr.morphs = append(tr.morphs, morph{node: n, start: start, end: end, from: from, to: to})
}

func (tr *Transition) exit(g Glyph, from, to float64) {
	end := glyphTransform(g)
	end.Scale = VecZero
	tr.add(g, glyphTransform(g), end, from, to)
}

func (tr *Transition) enter(g Glyph, from, to float64) {
	start := glyphTransform(g)
	start.Scale = VecZero
	tr.add(g, start, glyphTransform(g), from, to)
}

// Apply positions every glyph at transition time t in [0, 1].
func (tr *Transition) Apply(t float64) {
	t = clamp01(t)
	for _, m := range tr.morphs {
		local := 1.0
		if span := m.to - m.from; span > 0 {
			local = clamp01((t - m.from) / span)
		} else if t < m.from {
			local = 0
		}
		m.node.SetLocalTransform(LerpTransform(m.start, m.end, local))
	}
}

// Offset returns the displacement applied to the destination glyphs so the
// first common group does not move.
func (tr *Transition) Offset() Vec3 {
	return tr.offset
}

// IsStale reports whether either renderer's glyph count changed since the
// transition was built. A stale transition must be rebuilt before use.
func (tr *Transition) IsStale() bool {
	return tr.from.GlyphCount() != tr.fromCount || tr.to.GlyphCount() != tr.toCount
}

// Node returns the transition's root node.
func (tr *Transition) Node() *Node {
	return tr.node
}

// Len returns the number of animated glyphs.
func (tr *Transition) Len() int {
	return len(tr.morphs)
}

// Dispose removes the transition node and its glyphs.
func (tr *Transition) Dispose() {
	tr.node.Dispose()
}

// ScrubState is the phase of an ExpressionScrubbable.
type ScrubState uint8

const (
	ScrubUnset ScrubState = iota
	ScrubInitial
	ScrubTransitioning
	ScrubEnded
)

func (s ScrubState) String() string {
	switch s {
	case ScrubUnset:
		return "Unset"
	case ScrubInitial:
		return "Initial"
	case ScrubTransitioning:
		return "Transitioning"
	case ScrubEnded:
		return "Ended"
	default:
		return fmt.Sprintf("ScrubState(%d)", uint8(s))
	}
}

// ExpressionScrubbable morphs From into To as time goes from 0 to 1.
//
//   - t <= 0 shows only From.
//   - 0 < t < 1 hides both and shows a Transition.
//   - t >= 1 shows only To, moved so that the common groups line up with
//     where they were in From.
//
// Entering Initial or Ended again is a no-op.
type ExpressionScrubbable struct {
	From, To  *ExpressionRenderer
	FromTypes []TransitionType
	ToTypes   []TransitionType

	transition *Transition
	state      ScrubState
}

var _ Scrubbable = (*ExpressionScrubbable)(nil)

func (s *ExpressionScrubbable) valid() bool {
	return s.From != nil && s.To != nil
}

// State returns the current phase.
func (s *ExpressionScrubbable) State() ScrubState {
	return s.state
}

// Transition returns the live transition, or nil outside the transitioning
// phase.
func (s *ExpressionScrubbable) Transition() *Transition {
	return s.transition
}

// Prepare builds the transition ahead of the first update.
func (s *ExpressionScrubbable) Prepare() {
	if !s.valid() {
		return
	}
	s.ensureTransition()
}

// Update moves to time t.
func (s *ExpressionScrubbable) Update(t float64) {
	if !s.valid() {
		return
	}
	switch {
	case t <= 0:
		s.setInitialState()
	case t >= 1:
		s.setEndState()
	default:
		s.setTransitionState(t)
	}
}

// Cleanup restores the initial state.
func (s *ExpressionScrubbable) Cleanup() {
	if s.From == nil {
		return
	}
	s.setInitialState()
}

// Tween adapts the scrubbable into a tween.
func (s *ExpressionScrubbable) Tween() *Tween {
	return ScrubbableTween(s)
}

// Dispose restores the initial state and removes any transition node.
func (s *ExpressionScrubbable) Dispose() {
	s.Cleanup()
	s.resetTransition()
}

func (s *ExpressionScrubbable) ensureTransition() *Transition {
	if s.transition != nil {
		return s.transition
	}
	tr, err := NewTransition(s.From, s.To, s.FromTypes, s.ToTypes)
	if err != nil {
		panic(err)
	}
	s.transition = tr
	s.state = ScrubTransitioning
	s.From.node.SetActive(false)
	s.To.node.SetActive(false)
	return tr
}

func (s *ExpressionScrubbable) resetTransition() {
	if s.transition != nil {
		s.transition.Dispose()
		s.transition = nil
	}
}

func (s *ExpressionScrubbable) setInitialState() {
	if s.state == ScrubInitial {
		return
	}
	s.state = ScrubInitial
	s.resetTransition()
	s.From.node.SetActive(true)
	if s.To != nil {
		s.To.node.SetActive(false)
	}
}

func (s *ExpressionScrubbable) setEndState() {
	if s.state == ScrubEnded {
		return
	}
	offset := s.ensureTransition().Offset()
	s.state = ScrubEnded
	s.resetTransition()
	s.From.node.SetActive(false)
	s.To.node.SetActive(true)

	from := s.From.node.LocalTransform()
	s.To.node.SetLocalTransform(Transform{
		Position: from.Apply(offset),
		Rotation: from.Rotation,
		Scale:    from.Scale,
	})
}

func (s *ExpressionScrubbable) setTransitionState(t float64) {
	if s.transition != nil && s.transition.IsStale() {
		s.resetTransition()
	}
	s.ensureTransition().Apply(t)
}
