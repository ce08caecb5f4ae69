package primer

import (
	"fmt"
	"iter"
)

// TransitionType is how one group animates between two states.
type TransitionType uint8

const (
	// TransitionLerped interpolates the group's glyphs directly.
	TransitionLerped TransitionType = iota
	// TransitionReplaced plays the old group out, then the new group in.
	TransitionReplaced
	// TransitionRemoved plays the old group out.
	TransitionRemoved
	// TransitionAdded plays the new group in.
	TransitionAdded
)

func (t TransitionType) String() string {
	switch t {
	case TransitionLerped:
		return "Lerped"
	case TransitionReplaced:
		return "Replaced"
	case TransitionRemoved:
		return "Removed"
	case TransitionAdded:
		return "Added"
	default:
		return fmt.Sprintf("TransitionType(%d)", uint8(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TransitionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TransitionType) UnmarshalText(b []byte) error {
	for v := TransitionLerped; v <= TransitionAdded; v++ {
		if v.String() == string(b) {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("unknown transition type %q", b)
}

// GroupState is one group of a TransitionState. Size is the group's glyph
// count, or -1 when unknown.
type GroupState struct {
	Index int
	Type  TransitionType
	Size  int
}

func (g GroupState) isLerped() bool   { return g.Type == TransitionLerped }
func (g GroupState) isReplaced() bool { return g.Type == TransitionReplaced }
func (g GroupState) isRemoved() bool  { return g.Type == TransitionRemoved }

// TransitionState is one side of a transition: the ordered groups of an
// expression, each tagged with how it takes part.
type TransitionState struct {
	groups []GroupState
}

// StateFromTypes builds a state from per-group transition types. Group sizes
// are unknown.
func StateFromTypes(types ...TransitionType) TransitionState {
	groups := make([]GroupState, len(types))
	for i, t := range types {
		groups[i] = GroupState{Index: i, Type: t, Size: -1}
	}
	return TransitionState{groups: groups}
}

// StateFromGroups builds a state from expression groups. Groups beyond the
// end of types default to TransitionLerped.
func StateFromGroups(groups []Expression, types []TransitionType) TransitionState {
	out := make([]GroupState, len(groups))
	for i, g := range groups {
		t := TransitionLerped
		if i < len(types) {
			t = types[i]
		}
		out[i] = GroupState{Index: i, Type: t, Size: g.Len()}
	}
	return TransitionState{groups: out}
}

// Len returns the number of groups.
func (s TransitionState) Len() int {
	return len(s.groups)
}

// Groups returns the state's groups in order.
func (s TransitionState) Groups() []GroupState {
	return s.groups
}

// GroupPair is a classified pair of groups at the same index.
type GroupPair struct {
	Index int
	Old   GroupState
	New   GroupState
	Type  TransitionType
}

func ensureSameGroupCount(op string, a, b TransitionState) error {
	if a.Len() != b.Len() {
		return &StructuralError{
			Op:     op,
			Err:    ErrGroupCountMismatch,
			Detail: fmt.Sprintf("%d != %d", a.Len(), b.Len()),
		}
	}
	return nil
}

// Classify pairs the groups of two states by index and tags each pair. Both
// states must have the same number of groups; otherwise a *StructuralError
// wrapping ErrGroupCountMismatch is returned.
func Classify(from, to TransitionState) ([]GroupPair, error) {
	if err := ensureSameGroupCount("Classify", from, to); err != nil {
		return nil, err
	}
	pairs := make([]GroupPair, len(from.groups))
	for i := range from.groups {
		o, n := from.groups[i], to.groups[i]
		pairs[i] = GroupPair{Index: i, Old: o, New: n, Type: classifyPair(o, n)}
	}
	return pairs, nil
}

func classifyPair(o, n GroupState) TransitionType {
	switch {
	case o.isReplaced() || n.isReplaced():
		return TransitionReplaced
	case o.isRemoved() && !n.isRemoved():
		return TransitionRemoved
	case o.isLerped() && n.isLerped():
		if o.Size >= 0 && n.Size >= 0 && o.Size != n.Size {
			return TransitionReplaced
		}
		return TransitionLerped
	case o.isRemoved() && n.isRemoved():
		return TransitionRemoved
	default:
		return TransitionAdded
	}
}

// needsExit reports whether the old side of a pair leaves the screen. Pairs
// that stay removed on both sides are already gone.
func needsExit(o, n GroupState) bool {
	switch classifyPair(o, n) {
	case TransitionReplaced:
		return true
	case TransitionRemoved:
		return !n.isRemoved()
	}
	return false
}

// GroupsToRemoveTransitioningTo yields the groups of s that must play an exit
// animation before other becomes visible. It panics with a *StructuralError
// if the group counts differ.
func (s TransitionState) GroupsToRemoveTransitioningTo(other TransitionState) iter.Seq[GroupState] {
	if err := ensureSameGroupCount("GroupsToRemoveTransitioningTo", s, other); err != nil {
		panic(err)
	}
	return func(yield func(GroupState) bool) {
		for i, g := range s.groups {
			o := other.groups[i]
			if needsExit(g, o) {
				if !yield(g) {
					return
				}
			}
		}
	}
}

// CommonGroups yields the index-paired groups that interpolate directly. It
// panics with a *StructuralError if the group counts differ.
func (s TransitionState) CommonGroups(other TransitionState) iter.Seq2[GroupState, GroupState] {
	if err := ensureSameGroupCount("CommonGroups", s, other); err != nil {
		panic(err)
	}
	return func(yield func(GroupState, GroupState) bool) {
		for i, g := range s.groups {
			o := other.groups[i]
			if classifyPair(g, o) == TransitionLerped {
				if !yield(g, o) {
					return
				}
			}
		}
	}
}
