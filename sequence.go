package primer

// Scrubbable is an effect that can be positioned at any normalized time. It
// is the capability set a timeline clip needs: Prepare captures start state,
// Update applies the effect at t, Cleanup restores what Prepare captured.
type Scrubbable interface {
	Prepare()
	Update(t float64)
	Cleanup()
}

// ScrubbableTween adapts s into a tween. Prepare runs on the first step.
// Cleanup runs when the tween is disposed without having completed, so a
// cancelled effect leaves no trace.
func ScrubbableTween(s Scrubbable) *Tween {
	tw := NewTween(s.Update)
	tw.prepare = s.Prepare
	return tw.OnDispose(func() {
		if !tw.IsCompleted() {
			s.Cleanup()
		}
	})
}

// SequenceStep produces the tween for one step of a Sequence. It is called
// when the step is first reached, so it may read state left by earlier steps.
type SequenceStep func() *Tween

// Sequence plays a list of steps one at a time, driven by an external
// timeline. Instead of suspending between steps it keeps an explicit cursor,
// so a caller can resume, jump forward or restart on any tick.
type Sequence struct {
	// Prepare, if set, runs before the first step is produced.
	Prepare func()
	// Cleanup, if set, runs on Reset after executed steps are disposed.
	Cleanup func()

	steps    []SequenceStep
	cursor   int
	current  *Tween
	executed []*Tween
}

// NewSequence creates a sequence over the given steps.
func NewSequence(steps ...SequenceStep) *Sequence {
	return &Sequence{steps: steps}
}

// Len returns the number of steps.
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Cursor returns the number of steps reached so far.
func (s *Sequence) Cursor() int {
	return s.cursor
}

// Remaining returns the number of steps not yet reached.
func (s *Sequence) Remaining() int {
	return len(s.steps) - s.cursor
}

// Done reports whether the last step has been reached and completed.
func (s *Sequence) Done() bool {
	return s.cursor >= len(s.steps) && (s.current == nil || s.current.IsCompleted())
}

// Seek positions the sequence so that step count (1-based) is playing at
// normalized time t. Earlier steps are snapped to completion. Seeking to a
// count lower than the cursor restarts from the first step.
func (s *Sequence) Seek(count int, t float64) {
	if count > len(s.steps) {
		count = len(s.steps)
		t = 1
	}
	if count < s.cursor {
		Logger().Debug("sequence restart", "from", s.cursor, "to", count)
		s.Reset()
	}
	if count <= 0 {
		return
	}

	if s.cursor == 0 && s.Prepare != nil {
		s.Prepare()
	}
	for s.cursor < count {
		if s.current != nil {
			s.current.Step(1)
		}
		st := s.steps[s.cursor]
		s.cursor++

		var tw *Tween
		if st != nil {
			tw = st()
		}
		if tw == nil {
			tw = Noop()
		}
		s.current = tw
		s.executed = append(s.executed, tw)
	}
	s.current.Step(t)
}

// Reset disposes every executed step, most recent first, and rewinds the
// cursor.
func (s *Sequence) Reset() {
	for i := len(s.executed) - 1; i >= 0; i-- {
		s.executed[i].Dispose()
	}
	clear(s.executed)
	s.executed = s.executed[:0]
	started := s.cursor > 0
	s.current = nil
	s.cursor = 0
	if started && s.Cleanup != nil {
		s.Cleanup()
	}
}
