package primer

// slot places a child on a composite's timeline, in the composite's natural
// (unscaled) time.
type slot struct {
	tween  *Tween
	start  float64
	length float64
}

// Parallel runs every child on a shared timeline. Each child starts after its
// own Delay; the composite lasts as long as the longest child. Nil children
// are ignored. A zero-duration child is applied in full on the composite's
// first step.
func Parallel(tweens ...*Tween) *Tween {
	slots := make([]slot, 0, len(tweens))
	for _, tw := range tweens {
		if tw == nil {
			continue
		}
		slots = append(slots, slot{tween: tw, start: tw.Delay, length: tw.Duration})
	}
	return newComposite(slots)
}

// Sequential plays children back to back in declaration order. A child's
// Delay is inserted before it starts. Nil children are ignored.
func Sequential(tweens ...*Tween) *Tween {
	slots := make([]slot, 0, len(tweens))
	var cursor float64
	for _, tw := range tweens {
		if tw == nil {
			continue
		}
		start := cursor + tw.Delay
		slots = append(slots, slot{tween: tw, start: start, length: tw.Duration})
		cursor = start + tw.Duration
	}
	return newComposite(slots)
}

// SequentialWithDelay starts child i at i*delayBetweenStarts (plus its own
// Delay). Children overlap when the delay is shorter than their duration. A
// delay of zero behaves like Sequential.
func SequentialWithDelay(delayBetweenStarts float64, tweens ...*Tween) *Tween {
	if delayBetweenStarts <= 0 {
		return Sequential(tweens...)
	}
	slots := make([]slot, 0, len(tweens))
	for _, tw := range tweens {
		if tw == nil {
			continue
		}
		start := float64(len(slots))*delayBetweenStarts + tw.Delay
		slots = append(slots, slot{tween: tw, start: start, length: tw.Duration})
	}
	return newComposite(slots)
}

func newComposite(slots []slot) *Tween {
	var span float64
	children := make([]*Tween, len(slots))
	for i, s := range slots {
		children[i] = s.tween
		if end := s.start + s.length; end > span {
			span = end
		}
	}
	tw := &Tween{Duration: span, Easing: Linear, children: children}
	tw.apply = func(e float64, done *[]*Tween) {
		stepSlots(slots, e*span, done)
	}
	return tw
}

// stepSlots drives children at composite time now. Children whose start lies
// after now are rewound, last first, so seeking backwards restores earlier
// state in reverse order of application.
func stepSlots(slots []slot, now float64, done *[]*Tween) {
	for i := len(slots) - 1; i >= 0; i-- {
		s := slots[i]
		if s.tween.started && now < s.start {
			s.tween.update(0, done)
		}
	}
	for _, s := range slots {
		if now < s.start {
			continue
		}
		progress := 1.0
		if s.length > 0 {
			progress = (now - s.start) / s.length
		}
		s.tween.update(progress, done)
	}
}

// Children returns the tweens owned by a composite or observed wrapper.
func (tw *Tween) Children() []*Tween {
	return tw.children
}
