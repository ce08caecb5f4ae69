package primer

import "slices"

// Glyph is one positioned character of a rendered expression. Position is in
// the renderer's local space; Size is the unscaled glyph extent.
type Glyph struct {
	Symbol   string
	Position Vec3
	Scale    float64
	Size     Vec2
}

// scale returns the glyph scale, treating zero as 1.
func (g Glyph) scale() float64 {
	if g.Scale == 0 {
		return 1
	}
	return g.Scale
}

// Bounds returns the glyph's extent in the XY plane, centred on its position.
func (g Glyph) Bounds() Rect {
	half := g.Size.Mul(g.scale() / 2)
	c := Vec2{g.Position.X(), g.Position.Y()}
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Expression is an ordered sequence of glyphs, such as one typeset formula.
type Expression []Glyph

// Range is a half-open glyph index range [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of glyphs.
func (e Expression) Len() int {
	return len(e)
}

// IsEmpty reports whether the expression has no glyphs.
func (e Expression) IsEmpty() bool {
	return len(e) == 0
}

// IsSame reports whether both expressions hold identical glyphs in the same
// order.
func (e Expression) IsSame(other Expression) bool {
	return other != nil && slices.Equal(e, other)
}

// Bounds returns the union of every glyph's bounds. An empty expression has
// zero bounds.
func (e Expression) Bounds() Rect {
	if len(e) == 0 {
		return Rect{}
	}
	r := e[0].Bounds()
	for _, g := range e[1:] {
		b := g.Bounds()
		r.Min = Vec2{min(r.Min[0], b.Min[0]), min(r.Min[1], b.Min[1])}
		r.Max = Vec2{max(r.Max[0], b.Max[0]), max(r.Max[1], b.Max[1])}
	}
	return r
}

// Center returns the centre of the expression's bounds.
func (e Expression) Center() Vec2 {
	return e.Bounds().Center()
}

// Slice returns glyphs [start, end), clamped to the expression.
func (e Expression) Slice(start, end int) Expression {
	end = min(max(end, 0), len(e))
	start = min(max(start, 0), end)
	return e[start:end:end]
}

// CalculateRanges turns group start indexes into contiguous ranges covering
// the whole expression. Indexes equal to the previous start are skipped, and
// an index at or past the end stops the scan.
func (e Expression) CalculateRanges(indexes []int) []Range {
	last := 0
	var ranges []Range
	for _, start := range indexes {
		if start == last {
			continue
		}
		if start >= len(e) {
			break
		}
		ranges = append(ranges, Range{Start: last, End: start})
		last = start
	}
	if last != len(e) {
		ranges = append(ranges, Range{Start: last, End: len(e)})
	}
	return ranges
}

// Split divides the expression into groups starting at the given indexes.
func (e Expression) Split(indexes []int) []Expression {
	return e.SplitRanges(e.CalculateRanges(indexes))
}

// SplitRanges returns the slice for each range.
func (e Expression) SplitRanges(ranges []Range) []Expression {
	groups := make([]Expression, len(ranges))
	for i, r := range ranges {
		groups[i] = e.Slice(r.Start, r.End)
	}
	return groups
}

// Translate returns a copy with every glyph moved by offset.
func (e Expression) Translate(offset Vec3) Expression {
	out := make(Expression, len(e))
	for i, g := range e {
		g.Position = g.Position.Add(offset)
		out[i] = g
	}
	return out
}
