package primer

import (
	"fmt"
	"strconv"
)

// Alignment positions an expression horizontally around its renderer's origin.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// ExpressionRenderer shows an expression as one glyph child node per
// character, reconciled through a Container keyed "Glyph i".
type ExpressionRenderer struct {
	// GroupIndexes are the glyph indexes where each group starts. See
	// Expression.CalculateRanges.
	GroupIndexes []int

	node       *Node
	glyphs     *Container
	expression Expression
	alignment  Alignment
}

// NewExpressionRenderer renders into node. The glyph nodes live under a
// "Characters" child of node.
func NewExpressionRenderer(node *Node) *ExpressionRenderer {
	characters := node.FindChild("Characters")
	if characters == nil {
		characters = node.Scene().NewNode("Characters", NodeKindGroup)
		node.AddChild(characters)
	}
	return &ExpressionRenderer{node: node, glyphs: NewContainer(characters)}
}

// Node returns the node the renderer draws under.
func (r *ExpressionRenderer) Node() *Node {
	return r.node
}

// Expression returns the expression as set, before alignment.
func (r *ExpressionRenderer) Expression() Expression {
	return r.expression
}

// SetExpression replaces the expression and re-renders.
func (r *ExpressionRenderer) SetExpression(e Expression) {
	r.expression = e
	r.Update()
}

// Alignment returns the current alignment.
func (r *ExpressionRenderer) Alignment() Alignment {
	return r.alignment
}

// SetAlignment changes the alignment and re-renders.
func (r *ExpressionRenderer) SetAlignment(a Alignment) {
	r.alignment = a
	r.Update()
}

// Aligned returns the expression shifted according to the alignment.
func (r *ExpressionRenderer) Aligned() Expression {
	if r.expression.IsEmpty() {
		return nil
	}
	b := r.expression.Bounds()
	var shift Vec3
	switch r.alignment {
	case AlignLeft:
		shift = Vec3{-b.Min[0], 0, 0}
	case AlignRight:
		shift = Vec3{-b.Max[0], 0, 0}
	default:
		c := b.Center()
		shift = Vec3{-c[0], -c[1], 0}
	}
	return r.expression.Translate(shift)
}

// Groups splits the aligned expression at GroupIndexes.
func (r *ExpressionRenderer) Groups() []Expression {
	return r.Aligned().Split(r.GroupIndexes)
}

// GlyphCount returns the number of glyphs in the expression.
func (r *ExpressionRenderer) GlyphCount() int {
	return r.expression.Len()
}

// Update reconciles the glyph nodes with the aligned expression.
func (r *ExpressionRenderer) Update() {
	for i, g := range r.Aligned() {
		n := r.glyphs.Next("Glyph "+strconv.Itoa(i), NodeKindGlyph, nil, nil)
		n.SetDefaults()
		n.Position = g.Position
		n.Scale = Uniform(g.scale())
		n.UserData = g
	}
	r.glyphs.Purge(false)
}

// GlyphNodes returns the rendered glyph nodes in order.
func (r *ExpressionRenderer) GlyphNodes() []*Node {
	return r.glyphs.Scope().Children()
}
