package primer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3D vector used for positions, scales, offsets and directions
// throughout the API.
type Vec3 = mgl64.Vec3

// Vec2 is a 2D vector used for glyph sizes and expression bounds.
type Vec2 = mgl64.Vec2

// Quat is a rotation quaternion.
type Quat = mgl64.Quat

// Common vectors.
var (
	VecZero = Vec3{0, 0, 0}
	VecOne  = Vec3{1, 1, 1}
	VecX    = Vec3{1, 0, 0}
	VecY    = Vec3{0, 1, 0}
	VecZ    = Vec3{0, 0, 1}
)

// Uniform returns a vector with all three components set to v.
func Uniform(v float64) Vec3 {
	return Vec3{v, v, v}
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return mgl64.QuatIdent()
}

// Euler builds a rotation from angles in degrees, applied in X, Y, Z order.
func Euler(x, y, z float64) Quat {
	return mgl64.AnglesToQuat(mgl64.DegToRad(x), mgl64.DegToRad(y), mgl64.DegToRad(z), mgl64.XYZ)
}

// Rect is an axis-aligned 2D rectangle described by its corners.
type Rect struct {
	Min, Max Vec2
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max[0] - r.Min[0] }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max[1] - r.Min[1] }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min[0] + r.Max[0]) / 2, (r.Min[1] + r.Max[1]) / 2}
}

// NodeKind is the structural type of a node. Together with the node's name
// it forms the identity a Container reconciles on.
type NodeKind string

const (
	NodeKindGroup     NodeKind = "Group"     // plain transform group
	NodeKindPrimitive NodeKind = "Primitive" // clone of a cached primitive shape
	NodeKindGlyph     NodeKind = "Glyph"     // one rendered expression character
	NodeKindTick      NodeKind = "Tick"      // axis tick
	NodeKindText      NodeKind = "Text"      // text label
	NodeKindArrow     NodeKind = "Arrow"     // arrow root
)

// PrimitiveType selects one of the built-in primitive shapes.
type PrimitiveType uint8

const (
	PrimitiveCube PrimitiveType = iota
	PrimitiveSphere
	PrimitiveCylinder
	PrimitiveCone
	PrimitiveQuad
)

func (p PrimitiveType) String() string {
	switch p {
	case PrimitiveCube:
		return "Cube"
	case PrimitiveSphere:
		return "Sphere"
	case PrimitiveCylinder:
		return "Cylinder"
	case PrimitiveCone:
		return "Cone"
	case PrimitiveQuad:
		return "Quad"
	default:
		return fmt.Sprintf("Primitive(%d)", uint8(p))
	}
}

// SpaceEvenly returns count offsets spaced distance apart and centred on zero.
func SpaceEvenly(count int, distance float64) []float64 {
	if count <= 0 {
		return nil
	}
	offsets := make([]float64, count)
	start := -distance * float64(count-1) / 2
	for i := range offsets {
		offsets[i] = start + float64(i)*distance
	}
	return offsets
}
