package primer

import "github.com/go-gl/mathgl/mgl64"

// Transform is a decomposed local or world transform.
//
// Composition order:
//
//	Scale -> Rotate -> Translate
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// IdentityTransform returns the transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{Rotation: QuatIdentity(), Scale: VecOne}
}

// Matrix returns the 4x4 affine matrix for t.
func (t Transform) Matrix() mgl64.Mat4 {
	tr := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	sc := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return tr.Mul4(t.Rotation.Normalize().Mat4()).Mul4(sc)
}

// Apply maps a point from t's local space into its parent space.
func (t Transform) Apply(v Vec3) Vec3 {
	return t.Rotation.Rotate(mulComp(t.Scale, v)).Add(t.Position)
}

// ApplyVector maps a direction, ignoring translation.
func (t Transform) ApplyVector(v Vec3) Vec3 {
	return t.Rotation.Rotate(mulComp(t.Scale, v))
}

// InverseApply maps a point from parent space back into t's local space.
func (t Transform) InverseApply(v Vec3) Vec3 {
	return divComp(t.Rotation.Inverse().Rotate(v.Sub(t.Position)), t.Scale)
}

// Compose returns parent*child. Scale composes component-wise, which is
// exact for uniform scale and an approximation otherwise.
func (t Transform) Compose(child Transform) Transform {
	return Transform{
		Position: t.Apply(child.Position),
		Rotation: t.Rotation.Mul(child.Rotation).Normalize(),
		Scale:    mulComp(t.Scale, child.Scale),
	}
}

// Relative returns the transform that, composed under t, yields world.
func (t Transform) Relative(world Transform) Transform {
	return Transform{
		Position: t.InverseApply(world.Position),
		Rotation: t.Rotation.Inverse().Mul(world.Rotation).Normalize(),
		Scale:    divComp(world.Scale, t.Scale),
	}
}

// LerpTransform interpolates position and scale linearly and rotation by
// spherical interpolation.
func LerpTransform(a, b Transform, t float64) Transform {
	return Transform{
		Position: LerpVec3(a.Position, b.Position, t),
		Rotation: SlerpQuat(a.Rotation, b.Rotation, t),
		Scale:    LerpVec3(a.Scale, b.Scale, t),
	}
}

// --- Node transforms ---

// LocalTransform returns the node's local position, rotation and scale.
func (n *Node) LocalTransform() Transform {
	return Transform{Position: n.Position, Rotation: n.Rotation, Scale: n.Scale}
}

// SetLocalTransform overwrites the node's local position, rotation and scale.
func (n *Node) SetLocalTransform(t Transform) {
	n.Position = t.Position
	n.Rotation = t.Rotation
	n.Scale = t.Scale
}

// WorldTransform composes the local transforms from the root down.
func (n *Node) WorldTransform() Transform {
	local := n.LocalTransform()
	if p := n.Parent(); p != nil {
		return p.WorldTransform().Compose(local)
	}
	return local
}

func (n *Node) setWorldTransform(w Transform) {
	if p := n.Parent(); p != nil {
		n.SetLocalTransform(p.WorldTransform().Relative(w))
		return
	}
	n.SetLocalTransform(w)
}

// LocalMatrix returns the node's local affine matrix.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	return n.LocalTransform().Matrix()
}

// WorldMatrix returns the product of every ancestor's local matrix and this
// node's local matrix.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.Parent(); p != nil; p = p.Parent() {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// --- Transform property setters ---

// SetPosition sets the node's local position.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = Vec3{x, y, z}
}

// SetScale sets a uniform local scale.
func (n *Node) SetScale(s float64) {
	n.Scale = Uniform(s)
}

// SetRotation sets the local rotation from Euler angles in degrees.
func (n *Node) SetRotation(x, y, z float64) {
	n.Rotation = Euler(x, y, z)
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(w Vec3) Vec3 {
	inv := n.WorldMatrix().Inv()
	return mgl64.TransformCoordinate(w, inv)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(l Vec3) Vec3 {
	return mgl64.TransformCoordinate(l, n.WorldMatrix())
}

// --- Interpolation helpers ---

// LerpVec3 linearly interpolates between a and b.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// SlerpQuat spherically interpolates between a and b along the shorter arc.
func SlerpQuat(a, b Quat, t float64) Quat {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a.Normalize(), b.Normalize(), t)
}

func mulComp(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func divComp(a, b Vec3) Vec3 {
	var out Vec3
	for i := range out {
		if b[i] != 0 {
			out[i] = a[i] / b[i]
		}
	}
	return out
}
