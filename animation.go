package primer

// Node tween helpers. Each helper captures the node's current value when the
// tween first steps, not when it is built. If the target node has been
// disposed, the tween stops writing to it.

// MoveTo animates node.Position to the given local position.
func MoveTo(node *Node, to Vec3) *Tween {
	return VectorValue(
		func(v Vec3) {
			if !node.disposed {
				node.Position = v
			}
		},
		func() Vec3 { return node.Position },
		Const(to),
	)
}

// ScaleTo animates node.Scale to the given local scale.
func ScaleTo(node *Node, to Vec3) *Tween {
	return ScaleFromTo(node, func() Vec3 { return node.Scale }, to)
}

// ScaleFromTo animates node.Scale from an explicit start to the given scale.
// Pass Const(VecZero) to grow a node that is being introduced.
func ScaleFromTo(node *Node, from func() Vec3, to Vec3) *Tween {
	return VectorValue(
		func(v Vec3) {
			if !node.disposed {
				node.Scale = v
			}
		},
		from,
		Const(to),
	)
}

// RotateTo animates node.Rotation to the given local rotation along the
// shorter arc.
func RotateTo(node *Node, to Quat) *Tween {
	return QuatValue(
		func(q Quat) {
			if !node.disposed {
				node.Rotation = q
			}
		},
		func() Quat { return node.Rotation },
		Const(to),
	)
}

// FadeTo animates node.Opacity to the given value.
func FadeTo(node *Node, to float64) *Tween {
	return Float(
		func(v float64) {
			if !node.disposed {
				node.Opacity = v
			}
		},
		func() float64 { return node.Opacity },
		Const(to),
	)
}

// TransformTo animates position, rotation and scale together.
func TransformTo(node *Node, to Transform) *Tween {
	return Value(
		func(t Transform) {
			if !node.disposed {
				node.SetLocalTransform(t)
			}
		},
		node.LocalTransform,
		Const(to),
		LerpTransform,
	)
}

// ShrinkAndDispose scales the node to zero and disposes it when the tween is
// disposed, whether or not the animation finished.
func ShrinkAndDispose(node *Node) *Tween {
	return ScaleTo(node, VecZero).OnDispose(node.Dispose)
}
