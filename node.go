package primer

// NodeID is a stable handle to a node inside its Scene. Zero means "no node".
type NodeID uint32

// Node is the scene graph element the core reconciles and animates. A single
// flat struct is used for every node kind; the Kind field only participates
// in reconciliation identity.
//
// A node's parent is stored as a NodeID and resolved through the owning
// Scene, so the graph holds no owning back references.
type Node struct {
	// Identity
	ID   NodeID
	Name string
	Kind NodeKind

	// Hierarchy
	scene    *Scene
	parent   NodeID
	children []NodeID

	// Transform (local)
	Position Vec3
	Rotation Quat
	Scale    Vec3

	// Opacity is a renderer hint in [0, 1]; the core only animates it.
	Opacity float64

	// Metadata
	UserData any

	// Internal
	active   bool
	disposed bool
}

// nodeDefaults sets the field values shared by every constructor.
func nodeDefaults(n *Node) {
	n.Rotation = QuatIdentity()
	n.Scale = VecOne
	n.Opacity = 1
	n.active = true
}

// Scene returns the arena that owns this node.
func (n *Node) Scene() *Scene {
	return n.scene
}

// --- Tree manipulation ---

// Parent resolves the parent handle, or returns nil for an unparented node.
func (n *Node) Parent() *Node {
	return n.scene.Node(n.parent)
}

// ParentID returns the raw parent handle.
func (n *Node) ParentID() NodeID {
	return n.parent
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, belongs to another scene, or is an ancestor of
// this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, -1)
}

// AddChildAt inserts child at the given index. An index of -1 appends.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("primer: cannot add nil child")
	}
	if child.scene != n.scene {
		panic("primer: cannot add a child from another scene")
	}
	if n.scene.debug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("primer: adding child would create a cycle")
	}
	if p := child.Parent(); p != nil {
		p.removeChildByID(child.ID)
	}
	if index == -1 {
		index = len(n.children)
	}
	if index < 0 || index > len(n.children) {
		panic("primer: child index out of range")
	}
	child.parent = n.ID
	n.children = append(n.children, 0)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child.ID
	if n.scene.debug {
		debugCheckChildCount(n)
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	if child.parent != n.ID {
		panic("primer: child's parent is not this node")
	}
	n.removeChildByID(child.ID)
	child.parent = 0
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
		return
	}
	n.parent = 0
}

// SetParent moves the node under parent (nil detaches it). When
// worldPositionStays is true the local transform is rewritten so the node
// keeps its world position, rotation and scale.
func (n *Node) SetParent(parent *Node, worldPositionStays bool) {
	var world Transform
	if worldPositionStays {
		world = n.WorldTransform()
	}
	if parent == nil {
		n.RemoveFromParent()
	} else {
		parent.AddChild(n)
	}
	if worldPositionStays {
		n.setWorldTransform(world)
	}
}

// Children returns the live children in sibling order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		if c := n.scene.Node(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.scene.Node(n.children[index])
}

// FindChild returns the first direct child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, id := range n.children {
		if c := n.scene.Node(id); c != nil && c.Name == name {
			return c
		}
	}
	return nil
}

// SiblingIndex returns the node's index among its parent's children, or -1
// when the node has no parent.
func (n *Node) SiblingIndex() int {
	p := n.Parent()
	if p == nil {
		return -1
	}
	for i, id := range p.children {
		if id == n.ID {
			return i
		}
	}
	return -1
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.parent != n.ID {
		panic("primer: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("primer: child index out of range")
	}
	oldIndex := child.SiblingIndex()
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child.ID
}

// --- Activation ---

// SetActive sets the node's own activation flag.
func (n *Node) SetActive(active bool) {
	n.active = active
}

// Active reports the node's own activation flag.
func (n *Node) Active() bool {
	return n.active
}

// ActiveInHierarchy reports whether the node and all its ancestors are active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent() {
		if !p.active {
			return false
		}
	}
	return true
}

// SetDefaults resets the local transform to identity and returns the node.
func (n *Node) SetDefaults() *Node {
	n.Position = VecZero
	n.Rotation = QuatIdentity()
	n.Scale = VecOne
	return n
}

// Clone deep-copies the node and its subtree into the same scene. The clone
// is unparented.
func (n *Node) Clone() *Node {
	c := n.scene.NewNode(n.Name, n.Kind)
	c.Position = n.Position
	c.Rotation = n.Rotation
	c.Scale = n.Scale
	c.Opacity = n.Opacity
	c.UserData = n.UserData
	c.active = n.active
	for _, child := range n.Children() {
		c.AddChild(child.Clone())
	}
	return c
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, and
// recursively disposes all descendants. Disposing twice is a no-op.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	parent := n.parent
	n.RemoveFromParent()
	n.dispose(parent)
}

func (n *Node) dispose(parent NodeID) {
	n.disposed = true
	for _, id := range n.children {
		if c := n.scene.Node(id); c != nil {
			c.parent = 0
			c.dispose(n.ID)
		}
	}
	n.children = nil
	n.scene.emit(NodeDisposed, n, parent)
	n.scene.release(n)
	n.parent = 0
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent() {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByID removes id from n.children without touching the child.
func (n *Node) removeChildByID(id NodeID) {
	for i, c := range n.children {
		if c == id {
			copy(n.children[i:], n.children[i+1:])
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
