package primer

import (
	"fmt"
	"slices"
)

// Key identifies a child within one reconciliation scope.
type Key struct {
	Name string
	Kind NodeKind
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s", k.Kind, k.Name)
}

// Factory builds a node for a key that is not in the pool yet. It must not
// have side effects beyond constructing the node. A nil Factory creates a
// plain node of the key's kind.
type Factory func() *Node

// ChildOptions controls how a reconciled child is attached to the scope.
type ChildOptions struct {
	// Enable activates the node on every request.
	Enable bool `yaml:"enable"`
	// WorldPositionStays keeps the node's world transform when it is
	// reparented into the scope.
	WorldPositionStays bool `yaml:"worldPositionStays"`
	// IgnoreSiblingOrder leaves the node's sibling index untouched.
	IgnoreSiblingOrder bool `yaml:"ignoreSiblingOrder"`
	// SiblingIndex overrides the sibling position. Nil means declaration
	// order.
	SiblingIndex *int `yaml:"siblingIndex,omitempty"`
}

// DefaultChildOptions returns the options used when nil is passed.
func DefaultChildOptions() ChildOptions {
	return ChildOptions{Enable: true}
}

// Container reconciles a declared list of children against the nodes that
// already exist under a scope node. Each cycle the caller requests children
// with Next (or one of its shorthands) and then calls Purge: requested nodes
// are reused or created, and everything that was not requested is removed.
//
// A node is always in exactly one of the used or unused partitions. Between
// cycles every pooled node is unused.
type Container struct {
	scene    *Scene
	scope    *Node
	used     []*Node
	unused   []*Node
	created  map[NodeID]bool
	declared map[Key]*Node
	names    map[string]NodeKind
	nested   map[NodeID]*Container
}

// NewContainer creates a container for scope. The scope's existing children
// become the initial unused partition, so rebuilding a container over an
// existing subtree reuses nodes whose name and kind match.
func NewContainer(scope *Node) *Container {
	if scope == nil {
		panic("primer: container scope is nil")
	}
	return &Container{
		scene:    scope.scene,
		scope:    scope,
		unused:   scope.Children(),
		created:  make(map[NodeID]bool),
		declared: make(map[Key]*Node),
		names:    make(map[string]NodeKind),
		nested:   make(map[NodeID]*Container),
	}
}

// Scope returns the node whose children this container manages.
func (c *Container) Scope() *Node {
	return c.scope
}

// SetDefaults resets the scope node's local transform.
func (c *Container) SetDefaults() *Container {
	c.scope.SetDefaults()
	return c
}

// --- Requests ---

// NextOrCreate returns the pooled node for key, or builds one with factory,
// and marks it used for this cycle. It is Next with default options.
func (c *Container) NextOrCreate(key Key, factory Factory) *Node {
	return c.Next(key.Name, key.Kind, factory, nil)
}

// Next requests a child for this cycle and attaches it to the scope according
// to opts (nil means DefaultChildOptions).
//
// Requesting the same key twice in one cycle is fatal only in debug mode
// (Scene.SetDebug), where it panics with ErrDuplicateKey. Otherwise it returns
// the same node and logs a warning. Requesting a name
// already declared this cycle under a different kind panics with
// ErrKindChanged.
func (c *Container) Next(name string, kind NodeKind, factory Factory, opts *ChildOptions) *Node {
	key := Key{Name: name, Kind: kind}

	if n, ok := c.declared[key]; ok && !n.disposed {
		if c.scene.debug {
			structuralPanic("Container.Next", ErrDuplicateKey, "%s in %q", key, c.scope.Name)
		}
		Logger().Warn("key requested twice in one cycle", "scope", c.scope.Name, "key", key.String())
		return n
	}
	if prev, ok := c.names[name]; ok && prev != kind {
		structuralPanic("Container.Next", ErrKindChanged, "%q was %s, now %s", name, prev, kind)
	}

	n := c.takeUnused(key)
	if n == nil {
		n = c.create(key, factory)
		c.created[n.ID] = true
	}
	c.declared[key] = n
	c.names[name] = kind
	c.Insert(n, opts)
	return n
}

func (c *Container) create(key Key, factory Factory) *Node {
	var n *Node
	if factory != nil {
		n = factory()
	}
	if n == nil || n.disposed {
		n = c.scene.NewNode(key.Name, key.Kind)
	}
	n.Name = key.Name
	n.Kind = key.Kind
	return n
}

// takeUnused removes and returns the first live unused node matching key.
func (c *Container) takeUnused(key Key) *Node {
	for i, n := range c.unused {
		if n.disposed || n.Name != key.Name || n.Kind != key.Kind {
			continue
		}
		c.unused = slices.Delete(c.unused, i, i+1)
		return n
	}
	return nil
}

// Add requests a plain group child.
func (c *Container) Add(name string) *Node {
	return c.Next(name, NodeKindGroup, nil, nil)
}

// AddWith requests a child of the given kind built by factory.
func (c *Container) AddWith(name string, kind NodeKind, factory Factory) *Node {
	return c.Next(name, kind, factory, nil)
}

// AddContainer requests a group child and returns a nested container scoped
// to it. The nested container persists across cycles for as long as the child
// stays in this container's pool; the caller purges it like any other.
func (c *Container) AddContainer(name string) *Container {
	n := c.Add(name)
	if nc, ok := c.nested[n.ID]; ok {
		return nc
	}
	nc := NewContainer(n)
	c.nested[n.ID] = nc
	return nc
}

// AddPrimitive requests a clone of a cached primitive shape. An empty name
// defaults to the primitive's type name.
func (c *Container) AddPrimitive(cache *PrimitiveCache, typ PrimitiveType, name string) *Node {
	if name == "" {
		name = typ.String()
	}
	return c.Next(name, NodeKindPrimitive, func() *Node {
		return cache.Get(typ).Clone()
	}, nil)
}

// IsCreated reports whether node was built during the current cycle, as
// opposed to reused from the previous one.
func (c *Container) IsCreated(node *Node) bool {
	return c.created[node.ID]
}

// --- Ordering ---

// Insert attaches node to the scope and marks it used. With sibling ordering
// enabled the node takes the index given by opts, defaulting to the number of
// children used so far, so declaration order becomes sibling order.
func (c *Container) Insert(node *Node, opts *ChildOptions) {
	o := DefaultChildOptions()
	if opts != nil {
		o = *opts
	}
	if c.scene.debug {
		debugCheckDisposed(node, "Container.Insert")
	}

	if o.Enable {
		node.SetActive(true)
	}
	if node.parent != c.scope.ID {
		node.SetParent(c.scope, o.WorldPositionStays)
	}
	if i := slices.Index(c.unused, node); i >= 0 {
		c.unused = slices.Delete(c.unused, i, i+1)
	}
	if slices.Contains(c.used, node) {
		return
	}

	if o.IgnoreSiblingOrder {
		c.used = append(c.used, node)
		return
	}
	index := len(c.used)
	if o.SiblingIndex != nil {
		index = min(max(*o.SiblingIndex, 0), len(c.used))
	}
	c.used = slices.Insert(c.used, index, node)
	c.moveSibling(node, index)
}

// SetSiblingPosition moves a used node to index within the used children and
// the scope's children. With ignoreOrder set it does nothing. It panics with
// ErrNodeNotInScope if node was not requested this cycle.
func (c *Container) SetSiblingPosition(node *Node, index int, ignoreOrder bool) {
	i := slices.Index(c.used, node)
	if i < 0 {
		structuralPanic("Container.SetSiblingPosition", ErrNodeNotInScope, "%q in %q", node.Name, c.scope.Name)
	}
	if ignoreOrder {
		return
	}
	index = min(max(index, 0), len(c.used)-1)
	c.used = slices.Delete(c.used, i, i+1)
	c.used = slices.Insert(c.used, index, node)
	c.moveSibling(node, index)
}

func (c *Container) moveSibling(node *Node, index int) {
	index = min(index, c.scope.NumChildren()-1)
	if node.SiblingIndex() != index {
		c.scope.SetChildIndex(node, index)
	}
}

// --- Cycle end ---

// Purge ends the cycle. Every node left in the unused partition is removed
// from the pool and returned. With deferRemoval false the nodes are disposed
// immediately; otherwise the caller owns them and must dispose each one
// exactly once, typically when an exit tween ends.
//
// After Purge every used node becomes unused for the next cycle.
func (c *Container) Purge(deferRemoval bool) []*Node {
	removed := make([]*Node, 0, len(c.unused))
	for _, n := range c.unused {
		if n.disposed {
			continue
		}
		removed = append(removed, n)
		delete(c.nested, n.ID)
		if !deferRemoval {
			n.Dispose()
		}
	}

	Logger().Debug("container purge",
		"scope", c.scope.Name, "removed", len(removed), "deferred", deferRemoval)

	c.unused = slices.DeleteFunc(c.used, (*Node).IsDisposed)
	c.used = nil
	clear(c.created)
	clear(c.declared)
	clear(c.names)
	return removed
}

// Reset disposes every pooled node and every remaining child of the scope,
// leaving an empty pool. Use it when a subtree must be rebuilt from scratch.
func (c *Container) Reset() {
	for _, nc := range c.nested {
		nc.Reset()
	}
	for _, n := range c.used {
		n.Dispose()
	}
	for _, n := range c.unused {
		n.Dispose()
	}
	for _, n := range c.scope.Children() {
		n.Dispose()
	}
	c.used = nil
	c.unused = nil
	clear(c.created)
	clear(c.declared)
	clear(c.names)
	clear(c.nested)
}

// --- Introspection ---

// Len returns the number of children used this cycle.
func (c *Container) Len() int {
	return len(c.used)
}

// Used returns the nodes requested this cycle, in sibling order.
func (c *Container) Used() []*Node {
	return slices.Clone(c.used)
}

// Unused returns the pooled nodes not requested this cycle.
func (c *Container) Unused() []*Node {
	return slices.Clone(c.unused)
}
