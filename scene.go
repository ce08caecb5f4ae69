package primer

// EventStore receives node lifecycle events. When set on a Scene, every node
// creation and disposal is forwarded to it (see the ecs sub-module).
type EventStore interface {
	EmitEvent(event NodeEvent)
}

// NodeEventType identifies a node lifecycle transition.
type NodeEventType uint8

const (
	NodeCreated  NodeEventType = iota // fires when the scene allocates a node
	NodeDisposed                      // fires once when a node is disposed
)

func (t NodeEventType) String() string {
	switch t {
	case NodeCreated:
		return "created"
	case NodeDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// NodeEvent carries lifecycle data for the EventStore bridge.
type NodeEvent struct {
	Type   NodeEventType
	ID     NodeID
	Name   string
	Kind   NodeKind
	Parent NodeID
}

// Scene is the arena that owns every node. Nodes are addressed by stable
// NodeID handles; an ID is never reused, so a stale handle resolves to nil
// rather than to an unrelated node.
//
// Scene is not safe for concurrent use. All reconciliation and tween stepping
// happens on one logical thread, once per frame.
type Scene struct {
	nodes  map[NodeID]*Node
	nextID NodeID
	root   *Node
	store  EventStore
	debug  bool
}

// NewScene creates a new scene with a pre-created root group.
func NewScene() *Scene {
	s := &Scene{nodes: make(map[NodeID]*Node)}
	s.root = s.NewNode("root", NodeKindGroup)
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// NewNode allocates an unparented node with default transform values.
func (s *Scene) NewNode(name string, kind NodeKind) *Node {
	s.nextID++
	n := &Node{ID: s.nextID, Name: name, Kind: kind, scene: s}
	nodeDefaults(n)
	s.nodes[n.ID] = n
	s.emit(NodeCreated, n, 0)
	return n
}

// Node resolves a handle. It returns nil for the zero ID and for nodes that
// have been disposed.
func (s *Scene) Node(id NodeID) *Node {
	if id == 0 {
		return nil
	}
	return s.nodes[id]
}

// Len returns the number of live nodes, including the root.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// SetDebug enables extra invariant checks. Operations on disposed nodes and
// duplicate reconciliation keys panic instead of degrading.
func (s *Scene) SetDebug(enabled bool) {
	s.debug = enabled
}

// Debug reports whether debug checks are enabled.
func (s *Scene) Debug() bool {
	return s.debug
}

// SetEventStore attaches a lifecycle event sink. Pass nil to detach.
func (s *Scene) SetEventStore(store EventStore) {
	s.store = store
}

func (s *Scene) release(n *Node) {
	delete(s.nodes, n.ID)
}

func (s *Scene) emit(typ NodeEventType, n *Node, parent NodeID) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(NodeEvent{Type: typ, ID: n.ID, Name: n.Name, Kind: n.Kind, Parent: parent})
}
