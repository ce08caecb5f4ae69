package primer

// PrimitiveCache holds one inactive template node per primitive type. It is
// owned by the caller: create it once per scene, pass it to the components
// that add primitives, and Close it on teardown.
type PrimitiveCache struct {
	scene     *Scene
	templates map[PrimitiveType]*Node
}

// NewPrimitiveCache creates an empty cache for scene.
func NewPrimitiveCache(scene *Scene) *PrimitiveCache {
	return &PrimitiveCache{scene: scene, templates: make(map[PrimitiveType]*Node)}
}

// Get returns the template for typ, building it on first use. Templates are
// inactive and unparented; clone them rather than attaching them directly.
func (c *PrimitiveCache) Get(typ PrimitiveType) *Node {
	if n, ok := c.templates[typ]; ok && !n.disposed {
		return n
	}
	n := c.scene.NewNode(typ.String(), NodeKindPrimitive)
	n.UserData = typ
	n.SetActive(false)
	c.templates[typ] = n
	return n
}

// Len returns the number of templates built so far.
func (c *PrimitiveCache) Len() int {
	return len(c.templates)
}

// Close disposes every template. The cache can be reused afterwards.
func (c *PrimitiveCache) Close() {
	for typ, n := range c.templates {
		n.Dispose()
		delete(c.templates, typ)
	}
}
