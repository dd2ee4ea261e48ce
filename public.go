package rbinterval

// NodeRef is an opaque handle to a stored node, returned by the in-order
// iteration primitives (§6). The zero value refers to no node.
type NodeRef[K Key[K], V any] struct {
	n *node[K, V]
}

// Valid reports whether r refers to an actual node.
func (r NodeRef[K, V]) Valid() bool { return r.n != nil }

// Key and Value read the referenced node's contents. Calling either on an
// invalid NodeRef panics.
func (r NodeRef[K, V]) Key() K   { return r.n.key }
func (r NodeRef[K, V]) Value() V { return r.n.value }

// MinimumNode returns the smallest-keyed node. Panics on an empty tree
// (§7, "Empty-tree traversal").
func (t *Tree[K, V]) MinimumNode() NodeRef[K, V] {
	return NodeRef[K, V]{t.minimum(t.root)}
}

// MaximumNode returns the largest-keyed node. Panics on an empty tree.
func (t *Tree[K, V]) MaximumNode() NodeRef[K, V] {
	return NodeRef[K, V]{t.maximum(t.root)}
}

// Successor returns the in-order successor of r, or an invalid NodeRef if
// r is the last node.
func (t *Tree[K, V]) Successor(r NodeRef[K, V]) NodeRef[K, V] {
	s := t.successor(r.n)
	if t.isNil(s) {
		return NodeRef[K, V]{}
	}
	return NodeRef[K, V]{s}
}

// Predecessor returns the in-order predecessor of r, or an invalid NodeRef
// if r is the first node.
func (t *Tree[K, V]) Predecessor(r NodeRef[K, V]) NodeRef[K, V] {
	p := t.predecessor(r.n)
	if t.isNil(p) {
		return NodeRef[K, V]{}
	}
	return NodeRef[K, V]{p}
}
