package rbinterval

// recalcNode recomputes n's size and extreme-descendant pointers from its
// two children's already-correct aggregates. O(1).
func (t *Tree[K, V]) recalcNode(n *node[K, V]) {
	n.size = n.left.size + n.right.size + 1
	if t.isNil(n.left) {
		n.minDesc = n
	} else {
		n.minDesc = n.left.minDesc
	}
	if t.isNil(n.right) {
		n.maxDesc = n
	} else {
		n.maxDesc = n.right.maxDesc
	}
}

// recalcPath walks from start up to the root recomputing each ancestor's
// augmentation from its (already correct) children. Every structural
// mutation — linking a new leaf, splicing a node out via transplant,
// rotating — touches O(1) nodes directly and leaves exactly one root-ward
// path stale; recalcPath repairs that path in O(log n) (§4.2).
func (t *Tree[K, V]) recalcPath(start *node[K, V]) {
	for n := start; !t.isNil(n); n = n.parent {
		t.recalcNode(n)
	}
}

// enclosure returns the atomic interval spanning n's subtree, derived from
// its min/max descendants (§3, "Subtree enclosure").
func (t *Tree[K, V]) enclosure(n *node[K, V]) (K, bool) {
	if t.isNil(n) {
		var zero K
		return zero, false
	}
	return n.minDesc.key.Span(n.maxDesc.key), true
}
