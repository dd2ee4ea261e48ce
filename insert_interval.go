package rbinterval

// InsertInterval maps every point of key to value, restoring the disjoint
// partition invariant (I3) and fusing adjacent same-value keys (I4). It is
// a no-op if key is empty (§4.3, §7).
func (t *Tree[K, V]) InsertInterval(key K, value V) {
	if key.IsEmpty() {
		return
	}
	t.insertInterval(key, value)
}

func (t *Tree[K, V]) newNode(key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

func (t *Tree[K, V]) insertInterval(key K, value V) {
	// fuse folds x's in-order neighbors into x when they touch it and carry
	// the same value, restoring I4 after x's value was replaced in place.
	fuse := func(x *node[K, V]) {
		for _, nb := range []*node[K, V]{t.predecessor(x), t.successor(x)} {
			if !t.isNil(nb) && nb.key.Touches(x.key) && t.equal(nb.value, x.value) {
				x.key = x.key.Union(nb.key)[0]
				t.delete(nb)
			}
		}
	}

	x := t.root
	for !t.isNil(x) {
		ll, rr, lr, rl := x.key.Compare(key)
		switch {
		case rl < 0 && !x.key.Touches(key): // x.key strictly below key, no shared boundary
			x = x.right

		case lr > 0 && !x.key.Touches(key): // x.key strictly above key, no shared boundary
			x = x.left

		case ll == 0 && rr == 0: // x.key == key
			x.value = value
			fuse(x)
			return

		case ll >= 0 && rr <= 0: // key ⊇ x.key: key subsumes x, case 6
			x.key = key
			x.value = value
			t.modify(x)
			return

		case ll <= 0 && rr >= 0: // key ⊆ x.key, case 4 (values differ) or absorbed (ll==0&&rr==0 handled above)
			if t.equal(x.value, value) {
				// already mapped to value over all of x.key ⊇ key: absorbed, no-op.
				return
			}
			residuals := x.key.Difference(key)
			oldValue := x.value
			x.key = key
			x.value = value
			for _, r := range residuals {
				t.insert(t.newNode(r, oldValue))
			}
			fuse(x)
			return

		case ll < 0: // key extends above x.key on the right side: x.key ≤ key
			if t.equal(x.value, value) {
				x.key = x.key.Union(key)[0]
				t.modify(x)
				return
			}
			residual := x.key.Difference(key)
			x.key = residual[0]
			x = x.right

		default: // ll > 0: key extends below x.key: x.key ≥ key
			if t.equal(x.value, value) {
				x.key = x.key.Union(key)[0]
				t.modify(x)
				return
			}
			residual := x.key.Difference(key)
			x.key = residual[0]
			x = x.left
		}
	}

	t.insert(t.newNode(key, value))
}
