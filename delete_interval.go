package rbinterval

// DeleteInterval removes every point of key from the partition (§4.5). A
// no-op if key is empty or overlaps nothing stored.
func (t *Tree[K, V]) DeleteInterval(key K) {
	if key.IsEmpty() {
		return
	}

	x := t.root
	for !t.isNil(x) {
		if x.key.Overlaps(key) {
			break
		}
		_, _, _, rl := x.key.Compare(key)
		if rl < 0 {
			x = x.right
		} else {
			x = x.left
		}
	}
	if t.isNil(x) {
		return
	}

	ll, rr, _, _ := key.Compare(x.key)
	strictSubset := ll >= 0 && rr <= 0 && !(ll == 0 && rr == 0)
	if strictSubset {
		residuals := x.key.Difference(key)
		x.key = residuals[0]
		if len(residuals) > 1 {
			t.insert(t.newNode(residuals[1], x.value))
		}
		return
	}

	t.deleteRange(x, key)
}

// deleteRange runs a Locate/Apply pass analogous to modify (§4.4), starting
// at root inclusive, with no "extend" category: nodes wholly covered by
// key are removed, partially-overlapping nodes are truncated.
func (t *Tree[K, V]) deleteRange(root *node[K, V], key K) {
	var removed []*node[K, V]
	var splitInserts []seed[K, V]

	var locate func(n *node[K, V])
	locate = func(n *node[K, V]) {
		if t.isNil(n) {
			return
		}
		if enc, ok := t.enclosure(n); ok {
			if !enc.Overlaps(key) {
				return
			}
			if subsetKey(enc, key) {
				flattenInorder(t, n, &removed)
				return
			}
		}

		switch {
		case !n.key.Overlaps(key):
		case subsetKey(n.key, key):
			removed = append(removed, n)
		default:
			pieces := n.key.Difference(key)
			switch len(pieces) {
			case 0:
				removed = append(removed, n)
			case 1:
				n.key = pieces[0]
			default:
				n.key = pieces[0]
				splitInserts = append(splitInserts, seed[K, V]{pieces[1], n.value})
			}
		}

		locate(n.left)
		locate(n.right)
	}

	locate(root)

	u, total := len(removed), t.root.size
	switch {
	case u < total/2:
		for _, victim := range removed {
			t.delete(victim)
		}
	default:
		unsafe := make(map[*node[K, V]]bool, len(removed))
		for _, victim := range removed {
			unsafe[victim] = true
		}
		var all []*node[K, V]
		flattenInorder(t, t.root, &all)
		t.root = t.nilNode
		for _, cand := range all {
			if unsafe[cand] {
				continue
			}
			t.insert(cand)
		}
	}

	for _, s := range splitInserts {
		t.insert(t.newNode(s.key, s.value))
	}
}
