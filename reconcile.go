package rbinterval

// subsetKey reports whether a ⊆ b using the Key contract's Compare.
func subsetKey[K Key[K]](a, b K) bool {
	ll, rr, _, _ := a.Compare(b)
	return ll >= 0 && rr <= 0
}

type seed[K Key[K], V any] struct {
	key   K
	value V
}

func flattenInorder[K Key[K], V any](t *Tree[K, V], n *node[K, V], out *[]*node[K, V]) {
	if t.isNil(n) {
		return
	}
	flattenInorder(t, n.left, out)
	*out = append(*out, n)
	flattenInorder(t, n.right, out)
}

// modify is the subtree reconciliation pass run after x.key has already
// been replaced or extended (§4.4). It restores I3/I4 across x's subtree,
// choosing between a targeted delete pass and a full rebuild per the
// U-vs-N/2 threshold documented in SPEC_FULL.md / DESIGN.md.
//
// Fusing one touching same-value neighbor into x.key can bring x.key into
// contact with a second, previously out-of-reach neighbor (a chain of
// touching same-value atomics). Locate therefore runs to a fixed point:
// each round re-scans x's subtree against the current x.key and stops once
// a round schedules no further extension.
func (t *Tree[K, V]) modify(x *node[K, V]) {
	key := x.key

	removedSet := make(map[*node[K, V]]bool)
	var removed []*node[K, V]
	var splitInserts []seed[K, V]

	markRemoved := func(n *node[K, V]) {
		if !removedSet[n] {
			removedSet[n] = true
			removed = append(removed, n)
		}
	}

	for {
		var extendKeys []K

		var locate func(n *node[K, V])
		locate = func(n *node[K, V]) {
			if t.isNil(n) || removedSet[n] {
				return
			}
			if enc, ok := t.enclosure(n); ok {
				if !enc.Overlaps(key) && !enc.Touches(key) {
					return // safe subtree, dismissed without descent
				}
				if enc.Overlaps(key) && subsetKey(enc, key) {
					var sub []*node[K, V]
					flattenInorder(t, n, &sub)
					for _, s := range sub {
						markRemoved(s)
					}
					return
				}
			}

			overlaps := n.key.Overlaps(key)
			switch {
			case !overlaps && !n.key.Touches(key):
				// safe node; its subtree enclosure still straddles key, so
				// children need individual classification.
			case !overlaps: // touches only: fuse if same value, else leave as-is
				if t.equal(n.value, x.value) {
					extendKeys = append(extendKeys, n.key)
					markRemoved(n)
				}
			case subsetKey(n.key, key):
				markRemoved(n)
			case t.equal(n.value, x.value):
				extendKeys = append(extendKeys, n.key)
				markRemoved(n)
			default:
				pieces := n.key.Difference(key)
				switch len(pieces) {
				case 0:
					markRemoved(n)
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

		locate(x.left)
		locate(x.right)

		if len(extendKeys) == 0 {
			break
		}
		for _, k := range extendKeys {
			key = key.Union(k)[0]
		}
	}

	x.key = key

	u, n := len(removed), t.root.size
	switch {
	case u < n/2:
		for _, victim := range removed {
			t.delete(victim)
		}
	default:
		var all []*node[K, V]
		flattenInorder(t, t.root, &all)
		t.root = t.nilNode
		for _, cand := range all {
			if cand == x || removedSet[cand] {
				continue
			}
			t.insert(cand)
		}
		t.insert(x)
	}

	for _, s := range splitInserts {
		t.insert(t.newNode(s.key, s.value))
	}
}
