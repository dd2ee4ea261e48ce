package rbinterval

import "iter"

// Union is a read-only view of the (possibly non-contiguous) set of
// atomics mapped to one value by Items/Find. It is not stored anywhere in
// the tree; coalescing distinct keys into one logical union is the view
// layer's job, never a tree invariant (§4.7).
type Union[K Key[K]] []K

// Item is one coalesced entry of Items: a value and every atomic key
// mapped to it.
type Item[K Key[K], V any] struct {
	Key   Union[K]
	Value V
}

func lowerLess[K Key[K]](a, b K) bool {
	ll, _, _, _ := a.Compare(b)
	return ll < 0
}

// Items enumerates the logical key→value mapping, fusing every node that
// shares a value into one Item whose Key is their union. Stable order: by
// the lower endpoint of each Item's first atomic (§4.7).
func (t *Tree[K, V]) Items() []Item[K, V] {
	var items []Item[K, V]
	t.inorder(t.root, func(n *node[K, V]) {
		for i := range items {
			if t.equal(items[i].Value, n.value) {
				items[i].Key = append(items[i].Key, n.key)
				return
			}
		}
		items = append(items, Item[K, V]{Key: Union[K]{n.key}, Value: n.value})
	})
	for i := range items {
		sortUnion(items[i].Key)
	}
	sortItems(items)
	return items
}

// Keys projects Items onto their coalesced keys.
func (t *Tree[K, V]) Keys() []Union[K] {
	items := t.Items()
	out := make([]Union[K], len(items))
	for i, it := range items {
		out[i] = it.Key
	}
	return out
}

// Values projects Items onto their values.
func (t *Tree[K, V]) Values() []V {
	items := t.Items()
	out := make([]V, len(items))
	for i, it := range items {
		out[i] = it.Value
	}
	return out
}

// Find returns the union of every key mapped to v, or an empty Union if
// none (§7, "Missing-key lookup").
func (t *Tree[K, V]) Find(v V) Union[K] {
	var out Union[K]
	t.inorder(t.root, func(n *node[K, V]) {
		if t.equal(n.value, v) {
			out = append(out, n.key)
		}
	})
	sortUnion(out)
	return out
}

// Range yields every stored (key, value) pair whose key overlaps bounds,
// in ascending order, without coalescing by value (§12). A companion to
// Search for callers that want to stop early via range-over-func.
func (t *Tree[K, V]) Range(bounds K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if bounds.IsEmpty() {
			return
		}
		for x := t.leftmostOverlap(t.root, bounds); x != nil && !t.isNil(x) && x.key.Overlaps(bounds); x = t.successor(x) {
			if !yield(x.key, x.value) {
				return
			}
		}
	}
}

func (t *Tree[K, V]) inorder(n *node[K, V], visit func(*node[K, V])) {
	if t.isNil(n) {
		return
	}
	t.inorder(n.left, visit)
	visit(n)
	t.inorder(n.right, visit)
}

func sortUnion[K Key[K]](u Union[K]) {
	for i := 1; i < len(u); i++ {
		for j := i; j > 0 && lowerLess(u[j], u[j-1]); j-- {
			u[j], u[j-1] = u[j-1], u[j]
		}
	}
}

func sortItems[K Key[K], V any](items []Item[K, V]) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && len(items[j].Key) > 0 && len(items[j-1].Key) > 0 &&
			lowerLess(items[j].Key[0], items[j-1].Key[0]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}
