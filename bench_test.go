package rbinterval_test

import (
	"math/rand"
	"testing"

	rb "github.com/nilgrove/rbinterval"
)

func benchTree(n int) (*rb.Tree[rb.Interval[int], int], []rb.Interval[int]) {
	rng := rand.New(rand.NewSource(42))
	tree := rb.NewTree[rb.Interval[int], int](func(a, b int) bool { return a == b })
	keys := make([]rb.Interval[int], 0, n)
	for i := 0; i < n; i++ {
		lo := rng.Intn(n * 10)
		hi := lo + rng.Intn(20)
		k := rb.ClosedInterval(lo, hi)
		if k.IsEmpty() {
			continue
		}
		tree.InsertInterval(k, i)
		keys = append(keys, k)
	}
	return tree, keys
}

func BenchmarkInsertInterval(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	tree := rb.NewTree[rb.Interval[int], int](func(a, c int) bool { return a == c })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := rng.Intn(100_000)
		tree.InsertInterval(rb.ClosedInterval(lo, lo+rng.Intn(20)), i)
	}
}

func BenchmarkSearch(b *testing.B) {
	tree, keys := benchTree(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Search(keys[i%len(keys)])
	}
}

func BenchmarkDeleteInterval(b *testing.B) {
	b.StopTimer()
	tree, keys := benchTree(b.N)
	b.StartTimer()
	for i := 0; i < len(keys); i++ {
		tree.DeleteInterval(keys[i])
	}
}

func BenchmarkItems(b *testing.B) {
	tree, _ := benchTree(5_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Items()
	}
}
