// Package rbinterval implements an interval-keyed ordered map backed by an
// augmented red-black tree.
//
// Keys are one-dimensional, atomic intervals over an ordered domain. The
// set of stored keys always forms a disjoint partition: inserting a key
// that overlaps existing keys splits, truncates, or coalesces neighbors so
// that no two stored keys ever overlap. Adjacent keys that end up mapped
// to equal values are fused into a single key.
//
// The tree maintains, for every node, a subtree size and pointers to the
// minimum- and maximum-keyed descendant. These augmentations drive
// enclosure pruning during range search and subtree reconciliation, giving
// both operations sublinear behavior on typical workloads.
//
// The tree is not safe for concurrent use; callers sharing an instance
// across goroutines must serialize access themselves.
package rbinterval
