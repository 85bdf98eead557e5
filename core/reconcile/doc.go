// Package reconcile compares the node sets of two model exports.
//
// Given the node mappings extracted from two documents, Reconcile builds the union
// of node ids and classifies every id into exactly one category:
//
//   - OnlyInFirst: present in the first document only (removed).
//   - OnlyInSecond: present in the second document only (added).
//   - Common: present in both (retained).
//
// Only presence is compared; the contents of retained nodes are not diffed.
//
// # Ordering
//
// Map iteration order is random, so every category is sorted by ascending node id.
// Two runs over the same inputs always produce the same result.
//
// # Invariants
//
//	len(OnlyInFirst) + len(Common) == len(first)
//	len(OnlyInSecond) + len(Common) == len(second)
//
// Swapping the arguments swaps OnlyInFirst and OnlyInSecond and leaves the Common
// ids unchanged.
//
// # Usage Example
//
//	result := reconcile.Reconcile(graph.Extract(before), graph.Extract(after))
//	fmt.Println(result.Summary.OnlyInSecond, "nodes added")
package reconcile
