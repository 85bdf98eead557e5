package reconcile

import (
	"sort"

	"model-compare/core/graph"
)

// Reconcile compares the node mappings of two documents.
// It builds the union of node ids, classifies each id by which side holds it,
// and returns every category sorted by id for reproducible output.
func Reconcile(first, second graph.NodeMapping) *ComparisonResult {
	result := &ComparisonResult{
		OnlyInFirst:  []Entry{},
		OnlyInSecond: []Entry{},
		Common:       []Entry{},
	}

	for _, id := range buildUnion(first, second) {
		firstNode, inFirst := first[id]
		secondNode, inSecond := second[id]

		switch {
		case inFirst && inSecond:
			result.Common = append(result.Common, newEntry(id, firstNode))
		case inFirst:
			result.OnlyInFirst = append(result.OnlyInFirst, newEntry(id, firstNode))
		default:
			result.OnlyInSecond = append(result.OnlyInSecond, newEntry(id, secondNode))
		}
	}

	result.Summary = Summary{
		TotalFirst:   len(first),
		TotalSecond:  len(second),
		OnlyInFirst:  len(result.OnlyInFirst),
		OnlyInSecond: len(result.OnlyInSecond),
		Common:       len(result.Common),
	}

	return result
}

// buildUnion returns the ids of both mappings, deduplicated and sorted.
func buildUnion(first, second graph.NodeMapping) []string {
	union := make(map[string]struct{}, len(first)+len(second))
	for id := range first {
		union[id] = struct{}{}
	}
	for id := range second {
		union[id] = struct{}{}
	}

	ids := make([]string, 0, len(union))
	for id := range union {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
