package reconcile

import "model-compare/core/graph"

// Entry is the display projection of a node in a comparison category.
type Entry struct {
	// NodeID is the node's identifier, the key the comparison runs on.
	NodeID string `json:"nodeid"`

	// Name is the node's display name, or graph.Unknown.
	Name string `json:"name"`

	// NodegroupID is the node's group, or graph.Unknown.
	NodegroupID string `json:"nodegroup_id"`
}

// newEntry projects a node record onto its display fields.
func newEntry(id string, node graph.GraphNode) Entry {
	return Entry{
		NodeID:      id,
		Name:        node.Name(),
		NodegroupID: node.NodegroupID(),
	}
}

// Summary provides aggregate counts for a comparison.
type Summary struct {
	// TotalFirst is the number of nodes in the first document.
	TotalFirst int `json:"total_nodes_file1"`

	// TotalSecond is the number of nodes in the second document.
	TotalSecond int `json:"total_nodes_file2"`

	// OnlyInFirst counts nodes present only in the first document.
	OnlyInFirst int `json:"only_in_file1_count"`

	// OnlyInSecond counts nodes present only in the second document.
	OnlyInSecond int `json:"only_in_file2_count"`

	// Common counts nodes present in both documents.
	Common int `json:"common_nodes_count"`
}

// ComparisonResult classifies the nodes of two documents by presence.
// Every category is ordered by ascending node id. A result is not modified after
// Reconcile returns it.
type ComparisonResult struct {
	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// OnlyInFirst holds nodes removed between the first and second document.
	OnlyInFirst []Entry `json:"only_in_first_file"`

	// OnlyInSecond holds nodes added in the second document.
	OnlyInSecond []Entry `json:"only_in_second_file"`

	// Common holds nodes present in both; display fields come from the first document.
	Common []Entry `json:"present_in_both"`
}

// OnlyInFirstIDs returns the ids of nodes present only in the first document.
func (r *ComparisonResult) OnlyInFirstIDs() []string {
	return entryIDs(r.OnlyInFirst)
}

// OnlyInSecondIDs returns the ids of nodes present only in the second document.
func (r *ComparisonResult) OnlyInSecondIDs() []string {
	return entryIDs(r.OnlyInSecond)
}

// CommonIDs returns the ids of nodes present in both documents.
func (r *ComparisonResult) CommonIDs() []string {
	return entryIDs(r.Common)
}

func entryIDs(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.NodeID
	}
	return ids
}
