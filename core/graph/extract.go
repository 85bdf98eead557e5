package graph

import "model-compare/core/utils"

// Stats describes what extraction had to skip in a document.
type Stats struct {
	// MissingGraph is set when the document has no "graph" field at all.
	MissingGraph bool `json:"missing_graph"`
	// Graphs counts the graph objects that were inspected.
	Graphs int `json:"graphs"`
	// GraphsWithoutNodes counts graph objects with no usable "nodes" list.
	GraphsWithoutNodes int `json:"graphs_without_nodes"`
	// SkippedNodes counts node entries that were not objects or had no id.
	SkippedNodes int `json:"skipped_nodes"`
	// DuplicateIDs counts records that overwrote an earlier record with the same id.
	DuplicateIDs int `json:"duplicate_ids"`
}

// Extract builds the node mapping of a parsed document.
func Extract(doc any) NodeMapping {
	mapping, _ := ExtractWithStats(doc)
	return mapping
}

// ExtractWithStats builds the node mapping of a parsed document and reports what
// was skipped along the way. It never fails; a document without a graph yields an
// empty mapping.
func ExtractWithStats(doc any) (NodeMapping, Stats) {
	mapping := make(NodeMapping)
	var stats Stats

	root, ok := asObject(doc)
	if !ok {
		stats.MissingGraph = true
		return mapping, stats
	}
	raw, ok := root["graph"]
	if !ok {
		stats.MissingGraph = true
		return mapping, stats
	}

	for _, g := range graphObjects(raw) {
		stats.Graphs++

		nodes, ok := g["nodes"].([]any)
		if !ok {
			stats.GraphsWithoutNodes++
			continue
		}

		for _, entry := range nodes {
			fields, ok := asObject(entry)
			if !ok {
				stats.SkippedNodes++
				continue
			}
			node := GraphNode(fields)
			id, ok := node.ID()
			if !ok {
				stats.SkippedNodes++
				continue
			}
			if _, exists := mapping[id]; exists {
				stats.DuplicateIDs++
			}
			mapping[id] = node
		}
	}

	return mapping, stats
}

// graphObjects normalizes the "graph" field to a list of graph objects.
// A single object becomes a one-element list; entries that are not objects are dropped.
func graphObjects(raw any) []map[string]any {
	if obj, ok := asObject(raw); ok {
		return []map[string]any{obj}
	}

	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	graphs := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj, ok := asObject(item); ok {
			graphs = append(graphs, obj)
		}
	}
	return graphs
}

// asObject returns v as a string-keyed object. YAML mappings with non-string keys
// are converted with their keys stringified.
func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case GraphNode:
		return obj, true
	case map[any]any:
		converted := make(map[string]any, len(obj))
		for k, val := range obj {
			converted[utils.ToString(k)] = val
		}
		return converted, true
	default:
		return nil, false
	}
}
