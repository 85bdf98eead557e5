// Package graph extracts the node collection from a model export.
//
// Model exports are loosely structured: the top-level "graph" field may hold a
// single graph object or a list of them, and any level of the document may be
// missing. Extraction never fails on shape; anything it cannot address simply
// contributes no nodes.
//
// # Node Identity
//
// Nodes are keyed by their "nodeid" field, coerced to a string. A node without a
// usable id is skipped. When an id repeats, the later record wins, across all
// graph objects of the same document.
//
// # Usage
//
//	nodes := graph.Extract(doc)
//	for id, node := range nodes {
//	    fmt.Println(id, node.Name(), node.NodegroupID())
//	}
package graph
