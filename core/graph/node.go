package graph

import "model-compare/core/utils"

const (
	// FieldNodeID is the key every comparable node must carry.
	FieldNodeID = "nodeid"
	// FieldName is the display name of a node.
	FieldName = "name"
	// FieldNodegroupID is the node group a node belongs to.
	FieldNodegroupID = "nodegroup_id"

	// Unknown is shown for display fields a node does not carry.
	Unknown = "Unknown"
)

// GraphNode is a node record exactly as it appears in the document.
// Fields other than the id and display fields are kept but not interpreted.
type GraphNode map[string]any

// ID returns the node's identifier and whether it has a usable one.
func (n GraphNode) ID() (string, bool) {
	v, ok := n[FieldNodeID]
	if !ok || !utils.IsTruthy(v) {
		return "", false
	}
	return utils.ToString(v), true
}

// Name returns the node's display name, or Unknown.
func (n GraphNode) Name() string {
	return n.display(FieldName)
}

// NodegroupID returns the node's group id, or Unknown.
func (n GraphNode) NodegroupID() string {
	return n.display(FieldNodegroupID)
}

func (n GraphNode) display(field string) string {
	v, ok := n[field]
	if !ok || v == nil {
		return Unknown
	}
	return utils.ToString(v)
}

// NodeMapping indexes the nodes of one document by node id.
type NodeMapping map[string]GraphNode

// IDs returns the ids of the mapping in no particular order.
func (m NodeMapping) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}
