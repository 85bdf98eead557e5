// Package report renders comparison results for people.
//
// The text report has a fixed layout: a summary block with the node counts,
// then three sections (nodes only in the first file, only in the second, and in
// both), one line per node:
//
//	Node ID - <nodeid> - Node name - <name> - [NODE_GROUP_ID: <nodegroup_id>]
//
// A JSON rendering of the same result is available for tooling.
//
// Unless told otherwise, reports are written to
// compare_<first>_vs_<second>_results.txt, where each name is the input's file
// name without directory or extension.
package report
