// Package history records comparison runs in a database.
//
// Each run stores both sources, where the report was written, and the summary
// counts, so changes to a model can be audited over time. Node lists are not
// stored; the written report holds those.
package history
