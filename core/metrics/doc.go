// Package metrics exposes Prometheus metrics for serve mode.
//
// Each Collector owns its registry, so tests and multiple servers in one process
// never collide on registration. Metrics cover comparison counts, category sizes,
// document load failures and mapping cache efficiency.
package metrics
