// Package taskgraph projects the node-level dependency graph onto the
// groups of a partition, producing the renderer-ready task-graph
// description: one task per group, deduplicated upstream edges, and a
// deterministic topological emission order with ties broken by group name.
package taskgraph
