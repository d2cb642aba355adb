package dag

import "github.com/vk/dagforge/internal/config"

// Graph is the materialized node-level dependency graph of one pipeline.
// It is built once per conversion and never mutated afterwards.
type Graph struct {
	// Nodes stores all nodes in the graph, keyed by node name.
	Nodes map[string]*Node
}

// Node is a single vertex in the graph.
type Node struct {
	// Name is the unique identifier of the node within the pipeline.
	Name string

	// Config is the node definition this vertex was created from.
	Config *config.Node

	// Deps holds the set of nodes this node depends on (its producers).
	Deps map[string]*Node

	// Dependents holds the set of nodes that depend on this node.
	Dependents map[string]*Node
}
