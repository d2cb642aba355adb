// Package dag builds the node-level dependency graph of a pipeline.
//
// The pipeline definition never states dependencies directly; they are
// implied by shared dataset names. A node that consumes a dataset depends
// on the node that produces it. Build materializes that relation as an
// explicit adjacency structure in two passes (create nodes, link edges)
// and rejects graphs that contain a cycle or a dataset with more than one
// producer.
package dag
