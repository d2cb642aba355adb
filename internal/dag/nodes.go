package dag

import (
	"context"
	"fmt"

	"github.com/vk/dagforge/internal/config"
	"github.com/vk/dagforge/internal/ctxlog"
)

// createNodes performs the first pass of graph creation. It returns the
// producer index mapping each dataset name to the node that outputs it.
func createNodes(ctx context.Context, pipeline *config.Pipeline, graph *Graph) (map[string]*Node, error) {
	logger := ctxlog.FromContext(ctx)
	producers := make(map[string]*Node)

	for _, n := range pipeline.Nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("pipeline contains a node without a name")
		}
		if _, exists := graph.Nodes[n.Name]; exists {
			return nil, fmt.Errorf("duplicate node definition: %q", n.Name)
		}

		node := &Node{
			Name:       n.Name,
			Config:     n,
			Deps:       make(map[string]*Node),
			Dependents: make(map[string]*Node),
		}
		graph.Nodes[n.Name] = node

		for _, dataset := range n.Outputs {
			if prev, exists := producers[dataset]; exists {
				return nil, fmt.Errorf("dataset %q is produced by both %q and %q", dataset, prev.Name, n.Name)
			}
			producers[dataset] = node
		}
		logger.Debug("Registered node.", "name", n.Name, "outputs", len(n.Outputs))
	}

	return producers, nil
}
