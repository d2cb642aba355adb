package dag

import (
	"context"

	"github.com/vk/dagforge/internal/ctxlog"
)

// linkNodes performs the second pass, establishing dependency links.
//
// A node depends on every node that produces one of its input datasets.
// Inputs with no producer are external source datasets and create no edge;
// a node whose inputs are all external is a graph root.
func linkNodes(ctx context.Context, graph *Graph, producers map[string]*Node) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting node linking pass.")

	for _, node := range graph.Nodes {
		for _, dataset := range node.Config.Inputs {
			producer, ok := producers[dataset]
			if !ok {
				// External dataset, nothing in this pipeline produces it.
				continue
			}
			if producer.Name == node.Name {
				// A node may feed one of its own outputs back as an input;
				// self-edges carry no scheduling information.
				continue
			}
			if _, exists := node.Deps[producer.Name]; exists {
				continue
			}
			logger.Debug("Linking dataset dependency.", "from", node.Name, "to", producer.Name, "dataset", dataset)
			node.Deps[producer.Name] = producer
			producer.Dependents[node.Name] = node
		}
	}
	logger.Debug("Finished node linking pass.")
}
