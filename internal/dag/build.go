package dag

import (
	"context"
	"fmt"

	"github.com/vk/dagforge/internal/config"
	"github.com/vk/dagforge/internal/ctxlog"
)

// Build constructs a complete, validated dependency graph from a pipeline model.
func Build(ctx context.Context, pipeline *config.Pipeline) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")
	graph := &Graph{Nodes: make(map[string]*Node)}

	// First pass: create all nodes and index which node produces which dataset.
	producers, err := createNodes(ctx, pipeline, graph)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Node creation complete.", "node_count", len(graph.Nodes))

	// Second pass: link dependencies through shared dataset names.
	linkNodes(ctx, graph, producers)
	logger.Debug("Build: Node linking complete.")

	if err := graph.detectCycles(); err != nil {
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}
	logger.Debug("Build: Cycle detection passed.")

	return graph, nil
}
