package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/dagforge/internal/config"
	"github.com/vk/dagforge/internal/ctxlog"
	"github.com/vk/dagforge/internal/fsutil"
	"github.com/vk/dagforge/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL pipeline loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads all HCL files under the given paths and merges their blocks
// into a single pipeline model. The last `pipeline` settings block wins;
// node blocks accumulate across files in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.CollectFiles(path, ".hcl")
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl pipeline files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	pipeline := &config.Pipeline{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.FileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		if root.Pipeline != nil {
			pipeline.Name = root.Pipeline.Name
			pipeline.Schedule = root.Pipeline.Schedule
		}
		for _, n := range root.Nodes {
			node, err := l.translateNode(n)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			pipeline.Nodes = append(pipeline.Nodes, node)
		}
	}

	logger.Debug("HCL loading complete.", "node_count", len(pipeline.Nodes))
	return &config.Model{Pipeline: pipeline}, nil
}
