// Package yaml implements the config.Loader interface for YAML pipeline
// definition files. It mirrors the HCL loader behind the same model so
// either format can drive a conversion.
package yaml

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/dagforge/internal/config"
	"github.com/vk/dagforge/internal/ctxlog"
	"github.com/vk/dagforge/internal/fsutil"
)

// document is the YAML-specific shape of a pipeline definition file.
type document struct {
	Pipeline struct {
		Name     string `yaml:"name"`
		Schedule string `yaml:"schedule"`
	} `yaml:"pipeline"`
	Nodes []struct {
		Name    string   `yaml:"name"`
		Inputs  []string `yaml:"inputs"`
		Outputs []string `yaml:"outputs"`
		Tags    []string `yaml:"tags"`
	} `yaml:"nodes"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML pipeline loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads all YAML files under the given paths and merges their
// contents into a single pipeline model, mirroring the HCL loader's
// merge rules.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.CollectFiles(path, ".yaml", ".yml")
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .yaml pipeline files found in %v", paths)
	}

	pipeline := &config.Pipeline{}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", file, err)
		}

		var doc document
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", file, err)
		}

		if doc.Pipeline.Name != "" {
			pipeline.Name = doc.Pipeline.Name
		}
		if doc.Pipeline.Schedule != "" {
			pipeline.Schedule = doc.Pipeline.Schedule
		}
		for _, n := range doc.Nodes {
			if n.Name == "" {
				return nil, fmt.Errorf("in %s: every node needs a name", file)
			}
			pipeline.Nodes = append(pipeline.Nodes, &config.Node{
				Name:    n.Name,
				Inputs:  n.Inputs,
				Outputs: n.Outputs,
				Tags:    n.Tags,
			})
		}
	}

	logger.Debug("YAML loading complete.", "node_count", len(pipeline.Nodes))
	return &config.Model{Pipeline: pipeline}, nil
}
