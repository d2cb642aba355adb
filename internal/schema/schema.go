// Package schema holds the HCL block structures a pipeline definition file
// decodes into. These are format-specific; the hcl loader translates them
// into the agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Pipeline represents the optional top-level `pipeline` settings block.
type Pipeline struct {
	Name     string `hcl:"name,optional"`
	Schedule string `hcl:"schedule,optional"`
}

// Node represents a `node` block: one processing step with its dataset
// connections. The list attributes stay as raw expressions so the loader
// can evaluate them statically and report precise type errors.
type Node struct {
	Name    string         `hcl:"name,label"`
	Inputs  hcl.Expression `hcl:"inputs,optional"`
	Outputs hcl.Expression `hcl:"outputs,optional"`
	Tags    hcl.Expression `hcl:"tags,optional"`
}

// FileRoot represents the top-level structure of a pipeline definition
// file, containing the settings block and all node definitions.
type FileRoot struct {
	Pipeline *Pipeline `hcl:"pipeline,block"`
	Nodes    []*Node   `hcl:"node,block"`
	Body     hcl.Body  `hcl:",remain"`
}
