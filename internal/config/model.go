package config

// Model is the unified, format-agnostic representation of a loaded
// pipeline definition, regardless of the file format it came from.
type Model struct {
	Pipeline *Pipeline
}

// Pipeline is the user's processing graph plus its deploy-time settings.
type Pipeline struct {
	// Name identifies the pipeline and seeds the generated DAG id when no
	// explicit id is given on the command line.
	Name string

	// Schedule is an optional cron expression or @descriptor carried
	// verbatim into the generated file.
	Schedule string

	// Nodes are the atomic processing steps, in declaration order.
	Nodes []*Node
}

// Node is the format-agnostic representation of a single processing step.
// Nodes are immutable once loaded; dependencies between them are implied
// by shared dataset names, never stored on the node itself.
type Node struct {
	Name    string
	Inputs  []string
	Outputs []string
	Tags    []string
}
