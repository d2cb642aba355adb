package target

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/dagforge/internal/ident"
)

//go:embed templates/*.tmpl
var builtinTemplates embed.FS

// Target describes one output format.
type Target struct {
	// Name is the identifier used on the command line.
	Name string

	// FileExt is the extension of generated files, including the dot.
	FileExt string

	// Policy derives identifiers that are valid in this format.
	Policy ident.Policy

	// Template is the Go template text that renders the task graph.
	Template string
}

// Registry holds all registered output targets for one application instance.
type Registry struct {
	targets map[string]*Target
}

// New creates a Registry populated with the builtin targets.
func New() *Registry {
	r := &Registry{targets: make(map[string]*Target)}

	r.mustRegister(&Target{
		Name:     "airflow",
		FileExt:  ".py",
		Policy:   ident.Default,
		Template: mustReadTemplate("templates/airflow.py.tmpl"),
	})
	r.mustRegister(&Target{
		Name:     "dot",
		FileExt:  ".dot",
		Policy:   ident.Default,
		Template: mustReadTemplate("templates/dot.tmpl"),
	})

	return r
}

// Register adds a target to the registry.
func (r *Registry) Register(t *Target) error {
	if t.Name == "" {
		return fmt.Errorf("target name must not be empty")
	}
	if _, exists := r.targets[t.Name]; exists {
		return fmt.Errorf("target %q is already registered", t.Name)
	}
	r.targets[t.Name] = t
	return nil
}

// Lookup returns the target with the given name.
func (r *Registry) Lookup(name string) (*Target, error) {
	t, ok := r.targets[name]
	if !ok {
		return nil, fmt.Errorf("unknown target %q, known targets: %s", name, strings.Join(r.Names(), ", "))
	}
	return t, nil
}

// Names returns all registered target names in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) mustRegister(t *Target) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

func mustReadTemplate(path string) string {
	b, err := builtinTemplates.ReadFile(path)
	if err != nil {
		// The templates are embedded at compile time; a missing one is a
		// packaging bug, not a runtime condition.
		panic(err)
	}
	return string(b)
}
