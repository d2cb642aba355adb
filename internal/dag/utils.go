package dag

import (
	"fmt"
	"sort"
)

// detectCycles checks for circular dependencies in the graph using DFS.
func (g *Graph) detectCycles() error {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)

	var visit func(node *Node) error
	visit = func(node *Node) error {
		visiting[node.Name] = true
		for _, dep := range node.Deps {
			if visiting[dep.Name] {
				return fmt.Errorf("cycle detected involving %q", dep.Name)
			}
			if !visited[dep.Name] {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		delete(visiting, node.Name)
		visited[node.Name] = true
		return nil
	}

	// Visit in name order so a cyclic graph reports the same node every run.
	for _, name := range g.SortedNames() {
		if !visited[name] {
			if err := visit(g.Nodes[name]); err != nil {
				return err
			}
		}
	}
	return nil
}

// SortedNames returns all node names in ascending order.
func (g *Graph) SortedNames() []string {
	names := make([]string, 0, len(g.Nodes))
	for name := range g.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
