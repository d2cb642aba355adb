package taskgraph

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/dagforge/internal/ctxlog"
	"github.com/vk/dagforge/internal/dag"
	"github.com/vk/dagforge/internal/grouping"
)

// Project derives the group-level task graph from the node graph and a
// partition. Every node dependency crossing a group boundary becomes one
// deduplicated upstream edge; dependencies inside a group are dropped.
//
// The emission order is a Kahn topological sort over the group graph with
// ties broken by group name ascending, so the same input always produces
// a byte-identical description.
func Project(ctx context.Context, g *dag.Graph, p *grouping.Partition) (*TaskGraph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Projecting node graph onto groups.", "node_count", len(g.Nodes), "group_count", p.Len())

	upstream := make(map[string]map[string]bool, p.Len())
	for _, group := range p.Groups() {
		upstream[group.Name] = make(map[string]bool)
	}

	for _, name := range g.SortedNames() {
		node := g.Nodes[name]
		from, ok := p.GroupOf(name)
		if !ok {
			return nil, fmt.Errorf("node %q is not assigned to any group", name)
		}
		for depName := range node.Deps {
			to, ok := p.GroupOf(depName)
			if !ok {
				return nil, fmt.Errorf("node %q is not assigned to any group", depName)
			}
			if from == to {
				continue
			}
			upstream[from][to] = true
		}
	}

	order, err := sortGroups(upstream)
	if err != nil {
		return nil, err
	}

	tasks := make([]Task, 0, len(order))
	for _, name := range order {
		group, _ := p.Group(name)
		tasks = append(tasks, Task{
			Name:      name,
			Members:   group.Members,
			DependsOn: sortedKeys(upstream[name]),
		})
	}

	logger.Debug("Projection complete.", "task_count", len(tasks))
	return &TaskGraph{Tasks: tasks}, nil
}

// sortGroups runs Kahn's algorithm over the group graph. The ready queue
// is kept in name order so the result is fully deterministic. A non-empty
// remainder means the group graph has a cycle; grouping validation should
// have caught it, but an invalid graph must never be emitted.
func sortGroups(upstream map[string]map[string]bool) ([]string, error) {
	indegree := make(map[string]int, len(upstream))
	dependents := make(map[string][]string, len(upstream))

	for name := range upstream {
		indegree[name] = len(upstream[name])
	}
	for name, deps := range upstream {
		for dep := range deps {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for name, n := range indegree {
		if n == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(upstream))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)

		for _, dependent := range dependents[name] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				ready = insertSorted(ready, dependent)
			}
		}
	}

	if len(order) != len(upstream) {
		var stuck []string
		for name, n := range indegree {
			if n > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, &grouping.CyclicGroupingError{Groups: stuck}
	}

	return order, nil
}

// insertSorted inserts name into the sorted slice, keeping it sorted.
func insertSorted(sorted []string, name string) []string {
	i := sort.SearchStrings(sorted, name)
	sorted = append(sorted, "")
	copy(sorted[i+1:], sorted[i:])
	sorted[i] = name
	return sorted
}

// sortedKeys returns the keys of the set in ascending order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
