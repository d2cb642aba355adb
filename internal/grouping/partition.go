package grouping

import (
	"sort"
)

// Group is a non-empty set of nodes collapsed into one orchestration task.
type Group struct {
	// Name is the derived, normalized group identifier.
	Name string

	// Members are the original node names, in ascending order.
	Members []string
}

// Partition is a complete node-to-group assignment. It is immutable once
// built; both lookup directions are precomputed.
type Partition struct {
	byNode map[string]string
	groups map[string]*Group
}

// NewPartition builds a Partition from a node-name to group-name mapping.
func NewPartition(assign map[string]string) *Partition {
	p := &Partition{
		byNode: make(map[string]string, len(assign)),
		groups: make(map[string]*Group),
	}
	for node, group := range assign {
		p.byNode[node] = group
		g, ok := p.groups[group]
		if !ok {
			g = &Group{Name: group}
			p.groups[group] = g
		}
		g.Members = append(g.Members, node)
	}
	for _, g := range p.groups {
		sort.Strings(g.Members)
	}
	return p
}

// GroupOf returns the name of the group the node belongs to.
func (p *Partition) GroupOf(node string) (string, bool) {
	name, ok := p.byNode[node]
	return name, ok
}

// Group returns the group with the given name.
func (p *Partition) Group(name string) (*Group, bool) {
	g, ok := p.groups[name]
	return g, ok
}

// Groups returns all groups ordered by name ascending.
func (p *Partition) Groups() []*Group {
	out := make([]*Group, 0, len(p.groups))
	for _, g := range p.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of groups.
func (p *Partition) Len() int {
	return len(p.groups)
}
