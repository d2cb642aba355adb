package grouping

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/dagforge/internal/ctxlog"
	"github.com/vk/dagforge/internal/dag"
	"github.com/vk/dagforge/internal/ident"
)

// Mode selects the grouping strategy.
type Mode string

const (
	// ModeNone keeps every node as its own singleton group.
	ModeNone Mode = "none"

	// ModeByTag merges nodes sharing a grouping tag value into one group.
	ModeByTag Mode = "by-tag"
)

// ParseMode converts a CLI string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return ModeNone, nil
	case "by-tag", "tag":
		return ModeByTag, nil
	default:
		return "", &InvalidConfigurationError{Reason: fmt.Sprintf("unknown grouping mode %q, must be 'none' or 'by-tag'", s)}
	}
}

// Options configures one grouping run.
type Options struct {
	Mode Mode

	// TagKey selects which tags participate in ModeByTag. A tag equal to
	// the key groups under the key itself; a tag of the form "key:value"
	// groups under the value.
	TagKey string

	// Policy derives group identifiers. The zero value falls back to
	// ident.Default.
	Policy ident.Policy
}

// Build assigns every node of the graph to exactly one group and verifies
// that the induced group graph is acyclic.
func Build(ctx context.Context, g *dag.Graph, opts Options) (*Partition, error) {
	logger := ctxlog.FromContext(ctx)
	policy := opts.Policy
	if policy.Separator == 0 {
		policy = ident.Default
	}

	if opts.Mode != ModeNone && opts.Mode != ModeByTag {
		return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("unknown grouping mode %q", opts.Mode)}
	}
	if opts.Mode == ModeByTag && !policy.Valid(opts.TagKey) {
		return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("tag key %q is not usable as an identifier source", opts.TagKey)}
	}
	logger.Debug("Grouping started.", "mode", string(opts.Mode), "node_count", len(g.Nodes))

	assign := make(map[string]string, len(g.Nodes))
	// sources remembers which node name or tag value produced each derived
	// identifier, so a collision can name both offenders.
	sources := make(map[string]string)

	for _, name := range g.SortedNames() {
		node := g.Nodes[name]

		source := fmt.Sprintf("node %q", name)
		raw := name
		if opts.Mode == ModeByTag {
			value, err := groupingTagValue(node, opts.TagKey)
			if err != nil {
				return nil, err
			}
			if value != "" {
				source = fmt.Sprintf("tag value %q", value)
				raw = value
			}
		}

		derived := policy.Normalize(raw)
		if derived == "" {
			return nil, &InvalidConfigurationError{Reason: fmt.Sprintf("%s normalizes to an empty identifier", source)}
		}
		if prev, seen := sources[derived]; seen && prev != source {
			return nil, &NamingCollisionError{Name: derived, SourceA: prev, SourceB: source}
		}
		sources[derived] = source
		assign[name] = derived
	}

	partition := NewPartition(assign)
	logger.Debug("Grouping produced partition.", "group_count", partition.Len())

	if err := checkGroupCycles(g, partition); err != nil {
		return nil, err
	}
	logger.Debug("Group graph cycle check passed.")

	return partition, nil
}

// groupingTagValue extracts the node's grouping value for the given tag
// key. It returns "" when no tag matches and an error when two distinct
// values match, which would make the assignment ambiguous.
func groupingTagValue(node *dag.Node, key string) (string, error) {
	var value string
	for _, tag := range node.Config.Tags {
		candidate := ""
		switch {
		case tag == key:
			candidate = key
		case strings.HasPrefix(tag, key+":"):
			candidate = tag[len(key)+1:]
		default:
			continue
		}
		if value != "" && candidate != value {
			return "", &InvalidConfigurationError{
				Reason: fmt.Sprintf("node %q carries conflicting grouping tags %q and %q for key %q", node.Name, value, candidate, key),
			}
		}
		value = candidate
	}
	return value, nil
}

// checkGroupCycles verifies the group-level graph induced by the partition
// is acyclic. The node graph is already known to be a DAG, but merging
// nodes can fold a valid chain into mutually dependent groups.
func checkGroupCycles(g *dag.Graph, p *Partition) error {
	deps := groupEdges(g, p)

	visiting := make(map[string]bool)
	visited := make(map[string]bool)
	var stack []string

	var visit func(group string) *CyclicGroupingError
	visit = func(group string) *CyclicGroupingError {
		visiting[group] = true
		stack = append(stack, group)

		for _, dep := range deps[group] {
			if visiting[dep] {
				return &CyclicGroupingError{Groups: cycleFrom(stack, dep)}
			}
			if !visited[dep] {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		stack = stack[:len(stack)-1]
		delete(visiting, group)
		visited[group] = true
		return nil
	}

	for _, group := range p.Groups() {
		if !visited[group.Name] {
			if err := visit(group.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// groupEdges projects node dependencies onto groups, deduplicated and
// without self-edges, with deterministic ordering of the adjacency lists.
func groupEdges(g *dag.Graph, p *Partition) map[string][]string {
	seen := make(map[string]map[string]bool)
	for _, name := range g.SortedNames() {
		node := g.Nodes[name]
		from, _ := p.GroupOf(name)
		for depName := range node.Deps {
			to, _ := p.GroupOf(depName)
			if from == to {
				continue
			}
			if seen[from] == nil {
				seen[from] = make(map[string]bool)
			}
			seen[from][to] = true
		}
	}

	deps := make(map[string][]string, len(seen))
	for from, tos := range seen {
		list := make([]string, 0, len(tos))
		for to := range tos {
			list = append(list, to)
		}
		sort.Strings(list)
		deps[from] = list
	}
	return deps
}

// cycleFrom slices the DFS stack starting at the first occurrence of the
// repeated group, closing the loop with it.
func cycleFrom(stack []string, repeat string) []string {
	for i, name := range stack {
		if name == repeat {
			cycle := append([]string{}, stack[i:]...)
			return append(cycle, repeat)
		}
	}
	return []string{repeat, repeat}
}
