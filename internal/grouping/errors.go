package grouping

import (
	"fmt"
	"strings"
)

// NamingCollisionError reports that two distinct sources (node names or
// tag values) normalize to the same group identifier. Merging them would
// silently collapse unrelated nodes, so the conversion is aborted instead.
type NamingCollisionError struct {
	// Name is the derived identifier both sources normalize to.
	Name string

	// SourceA and SourceB describe the colliding sources.
	SourceA string
	SourceB string
}

func (e *NamingCollisionError) Error() string {
	return fmt.Sprintf("group name %q is derived from both %s and %s", e.Name, e.SourceA, e.SourceB)
}

// CyclicGroupingError reports that the grouping configuration, combined
// with the pipeline's real dependencies, would require a group to depend
// on itself transitively.
type CyclicGroupingError struct {
	// Groups lists the group names forming the cycle, in dependency order.
	Groups []string
}

func (e *CyclicGroupingError) Error() string {
	return fmt.Sprintf("grouping induces a dependency cycle: %s", strings.Join(e.Groups, " -> "))
}

// InvalidConfigurationError reports a grouping configuration that cannot
// be applied, such as a tag key that is unusable as an identifier source.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid grouping configuration: " + e.Reason
}
