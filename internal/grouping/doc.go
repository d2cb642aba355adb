// Package grouping assigns every pipeline node to exactly one
// orchestration-task group.
//
// The assignment is a strict partition: every node lands in exactly one
// group, group names are derived deterministically through an ident.Policy,
// and a configuration that would merge unrelated nodes under one identifier
// or make two groups depend on each other is rejected with a typed error
// rather than silently producing a broken task graph.
package grouping
