// Package render turns a task-graph description into the final
// orchestrator file text using Go templates. It owns the helper function
// map available inside templates and nothing else; which template to use
// is the target registry's decision.
package render
