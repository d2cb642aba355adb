// Package target registers the output formats a task graph can be
// rendered into. Each target bundles a builtin template, an output file
// extension and the identifier policy its format requires, so the rest of
// the application never hardcodes format details.
package target
