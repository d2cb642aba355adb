// Package app wires the application together: it owns the validated
// configuration, the logger, the loaded pipeline model and the output
// target registry, and drives one conversion run from model to written
// DAG file.
package app
