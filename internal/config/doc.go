// Package config defines the format-agnostic pipeline model for the
// application, along with the Loader interface for reading pipeline
// definitions from various sources.
//
// The `config.Model` is the single source of truth for the `dag`,
// `grouping` and `taskgraph` packages. Concrete implementations of the
// Loader interface, such as for HCL and YAML, live in separate packages.
package config
