// Package hcl implements the config.Loader interface for HCL pipeline
// definition files. Files are parsed with hclparse, decoded through the
// schema package, and the node attribute expressions are evaluated
// statically into the agnostic config model.
package hcl
