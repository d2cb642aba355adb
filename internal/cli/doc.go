// Package cli translates command-line arguments into a validated
// app.Config. It owns the usage text and the ExitError convention: usage
// problems exit with code 2, conversion failures with code 1.
package cli
