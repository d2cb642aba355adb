// Package ident derives identifiers that are safe to embed in a generated
// orchestrator file from free-text node names and tag values.
//
// Every output target has its own idea of what a valid identifier looks
// like, so the transformation is expressed as a Policy value rather than a
// fixed function. A Policy is deterministic and idempotent: normalizing an
// already-normalized name yields the same name.
package ident

import "strings"

// Policy describes how free-text names are folded into identifiers.
type Policy struct {
	// Separator replaces every run of characters that are not lowercase
	// letters or digits. It must itself be outside that set, otherwise
	// normalization would not be idempotent.
	Separator rune
}

// Default is the policy used by targets that accept Python-style
// identifiers, such as Airflow task ids.
var Default = Policy{Separator: '_'}

// Normalize folds s into an identifier: letters are lower-cased, every run
// of non-alphanumeric characters collapses into a single separator, and
// leading or trailing separators are trimmed.
func (p Policy) Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && sb.Len() > 0 {
				sb.WriteRune(p.Separator)
			}
			pendingSep = false
			sb.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	return sb.String()
}

// Valid reports whether s is usable as an identifier source under the
// policy, i.e. it survives normalization as a non-empty string.
func (p Policy) Valid(s string) bool {
	return p.Normalize(s) != ""
}
