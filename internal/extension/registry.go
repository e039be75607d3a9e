// Package extension implements the VALIDATE_EXTENSION_NODE task
// (spec.md §4.9): validating an extension-typed node's properties
// against a caller-supplied JSON-Schema, after compacting it through
// the extension's own JSON-LD context.
package extension

import "github.com/mgylling/badgecheck/internal/report"

// Definition is one extension type known to the engine: its JSON-LD
// context (used to compact a node before validation) and the
// JSON-Schema its compacted form must satisfy.
type Definition struct {
	Type    string
	Context map[string]any
	Schema  map[string]any
}

// Registry is the engine's input set of known extension types,
// matching the source's ALL_KNOWN_EXTENSIONS module-level dict — here
// threaded through explicitly instead of living as global state.
type Registry struct {
	definitions map[string]Definition
}

// NewRegistry builds a Registry from a list of Definitions.
func NewRegistry(defs []Definition) Registry {
	m := make(map[string]Definition, len(defs))
	for _, d := range defs {
		m[d.Type] = d
	}
	return Registry{definitions: m}
}

// Types returns the extension type IRIs the registry knows about.
func (r Registry) Types() []string {
	types := make([]string, 0, len(r.definitions))
	for t := range r.definitions {
		types = append(types, t)
	}
	return types
}

// Lookup returns the Definition for an extension type, if known.
func (r Registry) Lookup(extType string) (Definition, bool) {
	d, ok := r.definitions[extType]
	return d, ok
}

// matchingTypes returns the subset of nodeTypes the registry has a
// Definition for, preserving nodeTypes' order.
func (r Registry) matchingTypes(nodeTypes []string) []string {
	var out []string
	for _, t := range nodeTypes {
		if _, ok := r.definitions[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// abbreviate delegates to report.Abbreviate so extension messages
// truncate long values the same way every other package's messages do.
func abbreviate(v any) string {
	return report.Abbreviate(v)
}
