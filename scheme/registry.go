package scheme

import "strings"

// Registry is an open set of known schemes. Lookups never fail: a name the
// registry does not know comes back as an unknown Scheme carrying that
// name, so callers can still report what they saw.
//
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	byName map[string]Scheme
}

// NewRegistry returns a registry seeded with the builtin schemes plus any
// extras. An extra whose name collides with a builtin replaces it. Unknown
// or nameless extras are ignored.
func NewRegistry(extra ...Scheme) *Registry {
	r := &Registry{byName: make(map[string]Scheme, len(builtins)+len(extra))}
	for _, s := range builtins {
		r.byName[s.name] = s
	}
	for _, s := range extra {
		if s.known && s.name != "" {
			r.byName[s.name] = s
		}
	}
	return r
}

// Lookup resolves a scheme name case-insensitively.
func (r *Registry) Lookup(name string) Scheme {
	lower := strings.ToLower(name)
	if s, ok := r.byName[lower]; ok {
		return s
	}
	return Scheme{name: lower}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the shared registry holding only the builtins.
func DefaultRegistry() *Registry { return defaultRegistry }

// Lookup resolves a scheme name against the default registry.
func Lookup(name string) Scheme { return defaultRegistry.Lookup(name) }
