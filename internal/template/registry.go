package template

import (
	"fmt"
)

// Loader supplies raw fragment source by name. The engine never reads
// from disk itself; callers bind whatever source they have (embedded
// files, in-memory maps in tests).
type Loader interface {
	Fragment(name string) (string, error)
}

// MapLoader is an in-memory Loader, mainly for tests.
type MapLoader map[string]string

// Fragment returns the named fragment source.
func (m MapLoader) Fragment(name string) (string, error) {
	src, ok := m[name]
	if !ok {
		return "", fmt.Errorf("unknown fragment %q", name)
	}
	return src, nil
}

// Registry holds the compiled fragments of one generation session and
// resolves {{>name}} inclusions between them. It is built explicitly
// via Compile and immutable afterwards.
type Registry struct {
	fragments map[string]*Template
}

// Compile loads and parses each named fragment from the loader.
func Compile(loader Loader, names ...string) (*Registry, error) {
	r := &Registry{fragments: make(map[string]*Template, len(names))}
	for _, name := range names {
		src, err := loader.Fragment(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load fragment %q: %w", name, err)
		}
		tmpl, err := Parse(name, src)
		if err != nil {
			return nil, err
		}
		r.fragments[name] = tmpl
	}
	return r, nil
}

// Render renders the named fragment against the dictionary, resolving
// partials against the registry's other fragments.
func (r *Registry) Render(name string, dict Dict) (string, error) {
	tmpl, err := r.partial(name)
	if err != nil {
		return "", err
	}
	return tmpl.Render(dict, r)
}

func (r *Registry) partial(name string) (*Template, error) {
	tmpl, ok := r.fragments[name]
	if !ok {
		return nil, fmt.Errorf("unknown fragment %q", name)
	}
	return tmpl, nil
}
