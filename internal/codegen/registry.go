package codegen

import (
	"fmt"
)

// Registry manages available code generators
type Registry struct {
	generators map[string]func(namespace string) (Generator, error)
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	r := &Registry{
		generators: make(map[string]func(namespace string) (Generator, error)),
	}
	return r
}

// Register adds a new generator factory to the registry. The factory
// receives the namespace override (empty keeps the document's own).
func (r *Registry) Register(language string, factory func(namespace string) (Generator, error)) {
	r.generators[language] = factory
}

// Get returns a generator for the specified language
func (r *Registry) Get(language, namespace string) (Generator, error) {
	factory, exists := r.generators[language]
	if !exists {
		return nil, fmt.Errorf("unsupported language: %s", language)
	}

	return factory(namespace)
}

// Languages returns a list of supported languages
func (r *Registry) Languages() []string {
	languages := make([]string, 0, len(r.generators))
	for lang := range r.generators {
		languages = append(languages, lang)
	}
	return languages
}
