package codegen

import (
	"github.com/lexn82/scrooge/internal/codegen/scala"
)

// DefaultRegistry is the global registry instance with pre-registered generators
var DefaultRegistry = NewRegistry()

func init() {
	// Register Scala generator
	DefaultRegistry.Register("scala", func(namespace string) (Generator, error) {
		return scala.NewGenerator(namespace)
	})
}
