package scala

import (
	"embed"
	"fmt"
	"path"

	"github.com/lexn82/scrooge/internal/template"
)

//go:embed templates/*.mustache
var templateFS embed.FS

// fragmentNames lists every fragment the generator binds. Compile
// fails fast on a missing or malformed fragment, before any document
// is rendered.
var fragmentNames = []string{
	"header",
	"consts",
	"const",
	"enum",
	"struct",
	"service",
	"function",
}

// fsLoader serves fragment source from an embedded directory prefix.
type fsLoader struct {
	prefix string
}

func (l fsLoader) Fragment(name string) (string, error) {
	data, err := templateFS.ReadFile(path.Join(l.prefix, name+".mustache"))
	if err != nil {
		return "", fmt.Errorf("failed to read fragment %q: %w", name, err)
	}
	return string(data), nil
}

// newFragmentRegistry compiles the default fragment set for one
// generator instance.
func newFragmentRegistry() (*template.Registry, error) {
	return template.Compile(fsLoader{prefix: "templates"}, fragmentNames...)
}
