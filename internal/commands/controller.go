// Package commands contains the CLI commands for the application
package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lexn82/scrooge/internal/codegen"
	"github.com/lexn82/scrooge/internal/config"
)

// Flags holds command-line overrides; empty values defer to the
// scrooge.json configuration.
type Flags struct {
	Config    string
	Schema    string
	Language  string
	Namespace string
	Output    string
}

// Controller wires flags, configuration, and the generator registry
// behind the CLI commands.
type Controller struct {
	Flags    *Flags
	Registry *codegen.Registry
}

func (c *Controller) registry() *codegen.Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return codegen.DefaultRegistry
}

// plan is the resolved generation request: configuration overlaid
// with command-line flags.
type plan struct {
	Schema    string
	Language  string
	Namespace string
	Output    string
	Watch     []string
	Exclude   []string
}

func (c *Controller) resolvePlan() (*plan, error) {
	cfg := &config.Config{}
	switch {
	case c.Flags.Config != "":
		loaded, err := config.LoadConfigFromPath(c.Flags.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case c.Flags.Schema == "":
		loaded, _, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("no schema document given and %w", err)
		}
		cfg = loaded
	}

	p := &plan{
		Schema:    cfg.Schema,
		Language:  cfg.Language,
		Namespace: cfg.Namespace,
		Output:    cfg.Output,
		Watch:     cfg.Dev.Watch,
		Exclude:   cfg.Dev.Exclude,
	}
	if c.Flags.Schema != "" {
		p.Schema = c.Flags.Schema
	}
	if c.Flags.Language != "" {
		p.Language = c.Flags.Language
	}
	if c.Flags.Namespace != "" {
		p.Namespace = c.Flags.Namespace
	}
	if c.Flags.Output != "" {
		p.Output = c.Flags.Output
	}

	if p.Schema == "" {
		return nil, fmt.Errorf("no schema document given (use --schema or scrooge.json)")
	}
	if p.Language == "" {
		p.Language = "scala"
	}
	if p.Output == "" {
		p.Output = "./generated"
	}
	// Watch mode needs patterns even when no config was loaded,
	// otherwise the watcher filters out every event.
	if len(p.Watch) == 0 {
		p.Watch = []string{"*.json", "**/*.json"}
	}
	if len(p.Exclude) == 0 {
		p.Exclude = []string{"generated/", ".git/", "scrooge.json"}
	}
	return p, nil
}

// outputFile derives the generated file path from the schema document
// name and the generator's file extension.
func (p *plan) outputFile(ext string) string {
	base := filepath.Base(p.Schema)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(p.Output, base+ext)
}
