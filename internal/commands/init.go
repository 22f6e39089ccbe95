package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/lexn82/scrooge/internal/config"
)

// Init interactively scaffolds a scrooge.json in the current
// directory.
func (c *Controller) Init(ctx context.Context) error {
	path := filepath.Join(".", "scrooge.json")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.Config{}

	languages := c.registry().Languages()
	options := make([]huh.Option[string], len(languages))
	for i, lang := range languages {
		options[i] = huh.NewOption(lang, lang)
	}

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("e.g., user-service-idl").
				Value(&cfg.Name).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("project name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Target language").
				Options(options...).
				Value(&cfg.Language),
			huh.NewInput().
				Title("Schema document").
				Placeholder("./schema.json").
				Value(&cfg.Schema),
			huh.NewInput().
				Title("Namespace override (optional)").
				Placeholder("e.g., com.example.thrift").
				Value(&cfg.Namespace),
			huh.NewInput().
				Title("Output directory").
				Placeholder("./generated").
				Value(&cfg.Output),
		),
	).Run(); err != nil {
		return fmt.Errorf("init cancelled: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
