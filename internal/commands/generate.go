package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/lexn82/scrooge/internal/schema"
)

// Generate runs one generation pass: load the schema document, run
// the configured language generator, and write the output file.
func (c *Controller) Generate(ctx context.Context) error {
	p, err := c.resolvePlan()
	if err != nil {
		return err
	}
	return c.generate(p)
}

func (c *Controller) generate(p *plan) error {
	doc, err := schema.LoadFile(p.Schema)
	if err != nil {
		return err
	}

	gen, err := c.registry().Get(p.Language, p.Namespace)
	if err != nil {
		return err
	}

	code, err := gen.Generate(doc)
	if err != nil {
		return fmt.Errorf("failed to generate %s code: %w", p.Language, err)
	}

	outPath := p.outputFile(gen.FileExtension())
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, code, 0o644); err != nil {
		return fmt.Errorf("failed to write generated file: %w", err)
	}

	log.Info().
		Str("schema", p.Schema).
		Str("language", p.Language).
		Str("output", outPath).
		Int("bytes", len(code)).
		Msg("generated")
	return nil
}

// Languages prints the registered target languages.
func (c *Controller) Languages(ctx context.Context) error {
	languages := c.registry().Languages()
	sort.Strings(languages)
	for _, lang := range languages {
		fmt.Println(lang)
	}
	return nil
}
