package commands

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/lexn82/scrooge/internal/dev"
)

// Watch regenerates output whenever the schema document changes. It
// runs one generation pass up front so the output exists before the
// first edit.
func (c *Controller) Watch(ctx context.Context) error {
	p, err := c.resolvePlan()
	if err != nil {
		return err
	}

	if err := c.generate(p); err != nil {
		// Keep watching; the next edit may fix the document.
		log.Error().Err(err).Msg("initial generation failed")
	}

	watcher, err := dev.NewFileWatcher(p.Watch, p.Exclude, func(path string, op fsnotify.Op) {
		if op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
			return
		}
		log.Info().Str("path", path).Str("op", op.String()).Msg("schema changed")
		if err := c.generate(p); err != nil {
			log.Error().Err(err).Msg("generation failed")
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(p.Schema)
	if err := watcher.AddDirectory(dir); err != nil {
		return err
	}

	log.Info().Str("dir", dir).Msg("watching for schema changes")
	return watcher.Start(ctx)
}
