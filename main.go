package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/lexn82/scrooge/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	generateFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to scrooge.json",
			Destination: &ctrl.Flags.Config,
		},
		&cli.StringFlag{
			Name:        "schema",
			Usage:       "path to the parsed schema document (JSON)",
			Destination: &ctrl.Flags.Schema,
		},
		&cli.StringFlag{
			Name:        "language",
			Usage:       "target language",
			Destination: &ctrl.Flags.Language,
		},
		&cli.StringFlag{
			Name:        "namespace",
			Usage:       "override the document's target namespace",
			Destination: &ctrl.Flags.Namespace,
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "output directory for generated files",
			Destination: &ctrl.Flags.Output,
		},
	}

	app := &cli.Command{
		Name:    "scrooge",
		Usage:   "Schema compiler backend: generate source code from parsed interface-definition documents.",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create a scrooge.json in the current directory",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx)
				},
			},
			{
				Name:  "generate",
				Usage: "Generate target-language source from a schema document",
				Flags: generateFlags,
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx)
				},
			},
			{
				Name:  "watch",
				Usage: "Regenerate whenever the schema document changes",
				Flags: generateFlags,
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx)
				},
			},
			{
				Name:  "languages",
				Usage: "List supported target languages",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Languages(ctx)
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
