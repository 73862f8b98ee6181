// SLCSP - second-lowest-cost Silver plan per ZIP code
//
// Usage:
//
//	slcsp slcsp.csv plans.csv zips.csv > answers.csv
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"slcsp/decision/slcsp"
	"slcsp/pkg/platform"
	"slcsp/report"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	platform.InitLogger(stderr, zerolog.InfoLevel)

	if err := newApp(stdout, stderr).Run(args); err != nil {
		log.Error().Err(err).Msg("slcsp failed")
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:  "slcsp",
		Usage: "Output the second-lowest-cost Silver plan for each ZIP code to stdout in CSV format",
		Description: "Arguments, in order:\n" +
			"   slcsp  File containing ZIP codes to calculate SLCSP for.\n" +
			"   plans  File containing plan information.\n" +
			"   zips   File containing a ZIP code to rate area mapping.",
		ArgsUsage:       "<slcsp> <plans> <zips>",
		Version:         fmt.Sprintf("%s (commit: %s)", version, commit),
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Action:          runCalculate,
	}
}

func runCalculate(c *cli.Context) error {
	cfg, err := platform.ConfigFromArgs(c.Args().Slice())
	if err != nil {
		cli.HelpPrinter(c.App.ErrWriter, cli.AppHelpTemplate, c.App)
		return err
	}

	ctx := log.Logger.WithContext(context.Background())
	result, err := slcsp.Run(ctx, cfg)
	if err != nil {
		return err
	}

	if err := report.NewWriter(c.App.Writer).Write(result.Results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
