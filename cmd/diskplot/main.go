// Command diskplot renders relativistic thin accretion disk figures.
//
// Usage:
//
//	diskplot [--plot name] [--out dir] [--list] [--log-level level]
//
// Without --plot it renders every known figure. Each figure is written as
// <name>.png into the output directory.
//
// Examples:
//
//	diskplot
//	diskplot --plot rr --out figures
//	diskplot --list
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("diskplot failed")
		os.Exit(1)
	}
}
