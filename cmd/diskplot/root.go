package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-disk/disk/diskplot"
	"github.com/cwbudde/algo-disk/disk/kerr"
)

type options struct {
	plot     string
	outDir   string
	logLevel string
	list     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "diskplot",
		Short: "Plot relativistic corrections to thin accretion disks",
		Long: `Plot Page & Thorne (1973) corrections to blackbody accretion disk
flux profiles against the Newtonian approximation.

Figures:
  rr         R_R factor for a*=0 and a*=0.99 vs Newtonian
  blackbody  Planck spectra
  teff       effective temperature profiles

Examples:
  diskplot
  diskplot --plot rr --out figures
  diskplot --list`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.plot, "plot", "", "render only the named figure (default: all)")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "output directory for rendered images")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list available figures and exit")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func run(w io.Writer, opts *options) error {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}

	logger := log.Logger.Level(level)

	if opts.list {
		for _, name := range diskplot.Names() {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}

		return nil
	}

	names := diskplot.Names()
	if opts.plot != "" {
		names = []string{opts.plot}
	}

	figs := make([]*diskplot.Figure, len(names))
	for i, name := range names {
		fig, err := diskplot.Build(name)
		if err != nil {
			return err
		}

		figs[i] = fig
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	logger.Debug().
		Float64("r_ms_a0", kerr.MarginallyStable(0)).
		Float64("r_ms_a099", kerr.MarginallyStable(0.99)).
		Msg("inner disk edges")

	for i, fig := range figs {
		name := names[i]
		path := filepath.Join(opts.outDir, name+".png")
		if err := fig.Save(path); err != nil {
			return err
		}

		logger.Info().
			Str("plot", name).
			Str("path", path).
			Strs("curves", fig.Labels()).
			Msg("wrote figure")
	}

	return nil
}
