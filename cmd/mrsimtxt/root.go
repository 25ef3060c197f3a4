/*
 * root.go, part of mrsimtxt.
 *
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	mrsim "github.com/rmera/mrsimtxt"
	"github.com/rmera/mrsimtxt/internal/config"
	"github.com/rmera/mrsimtxt/internal/logging"
	"github.com/rmera/mrsimtxt/internal/observability"
	"github.com/rmera/mrsimtxt/source"
)

//app holds the state shared by all the subcommands.
type app struct {
	stdout, stderr io.Writer

	cfgPath     string
	workers     int
	cumulative  bool
	logLevel    string
	metricsFile string

	cfg  config.Config
	log  zerolog.Logger
	prom *observability.PromSink
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "mrsimtxt",
		Short: "Decoder for mrsim-txt molecular trajectories",
		Long: `mrsimtxt decodes trajectories in the mrsim-txt format (plain, compressed
or stored in S3) and prints random samples of their atoms, summary
statistics, or plots of atom coordinates over time.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "TOML configuration file")
	pf.IntVar(&a.workers, "workers", 0, "clusters decoded at the same time (0: one per CPU)")
	pf.BoolVar(&a.cumulative, "cumulative", false, "read quantized values as deltas on the previous frame")
	pf.StringVar(&a.logLevel, "log-level", "", "trace, debug, info, warn, error or disabled")
	pf.StringVar(&a.metricsFile, "metrics-textfile", "", "write Prometheus metrics to this file")

	root.AddCommand(a.inspectCmd(), a.statsCmd(), a.plotCmd(), a.exportCmd())
	return root
}

//setup builds the configuration from defaults, the config file, the
//environment and the flags, in that order.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg = config.Default()
	if a.cfgPath != "" {
		cfg, err := config.Load(a.cfgPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	logging.ApplyEnv(&a.cfg.Log)
	flags := cmd.Flags()
	if flags.Changed("workers") {
		a.cfg.Workers = a.workers
	}
	if flags.Changed("cumulative") {
		a.cfg.CumulativeCoordinates = a.cumulative
	}
	if flags.Changed("log-level") {
		lvl, ok := logging.ParseLevel(a.logLevel)
		if !ok {
			return fmt.Errorf("unknown log level %q", a.logLevel)
		}
		a.cfg.Log.Level = lvl
	}
	if flags.Changed("metrics-textfile") {
		a.cfg.Metrics.Textfile = a.metricsFile
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log = logging.NewWriter(a.stderr, a.cfg.Log)
	a.prom = observability.NewPromSink()
	return nil
}

//decode decodes the trajectory at path with the current configuration,
//logging each stage and updating the metrics.
func (a *app) decode(ctx context.Context, path string) (*mrsim.Document, error) {
	sink := mrsim.MultiSink{observability.LogSink{Logger: a.log}, a.prom}
	doc, err := mrsim.DecodeFile(ctx, path,
		mrsim.WithWorkers(a.cfg.Workers),
		mrsim.WithCumulativeCoordinates(a.cfg.CumulativeCoordinates),
		mrsim.WithLogger(a.log),
		mrsim.WithEventSink(sink),
		mrsim.WithSource(source.Options{S3: a.cfg.S3}),
	)
	if err != nil {
		return nil, err
	}
	a.prom.RecordDocument(doc)
	a.log.Info().Uint("frames", doc.Header.FrameCount).Int("atoms", doc.Len()).Msg("decoded " + path)
	if a.cfg.Metrics.Textfile != "" {
		if err := a.prom.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
