/*
 * stats.go, part of mrsimtxt.
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
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rmera/mrsimtxt/chemstat"
)

func (a *app) statsCmd() *cobra.Command {
	var bins int
	cmd := &cobra.Command{
		Use:   "stats <path>",
		Short: "Print summary statistics of a trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.decode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			S, err := chemstat.Summarize(doc)
			if err != nil {
				return err
			}
			weighting := "unweighted"
			if S.MassWeighted {
				weighting = "mass-weighted"
			}
			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "frames:\t%d\n", S.Frames)
			fmt.Fprintf(w, "atoms:\t%d\n", S.Atoms)
			fmt.Fprintf(w, "duration:\t%.3f ps\n", S.DurationPs)
			fmt.Fprintf(w, "mean x y z:\t%.3f %.3f %.3f\n", S.Mean[0], S.Mean[1], S.Mean[2])
			fmt.Fprintf(w, "stddev x y z:\t%.3f %.3f %.3f\n", S.StdDev[0], S.StdDev[1], S.StdDev[2])
			fmt.Fprintf(w, "max RMSD:\t%.3f (frame %d)\n", S.MaxRMSD, S.MaxRMSDFrame)
			fmt.Fprintf(w, "final RMSD:\t%.3f\n", S.FinalRMSD)
			fmt.Fprintf(w, "centroid drift:\t%.3f (%s)\n", S.CentroidDrift, weighting)
			fmt.Fprintf(w, "RMSD decorrelation lag:\t%d frames\n", S.RMSDDecorrelationLag)
			if err := w.Flush(); err != nil {
				return err
			}
			if bins < 1 {
				return nil
			}
			H, err := chemstat.DisplacementHistogram(doc, bins)
			if err != nil {
				return err
			}
			H.Normalize()
			_, err = fmt.Fprintf(a.stdout, "displacement distribution:\n%s\n", H)
			return err
		},
	}
	cmd.Flags().IntVar(&bins, "bins", 0, "also print the distribution of atom displacements in this many bins")
	return cmd
}
