/*
 * plot.go, part of mrsimtxt.
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
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/rmera/mrsimtxt/chemplot"
	"github.com/rmera/mrsimtxt/chemstat"
)

func (a *app) plotCmd() *cobra.Command {
	var atoms []int
	var axis, out, title string
	cmd := &cobra.Command{
		Use:   "plot <path>",
		Short: "Plot atom coordinates, or the RMSD, against time",
		Long: `plot draws one coordinate of the given atoms against time. With
--axis rmsd, the RMSD of each frame relative to the first one is drawn
instead, and --atoms is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.decode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if title == "" {
				title = args[0]
			}
			var p *plot.Plot
			if strings.EqualFold(axis, "rmsd") {
				ref, err := doc.Coords(0, nil)
				if err != nil {
					return err
				}
				rmsd, err := chemstat.RMSDSeries(doc.NewTraj(), ref)
				if err != nil {
					return err
				}
				p, err = chemplot.Series(doc.Header, rmsd, title, "RMSD (approximate pm)")
				if err != nil {
					return err
				}
			} else {
				k, err := chemplot.ParseAxis(axis)
				if err != nil {
					return err
				}
				if p, err = chemplot.AtomTrace(doc, atoms, k, title); err != nil {
					return err
				}
			}
			if err := chemplot.Save(p, out, a.cfg.Plot.WidthCm, a.cfg.Plot.HeightCm); err != nil {
				return fmt.Errorf("saving plot: %w", err)
			}
			a.log.Info().Str("file", out).Msg("plot saved")
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&atoms, "atoms", []int{0}, "atoms to plot")
	cmd.Flags().StringVar(&axis, "axis", "x", "x, y, z or rmsd")
	cmd.Flags().StringVar(&out, "out", "trajectory.png", "output file; the extension sets the format")
	cmd.Flags().StringVar(&title, "title", "", "plot title (default: the input path)")
	return cmd
}
