/*
 * inspect.go, part of mrsimtxt.
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
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmera/mrsimtxt/internal/inspect"
)

func (a *app) inspectCmd() *cobra.Command {
	var frames, atoms int
	var seed int64
	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Print the coordinates of random atoms in random frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.decode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			s := a.cfg.Sample
			if cmd.Flags().Changed("frames") {
				s.Frames = frames
			}
			if cmd.Flags().Changed("atoms") {
				s.Atoms = atoms
			}
			if cmd.Flags().Changed("seed") {
				s.Seed = seed
			}
			if s.Seed == 0 {
				s.Seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewPCG(uint64(s.Seed), 0))
			return inspect.Write(a.stdout, doc, inspect.Sample(doc, s.Frames, s.Atoms, rng))
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 10, "frames to print")
	cmd.Flags().IntVar(&atoms, "atoms", 4, "atoms to print in each frame")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0: from the clock)")
	return cmd
}
