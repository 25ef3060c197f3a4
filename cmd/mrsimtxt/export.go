/*
 * export.go, part of mrsimtxt.
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
	"github.com/spf13/cobra"

	"github.com/rmera/mrsimtxt/chemjson"
)

func (a *app) exportCmd() *cobra.Command {
	var every int
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write a trajectory to stdout as a stream of JSON values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.decode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jerr := chemjson.Send(doc, every, a.stdout); jerr != nil {
				return jerr
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&every, "every", 1, "only export every n-th frame")
	return cmd
}
