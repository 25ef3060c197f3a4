/*
 * main_test.go, part of mrsimtxt.
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
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mrsim "github.com/rmera/mrsimtxt"
	"github.com/rmera/mrsimtxt/chemjson"
)

//trajectory returns an mrsim-txt text with frames frames of 3 atoms, in
//clusters of 4 frames.
func trajectory(frames int) string {
	var b strings.Builder
	b.WriteString("# test trajectory\nspecification:\n  - https://github.com/philipturner/molecular-renderer\n\nheader:\n")
	b.WriteString("  frame time in femtoseconds: 20.0\n  spatial resolution in approximate picometers: 1024.0\n")
	fmt.Fprintf(&b, "  uses checkpoints: false\n  frame count: %d\n  frame cluster size: 4\n\nmetadata:\n\n", frames)
	for c := 0; c*4 < frames; c++ {
		start, end := c*4, min(c*4+4, frames)-1
		fmt.Fprintf(&b, "frame cluster %d:\n  frame start: %d\n  frame end: %d\n  metadata:\n  atoms:\n", c, start, end)
		for k, axis := range []string{"x", "y", "z"} {
			fmt.Fprintf(&b, "    %s coordinates:\n", axis)
			for a := 0; a < 3; a++ {
				fmt.Fprintf(&b, "      - %d:", a)
				for f := start; f <= end; f++ {
					fmt.Fprintf(&b, " %d", f*(k+1)+a)
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("    elements: 6 1 8\n    flags: 0 0 1\n\n")
	}
	return b.String()
}

func writeTraj(t *testing.T, frames int) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "traj.mrsim-txt")
	require.NoError(t, os.WriteFile(p, []byte(trajectory(frames)), 0o644))
	return p
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestTrajectoryFixture(t *testing.T) {
	doc, err := mrsim.Decode(context.Background(), []byte(trajectory(10)))
	require.NoError(t, err)
	require.Len(t, doc.Frames, 10)
	//resolution 1024 makes the multiplier 1.
	assert.Equal(t, mrsim.AtomRecord{X: 11, Y: 20, Z: 29, Element: 8, Flags: 1}, doc.Frames[9][2])
}

func TestInspect(t *testing.T) {
	p := writeTraj(t, 10)
	metrics := filepath.Join(t.TempDir(), "mrsim.prom")
	out, logs, err := run(t, "inspect", p, "--frames", "3", "--atoms", "10", "--seed", "7", "--workers", "2", "--metrics-textfile", metrics)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Frame "))
	assert.Equal(t, 9, strings.Count(out, " - atom "))
	assert.Contains(t, out, " - atom 2: ")
	for _, msg := range []string{"Loaded file in", "Preprocessed text in", "Parsed header in", "Parsed clusters in", "Total decoding time"} {
		assert.Contains(t, logs, msg)
	}
	again, _, err := run(t, "inspect", p, "--frames", "3", "--atoms", "10", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mrsim_decode_frames_total 10")
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "stats", writeTraj(t, 10), "--log-level", "disabled")
	require.NoError(t, err)
	assert.Contains(t, out, "frames:")
	assert.Contains(t, out, "0.180 ps")
	assert.Contains(t, out, "mass-weighted")
	assert.NotContains(t, out, "displacement")

	//every atom moves the same, so all of them land in the last bin.
	out, _, err = run(t, "stats", writeTraj(t, 10), "--log-level", "disabled", "--bins", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "displacement distribution:")
	assert.Contains(t, out, "Normalized: true, Total: 3, Outside: 0")
	assert.Contains(t, out, "    0.000     1.000")
}

func TestExport(t *testing.T) {
	out, _, err := run(t, "export", writeTraj(t, 10), "--every", "3", "--log-level", "disabled")
	require.NoError(t, err)
	info, atoms, frames, err := chemjson.Receive(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 10, info.TotalFrames)
	require.Len(t, atoms, 3)
	assert.Equal(t, "O", atoms[2].Symbol)
	require.Len(t, frames, 4)
	assert.Equal(t, 9, frames[3].Frame)
	assert.Equal(t, []float64{11, 20, 29}, frames[3].Coords[6:])
}

func TestPlot(t *testing.T) {
	p := writeTraj(t, 10)
	for _, axis := range []string{"y", "rmsd"} {
		png := filepath.Join(t.TempDir(), axis+".png")
		_, _, err := run(t, "plot", p, "--atoms", "0,2", "--axis", axis, "--out", png)
		require.NoError(t, err)
		_, err = os.Stat(png)
		assert.NoError(t, err)
	}
	_, _, err := run(t, "plot", p, "--axis", "w", "--out", filepath.Join(t.TempDir(), "w.png"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "mrsimtxt.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[sample]\nframes = 1\natoms = 1\nseed = 3\n[log]\nlevel = \"error\"\n"), 0o644))
	out, logs, err := run(t, "--config", cfg, "inspect", writeTraj(t, 6))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Frame "))
	assert.Equal(t, 1, strings.Count(out, " - atom "))
	assert.Empty(t, logs)
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "inspect", filepath.Join(t.TempDir(), "missing.mrsim-txt"))
	var access *mrsim.FileAccessError
	assert.ErrorAs(t, err, &access)

	bad := filepath.Join(t.TempDir(), "bad.mrsim-txt")
	require.NoError(t, os.WriteFile(bad, []byte(strings.Replace(trajectory(4), "header:", "Header:", 1)), 0o644))
	_, _, err = run(t, "stats", bad)
	var format *mrsim.FormatError
	assert.ErrorAs(t, err, &format)

	_, _, err = run(t, "inspect")
	assert.Error(t, err)
	_, _, err = run(t, "inspect", bad, "--log-level", "loud")
	assert.Error(t, err)
	_, _, err = run(t, "inspect", bad, "--workers", "-2")
	assert.Error(t, err)
}
