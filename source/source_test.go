/*
 * source_test.go, part of mrsimtxt.
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


package source

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "specification:\n  - https://github.com/x/y\n\nheader:\n"

func writeFile(Te *testing.T, name string, data []byte) string {
	Te.Helper()
	p := filepath.Join(Te.TempDir(), name)
	require.NoError(Te, os.WriteFile(p, data, 0o644))
	return p
}

func compress(Te *testing.T, ext string, data []byte) []byte {
	Te.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error
	switch ext {
	case ".zst", ".zstd":
		w, err = zstd.NewWriter(&buf)
	case ".lz4":
		w = lz4.NewWriter(&buf)
	case ".gz":
		w = gzip.NewWriter(&buf)
	case ".lzw":
		w = lzw.NewWriter(&buf, lzw.MSB, lzwLitwidth)
	case ".deflate":
		w, err = flate.NewWriter(&buf, flate.DefaultCompression)
	default:
		Te.Fatalf("no compressor for %s", ext)
	}
	require.NoError(Te, err)
	_, err = w.Write(data)
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	return buf.Bytes()
}

func TestLoadPlain(Te *testing.T) {
	ctx := context.Background()
	p := writeFile(Te, "traj.mrsim-txt", []byte(sample))
	for _, nommap := range []bool{false, true} {
		b, err := Load(ctx, p, Options{NoMmap: nommap})
		require.NoError(Te, err)
		assert.Equal(Te, sample, string(b.Bytes()))
		require.NoError(Te, b.Close())
		require.NoError(Te, b.Close())
		assert.Nil(Te, b.Bytes())
	}
}

func TestLoadEmpty(Te *testing.T) {
	p := writeFile(Te, "empty.mrsim-txt", nil)
	b, err := Load(context.Background(), p, Options{})
	require.NoError(Te, err)
	assert.Empty(Te, b.Bytes())
	assert.NoError(Te, b.Close())
}

func TestLoadCompressed(Te *testing.T) {
	for _, ext := range []string{".zst", ".zstd", ".lz4", ".gz", ".lzw", ".deflate"} {
		Te.Run(ext, func(Te *testing.T) {
			assert.True(Te, Compressed("traj"+ext))
			p := writeFile(Te, "traj.mrsim-txt"+ext, compress(Te, ext, []byte(sample)))
			b, err := Load(context.Background(), p, Options{})
			require.NoError(Te, err)
			defer b.Close()
			assert.Equal(Te, sample, string(b.Bytes()))
		})
	}
	assert.False(Te, Compressed("traj.mrsim-txt"))
}

func TestLoadBrokenStream(Te *testing.T) {
	p := writeFile(Te, "traj.gz", []byte(sample))
	_, err := Load(context.Background(), p, Options{})
	assert.Error(Te, err)
}

func TestLoadMissing(Te *testing.T) {
	_, err := Load(context.Background(), filepath.Join(Te.TempDir(), "nope"), Options{})
	assert.ErrorIs(Te, err, os.ErrNotExist)
}

func TestLoadCanceled(Te *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, "whatever", Options{})
	assert.ErrorIs(Te, err, context.Canceled)
}

func TestParseS3URL(Te *testing.T) {
	bucket, key, err := parseS3URL("s3://sims/runs/a.mrsim-txt.zst")
	require.NoError(Te, err)
	assert.Equal(Te, "sims", bucket)
	assert.Equal(Te, "runs/a.mrsim-txt.zst", key)
	for _, bad := range []string{"s3://", "s3://bucket", "s3://bucket/", "s3:///key"} {
		_, _, err := parseS3URL(bad)
		assert.Error(Te, err, bad)
	}
}
