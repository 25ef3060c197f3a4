/*
 * codec.go, part of mrsimtxt.
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
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

//lzw streams are written MSB first with 8-bit literals.
const lzwLitwidth int = 8

//codec wraps a compressed stream in a reader for the decompressed data.
type codec func(io.Reader) (io.ReadCloser, error)

//zstd.Decoder has a Close method without the error return.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

var codecs = map[string]codec{
	".zst":  zstdReader,
	".zstd": zstdReader,
	".lz4": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(lz4.NewReader(r)), nil
	},
	".gz": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	".lzw": func(r io.Reader) (io.ReadCloser, error) {
		return lzw.NewReader(r, lzw.MSB, lzwLitwidth), nil
	},
	".deflate": func(r io.Reader) (io.ReadCloser, error) {
		return flate.NewReader(r), nil
	},
}

func zstdReader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zstdReadCloser{d}, nil
}

//codecFor returns the codec for the extension of name, or nil if the name
//doesn't have a compressed-file extension.
func codecFor(name string) codec {
	return codecs[strings.ToLower(path.Ext(name))]
}

// Compressed returns true if Load would decompress a file with the given name.
func Compressed(name string) bool {
	return codecFor(name) != nil
}
