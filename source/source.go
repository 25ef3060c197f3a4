/*
 * source.go, part of mrsimtxt.
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

/*
Package source loads the bytes of a trajectory file into memory.

Plain local files are memory-mapped where the platform allows it. Files
whose name ends in .zst, .zstd, .lz4, .gz, .lzw or .deflate are decompressed
while being read. Names of the form s3://bucket/key are fetched from an S3
compatible object store, and decompressed by the same rules.
*/
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// S3Config holds how to reach the object store used for s3:// names.
type S3Config struct {
	Endpoint  string //host[:port], s3.amazonaws.com if empty
	AccessKey string //if empty, the AWS_* environment variables are used
	SecretKey string
	Region    string
	Secure    bool
}

// Options controls how Load gets the data.
type Options struct {
	S3     S3Config
	NoMmap bool //read plain local files into the heap instead of mapping them
}

// Blob is the full content of a loaded file. Bytes must not be used after
// Close.
type Blob struct {
	data    []byte
	release func() error
}

// Bytes returns the content. It must not be modified.
func (B *Blob) Bytes() []byte {
	return B.data
}

// Close releases the memory of the blob, if needed. It is safe to call
// more than once.
func (B *Blob) Close() error {
	B.data = nil
	if B.release == nil {
		return nil
	}
	r := B.release
	B.release = nil
	return r()
}

// Load returns the whole, decompressed content of the file called name.
func Load(ctx context.Context, name string, opts Options) (*Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.HasPrefix(name, s3Scheme) {
		return loadS3(ctx, name, opts.S3)
	}
	dec := codecFor(name)
	if dec == nil && !opts.NoMmap {
		return mapFile(name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := readAll(f, dec)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return &Blob{data: data}, nil
}

//readAll reads r to the end, through dec if it is not nil.
func readAll(r io.Reader, dec codec) ([]byte, error) {
	if dec == nil {
		return io.ReadAll(r)
	}
	rc, err := dec(r)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(rc)
	if cerr := rc.Close(); err == nil {
		err = cerr
	}
	return data, err
}
