/*
 * decode.go, part of mrsimtxt.
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

package mrsim

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rmera/mrsimtxt/source"
)

// DecodeFile reads and decodes the mrsim-txt trajectory at name, which can be
// a local path, possibly compressed, or an s3://bucket/key URL (see package
// source). Any error aborts the decoding, and no partial Document is returned.
func DecodeFile(ctx context.Context, name string, opts ...Option) (*Document, error) {
	o := defaultOptions()
	for _, f := range opts {
		f(&o)
	}
	sw := newStopwatch(o.sink)
	blob, err := source.Load(ctx, name, o.source)
	if err != nil {
		err = &FileAccessError{Path: name, Err: err}
		return nil, errFileName(errDecorate(err, "DecodeFile"), name)
	}
	defer blob.Close()
	sw.lap(StageLoad)
	o.logger.Debug().Str("file", name).Int("bytes", len(blob.Bytes())).Msg("loaded trajectory")
	doc, err := decode(ctx, blob.Bytes(), o, sw)
	if err != nil {
		return nil, errFileName(errDecorate(err, "DecodeFile"), name)
	}
	return doc, nil
}

// Decode decodes an mrsim-txt trajectory held in text. text is not retained
// by the returned Document.
func Decode(ctx context.Context, text []byte, opts ...Option) (*Document, error) {
	o := defaultOptions()
	for _, f := range opts {
		f(&o)
	}
	return decode(ctx, text, o, newStopwatch(o.sink))
}

func decode(ctx context.Context, text []byte, o options, sw *stopwatch) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines := SplitLines(text)
	sw.lap(StagePreprocess)

	H, err := ParseHeader(lines)
	if err != nil {
		return nil, errDecorate(err, "ParseHeader")
	}
	ranges, err := ParseManifest(lines, HeaderLines)
	if err != nil {
		return nil, errDecorate(err, "ParseManifest")
	}
	sw.lap(StageHeader)
	o.logger.Debug().Uint("frames", H.FrameCount).Uint("clusterSize", H.ClusterSize).Int("clusters", len(ranges)).Msg("parsed header")

	clusters, err := decodeClusters(ctx, lines, H, ranges, o)
	if err != nil {
		return nil, err
	}
	frames, err := Assemble(H, ranges, clusters)
	if err != nil {
		return nil, errDecorate(err, "Assemble")
	}
	sw.lap(StageClusters)
	sw.total()
	return &Document{Header: H, Frames: frames}, nil
}

//decodeClusters decodes every cluster with a pool of at most o.workers
//goroutines. Workers take the next cluster from a shared counter and store
//its frames in the slot for that cluster, so the result doesn't depend on
//scheduling. The first error cancels the remaining work.
func decodeClusters(ctx context.Context, lines []string, H Header, ranges []ClusterRange, o options) ([][]Frame, error) {
	out := make([][]Frame, len(ranges))
	if len(ranges) == 0 {
		return out, nil
	}
	workers := max(1, min(o.workers, len(ranges)))
	o.logger.Debug().Int("workers", workers).Msg("decoding clusters")
	d := newClusterDecoder(H, o.cumulative)
	clusterSink, _ := o.sink.(ClusterSink)
	g, gctx := errgroup.WithContext(ctx)
	var next atomic.Int64
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				i := int(next.Add(1) - 1)
				if i >= len(ranges) {
					return nil
				}
				r := ranges[i]
				frames, err := d.decode(gctx, lines, r)
				if err != nil {
					return errDecorate(err, fmt.Sprintf("DecodeCluster %d", r.ID))
				}
				out[i] = frames
				if clusterSink != nil {
					clusterSink.ClusterDecoded(r.ID, len(frames))
				}
				o.logger.Debug().Uint("cluster", r.ID).Int("frames", len(frames)).Msg("decoded cluster")
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
