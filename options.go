/*
 * options.go, part of mrsimtxt.
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
	"runtime"

	"github.com/rs/zerolog"

	"github.com/rmera/mrsimtxt/source"
)

type options struct {
	workers    int
	sink       EventSink
	logger     zerolog.Logger
	cumulative bool
	source     source.Options
}

func defaultOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
		sink:    NopSink{},
		logger:  zerolog.Nop(),
	}
}

// Option configures Decode and DecodeFile.
type Option func(*options)

// WithWorkers sets how many clusters can be decoded at the same time.
// 1 decodes sequentially. Values below 1 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithEventSink sets where stage timings are reported. nil disables reporting.
func WithEventSink(s EventSink) Option {
	return func(o *options) {
		if s == nil {
			s = NopSink{}
		}
		o.sink = s
	}
}

// WithLogger sets the logger for debug-level progress messages.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCumulativeCoordinates makes the decoder read each quantized value
// after the first one of a cluster as a delta on the previous frame's value.
// The default, false, reads every value as an absolute position. Only
// enable this for files known to come from a delta-encoding writer.
func WithCumulativeCoordinates(cumulative bool) Option {
	return func(o *options) {
		o.cumulative = cumulative
	}
}

// WithSource sets how DecodeFile opens its input (S3 credentials, mmap).
func WithSource(so source.Options) Option {
	return func(o *options) {
		o.source = so
	}
}
