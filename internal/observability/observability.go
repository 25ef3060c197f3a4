/*
 * observability.go, part of mrsimtxt.
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

// Package observability reports decoding progress as log lines and
// Prometheus metrics.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	mrsim "github.com/rmera/mrsimtxt"
)

var stageMessages = map[string]string{
	mrsim.StageLoad:       "Loaded file in",
	mrsim.StagePreprocess: "Preprocessed text in",
	mrsim.StageHeader:     "Parsed header in",
	mrsim.StageClusters:   "Parsed clusters in",
	mrsim.StageTotal:      "Total decoding time",
}

// LogSink logs each checkpoint at info level.
type LogSink struct {
	Logger zerolog.Logger
}

// Checkpoint implements mrsim.EventSink.
func (L LogSink) Checkpoint(stage string, elapsed time.Duration) {
	msg, ok := stageMessages[stage]
	if !ok {
		msg = stage
	}
	L.Logger.Info().Str("stage", stage).Msgf("%s %.3f ms", msg, float64(elapsed.Microseconds())/1e3)
}

// PromSink collects decoding metrics in its own registry.
type PromSink struct {
	registry     *prometheus.Registry
	stageSeconds *prometheus.HistogramVec
	documents    prometheus.Counter
	frames       prometheus.Counter
	clusters     prometheus.Counter
	atoms        prometheus.Gauge
}

// NewPromSink creates the metrics and registers them in a new registry.
func NewPromSink() *PromSink {
	P := &PromSink{
		registry: prometheus.NewRegistry(),
		stageSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "mrsim",
				Subsystem: "decode",
				Name:      "stage_seconds",
				Help:      "Duration of each decoding stage in seconds.",
				Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 10),
			},
			[]string{"stage"},
		),
		documents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mrsim",
			Subsystem: "decode",
			Name:      "documents_total",
			Help:      "Trajectories decoded successfully.",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mrsim",
			Subsystem: "decode",
			Name:      "frames_total",
			Help:      "Frames decoded.",
		}),
		clusters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mrsim",
			Subsystem: "decode",
			Name:      "clusters_total",
			Help:      "Frame clusters decoded.",
		}),
		atoms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mrsim",
			Subsystem: "decode",
			Name:      "atoms",
			Help:      "Atoms per frame in the last decoded trajectory.",
		}),
	}
	P.registry.MustRegister(P.stageSeconds, P.documents, P.frames, P.clusters, P.atoms)
	return P
}

// Checkpoint implements mrsim.EventSink.
func (P *PromSink) Checkpoint(stage string, elapsed time.Duration) {
	P.stageSeconds.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// ClusterDecoded implements mrsim.ClusterSink.
func (P *PromSink) ClusterDecoded(uint, int) {
	P.clusters.Inc()
}

// RecordDocument counts a successfully decoded document.
func (P *PromSink) RecordDocument(doc *mrsim.Document) {
	P.documents.Inc()
	P.frames.Add(float64(len(doc.Frames)))
	P.atoms.Set(float64(doc.Len()))
}

// Registry returns the registry holding the metrics.
func (P *PromSink) Registry() *prometheus.Registry {
	return P.registry
}

// WriteTextfile writes the metrics to path in the Prometheus text format,
// as read by the node exporter's textfile collector.
func (P *PromSink) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, P.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
