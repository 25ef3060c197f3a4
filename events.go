/*
 * events.go, part of mrsimtxt.
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

import "time"

//Stages reported to an EventSink, in order.
const (
	StageLoad       = "load" //only reported by DecodeFile
	StagePreprocess = "preprocess"
	StageHeader     = "header"
	StageClusters   = "clusters"
	StageTotal      = "total"
)

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Checkpoint(string, time.Duration) {}

// MultiSink sends every event to each of its sinks, in order.
type MultiSink []EventSink

func (M MultiSink) Checkpoint(stage string, elapsed time.Duration) {
	for _, s := range M {
		s.Checkpoint(stage, elapsed)
	}
}

// ClusterDecoded forwards the event to the sinks that implement ClusterSink.
func (M MultiSink) ClusterDecoded(id uint, frames int) {
	for _, s := range M {
		if c, ok := s.(ClusterSink); ok {
			c.ClusterDecoded(id, frames)
		}
	}
}

//stopwatch reports the time since the previous lap to a sink.
type stopwatch struct {
	sink  EventSink
	start time.Time
	last  time.Time
}

func newStopwatch(sink EventSink) *stopwatch {
	now := time.Now()
	return &stopwatch{sink: sink, start: now, last: now}
}

func (s *stopwatch) lap(stage string) {
	now := time.Now()
	s.sink.Checkpoint(stage, now.Sub(s.last))
	s.last = now
}

func (s *stopwatch) total() {
	s.sink.Checkpoint(StageTotal, time.Since(s.start))
}
