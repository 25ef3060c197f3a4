/*
 * logging_test.go, part of mrsimtxt.
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

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	for raw, want := range map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		" DEBUG ":  zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"disabled": zerolog.Disabled,
	} {
		lvl, ok := ParseLevel(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, lvl, raw)
	}
	for _, raw := range []string{"", "loud"} {
		_, ok := ParseLevel(raw)
		assert.False(t, ok, raw)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "not a bool")
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	assert.Equal(t, Config{Level: zerolog.DebugLevel, Timestamp: false, NoColor: false}, cfg)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, Config{Level: zerolog.InfoLevel, NoColor: true})
	l.Debug().Msg("hidden")
	l.Info().Str("stage", "header").Msg("Parsed header")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Parsed header")
	assert.Contains(t, out, "stage=header")
}
