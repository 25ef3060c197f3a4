/*
 * config.go, part of mrsimtxt.
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

// Package config loads the TOML configuration of the mrsimtxt command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/rmera/mrsimtxt/internal/logging"
	"github.com/rmera/mrsimtxt/source"
)

// Sample controls which frames and atoms the inspect command prints.
type Sample struct {
	Frames int
	Atoms  int
	Seed   int64 //0 picks a seed from the clock
}

// Metrics controls the export of decoding metrics.
type Metrics struct {
	Textfile string //if not empty, metrics are written there in the Prometheus text format
}

// Plot sets the size of the plots, in centimeters.
type Plot struct {
	WidthCm  float64
	HeightCm float64
}

// Config is the full configuration of the command.
type Config struct {
	Workers               int //0 means one per CPU
	CumulativeCoordinates bool
	Log                   logging.Config
	Sample                Sample
	S3                    source.S3Config
	Metrics               Metrics
	Plot                  Plot
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    logging.DefaultConfig(),
		Sample: Sample{Frames: 10, Atoms: 4},
		Plot:   Plot{WidthCm: 16, HeightCm: 10},
	}
}

type fileConfig struct {
	Workers               int  `toml:"workers"`
	CumulativeCoordinates bool `toml:"cumulative_coordinates"`
	Log                   struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
	} `toml:"log"`
	Sample struct {
		Frames int   `toml:"frames"`
		Atoms  int   `toml:"atoms"`
		Seed   int64 `toml:"seed"`
	} `toml:"sample"`
	S3 struct {
		Endpoint  string `toml:"endpoint"`
		AccessKey string `toml:"access_key"`
		SecretKey string `toml:"secret_key"`
		Region    string `toml:"region"`
		Secure    bool   `toml:"secure"`
	} `toml:"s3"`
	Metrics struct {
		Textfile string `toml:"textfile"`
	} `toml:"metrics"`
	Plot struct {
		WidthCm  float64 `toml:"width_cm"`
		HeightCm float64 `toml:"height_cm"`
	} `toml:"plot"`
}

// Load reads the file at path over the defaults. Only the keys present in
// the file change the defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("cumulative_coordinates") {
		cfg.CumulativeCoordinates = raw.CumulativeCoordinates
	}

	if meta.IsDefined("log", "level") {
		lvl, ok := logging.ParseLevel(raw.Log.Level)
		if !ok {
			return Config{}, fmt.Errorf("parse log.level: unknown level %q", raw.Log.Level)
		}
		cfg.Log.Level = lvl
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if meta.IsDefined("sample", "frames") {
		cfg.Sample.Frames = raw.Sample.Frames
	}
	if meta.IsDefined("sample", "atoms") {
		cfg.Sample.Atoms = raw.Sample.Atoms
	}
	if meta.IsDefined("sample", "seed") {
		cfg.Sample.Seed = raw.Sample.Seed
	}

	if meta.IsDefined("s3", "endpoint") {
		cfg.S3.Endpoint = strings.TrimSpace(raw.S3.Endpoint)
	}
	if meta.IsDefined("s3", "access_key") {
		cfg.S3.AccessKey = raw.S3.AccessKey
	}
	if meta.IsDefined("s3", "secret_key") {
		cfg.S3.SecretKey = raw.S3.SecretKey
	}
	if meta.IsDefined("s3", "region") {
		cfg.S3.Region = strings.TrimSpace(raw.S3.Region)
	}
	if meta.IsDefined("s3", "secure") {
		cfg.S3.Secure = raw.S3.Secure
	}

	if meta.IsDefined("metrics", "textfile") {
		cfg.Metrics.Textfile = strings.TrimSpace(raw.Metrics.Textfile)
	}

	if meta.IsDefined("plot", "width_cm") {
		cfg.Plot.WidthCm = raw.Plot.WidthCm
	}
	if meta.IsDefined("plot", "height_cm") {
		cfg.Plot.HeightCm = raw.Plot.HeightCm
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid value in C.
func (C Config) Validate() error {
	var errs []error
	if C.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", C.Workers))
	}
	if C.Sample.Frames < 0 || C.Sample.Atoms < 0 {
		errs = append(errs, fmt.Errorf("sample sizes must be >= 0, got %d frames and %d atoms", C.Sample.Frames, C.Sample.Atoms))
	}
	if C.Plot.WidthCm <= 0 || C.Plot.HeightCm <= 0 {
		errs = append(errs, fmt.Errorf("plot size must be positive, got %gx%g cm", C.Plot.WidthCm, C.Plot.HeightCm))
	}
	if C.S3.SecretKey != "" && C.S3.AccessKey == "" {
		errs = append(errs, errors.New("s3.secret_key given without s3.access_key"))
	}
	if C.Log.Level < zerolog.TraceLevel || C.Log.Level > zerolog.Disabled {
		errs = append(errs, fmt.Errorf("invalid log level %d", C.Log.Level))
	}
	return errors.Join(errs...)
}
