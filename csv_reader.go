// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

const (
	countryFieldCount = 6
	nameField         = 0
	happinessField    = 5
)

// LoadStats summarizes one ingestion run.
type LoadStats struct {
	Rows       int // data rows read, header excluded
	Inserted   int
	Duplicates int
	Skipped    int // wrong field count, empty name or unparsable score
}

func (s LoadStats) String() string {
	return fmt.Sprintf("%d rows, %d inserted, %d duplicates, %d skipped", s.Rows, s.Inserted, s.Duplicates, s.Skipped)
}

// parseCountryRow extracts the name and happiness score from a six-column row.
func parseCountryRow(fields []string) (string, float64, error) {
	if len(fields) != countryFieldCount {
		return "", 0, fmt.Errorf("expected %d fields, got %d", countryFieldCount, len(fields))
	}
	name := strings.TrimSpace(fields[nameField])
	if name == "" {
		return "", 0, errors.New("empty country name")
	}
	happiness, err := strconv.ParseFloat(strings.TrimSpace(fields[happinessField]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad happiness value %q", fields[happinessField])
	}
	return name, happiness, nil
}

// readCountries streams rows from r into idx. Malformed rows are skipped and
// logged; only a broken stream is returned as an error. tick is called once
// per row read and may be nil.
func readCountries(r io.Reader, idx *CountryIndex, skipHeader bool, logger zerolog.Logger, tick func()) (LoadStats, error) {
	var stats LoadStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	line := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.Skipped++
				logger.Debug().Err(err).Msg("skipping unreadable row")
				continue
			}
			return stats, err
		}
		line++
		if tick != nil {
			tick()
		}
		if line == 1 && skipHeader {
			continue
		}

		stats.Rows++
		name, happiness, err := parseCountryRow(fields)
		if err != nil {
			stats.Skipped++
			logger.Debug().Int("line", line).Err(err).Msg("skipping row")
			continue
		}
		if idx.Insert(name, happiness) {
			stats.Inserted++
		} else {
			stats.Duplicates++
		}
	}

	return stats, nil
}

// loadCountriesFile opens path and loads it into idx, showing a spinner
// unless quiet is set.
func loadCountriesFile(path string, idx *CountryIndex, cfg *Config, logger zerolog.Logger) (LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadStats{}, fmt.Errorf("country data file %s not found. Point data.path in ~/%s or --data at a CSV file", path, configFileName)
		}
		return LoadStats{}, err
	}
	defer file.Close()

	var bar *progressbar.ProgressBar
	var tick func()
	if !cfg.Quiet {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("🌍 Loading countries..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
		tick = func() { _ = bar.Add(1) }
	}

	stats, err := readCountries(file, idx, cfg.Data.SkipHeader, logger, tick)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return stats, fmt.Errorf("failed to read %s: %w", path, err)
	}

	logger.Info().
		Str("path", path).
		Int("rows", stats.Rows).
		Int("inserted", stats.Inserted).
		Int("duplicates", stats.Duplicates).
		Int("skipped", stats.Skipped).
		Msg("country data loaded")
	return stats, nil
}
