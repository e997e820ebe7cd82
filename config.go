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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/happiness/bst"
)

const configFileName = ".happiness.yaml"

type DataConfig struct {
	Path       string `yaml:"path"`
	SkipHeader bool   `yaml:"skip_header"`
}

type IndexConfig struct {
	BloomBits    uint          `yaml:"bloom_bits"`
	BloomHashes  uint          `yaml:"bloom_hashes"`
	RankCacheTTL time.Duration `yaml:"rank_cache_ttl"`
}

type DisplayConfig struct {
	DefaultCount int `yaml:"default_count"`
	Precision    int `yaml:"precision"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Data    DataConfig    `yaml:"data"`
	Index   IndexConfig   `yaml:"index"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Quiet   bool          `yaml:"-"`
}

func defaultConfig() Config {
	return Config{
		Data: DataConfig{
			Path:       filepath.Join("data", "countries.csv"),
			SkipHeader: true,
		},
		Index: IndexConfig{
			BloomBits:    1 << 14,
			BloomHashes:  4,
			RankCacheTTL: 10 * time.Minute,
		},
		Display: DisplayConfig{
			DefaultCount: 10,
			Precision:    2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the config at path, or at ~/.happiness.yaml when path is
// empty. A missing file yields the defaults. A broken file also yields the
// defaults, together with the error so the caller can warn about it.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return &cfg, nil
		}
		path = p
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	loaded, err := decodeConfig(f)
	if err != nil {
		return &cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return loaded, nil
}

// decodeConfig overlays the YAML document on top of the defaults, so fields
// absent from the file keep their default values.
func decodeConfig(r io.Reader) (*Config, error) {
	cfg := defaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// warnDefaultSettings tells the user a config file was rejected and the
// defaults are in effect instead.
func warnDefaultSettings(w io.Writer, err error) {
	fmt.Fprintf(w, "%sWarning:%s %v\nUsing default settings.\n", Warning, Reset, err)
}

func (c *Config) validate() error {
	if c.Display.DefaultCount < 0 {
		return fmt.Errorf("display.default_count must not be negative, got %d", c.Display.DefaultCount)
	}
	if c.Display.DefaultCount > bst.MaxCount {
		return fmt.Errorf("display.default_count must be at most %d, got %d", bst.MaxCount, c.Display.DefaultCount)
	}
	if c.Display.Precision < 0 || c.Display.Precision > 10 {
		return fmt.Errorf("display.precision must be between 0 and 10, got %d", c.Display.Precision)
	}
	if c.Index.BloomBits == 0 || c.Index.BloomHashes == 0 {
		return fmt.Errorf("index.bloom_bits and index.bloom_hashes must be positive")
	}
	if _, err := parseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func writeConfigFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

// displaySettings prints the active configuration, creating a default config
// file first when none exists.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		def := defaultConfig()
		if err := writeConfigFile(path, &def); err != nil {
			return err
		}
		created = true
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 Happiness Index Configuration\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", path)
	}

	fmt.Fprintf(w, "📂 %sData:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • path: %s\n", cfg.Data.Path)
	fmt.Fprintf(w, "  • skip_header: %t\n\n", cfg.Data.SkipHeader)

	fmt.Fprintf(w, "🌳 %sIndex:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • bloom_bits: %d\n", cfg.Index.BloomBits)
	fmt.Fprintf(w, "  • bloom_hashes: %d\n", cfg.Index.BloomHashes)
	fmt.Fprintf(w, "  • rank_cache_ttl: %s\n\n", cfg.Index.RankCacheTTL)

	fmt.Fprintf(w, "🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • default_count: %d\n", cfg.Display.DefaultCount)
	fmt.Fprintf(w, "  • precision: %d\n\n", cfg.Display.Precision)

	fmt.Fprintf(w, "📝 %sLog:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • level: %s\n", cfg.Log.Level)
	return nil
}
