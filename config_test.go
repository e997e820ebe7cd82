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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config should not be an error: %v", err)
	}
	if *cfg != defaultConfig() {
		t.Errorf("missing config = %+v; want defaults", *cfg)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeTempConfig(t, `
display:
  default_count: 3
index:
  rank_cache_ttl: 30s
log:
  level: debug
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Display.DefaultCount != 3 {
		t.Errorf("default_count = %d; want 3", cfg.Display.DefaultCount)
	}
	if cfg.Index.RankCacheTTL != 30*time.Second {
		t.Errorf("rank_cache_ttl = %v; want 30s", cfg.Index.RankCacheTTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q; want debug", cfg.Log.Level)
	}

	// Untouched fields keep their defaults.
	def := defaultConfig()
	if cfg.Display.Precision != def.Display.Precision || cfg.Data != def.Data || cfg.Index.BloomBits != def.Index.BloomBits {
		t.Errorf("defaults lost in overlay: %+v", *cfg)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeTempConfig(t, ""))
	if err != nil {
		t.Fatalf("empty config should load: %v", err)
	}
	if *cfg != defaultConfig() {
		t.Errorf("empty config = %+v; want defaults", *cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	testCases := map[string]string{
		"broken yaml":       "display: [",
		"negative count":    "display:\n  default_count: -1\n",
		"count too big":     "display:\n  default_count: 70000\n",
		"precision too big": "display:\n  precision: 11\n",
		"zero bloom bits":   "index:\n  bloom_bits: 0\n",
		"unknown log level": "log:\n  level: loud\n",
	}

	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadConfig(writeTempConfig(t, content))
			if err == nil {
				t.Fatalf("LoadConfig should fail for %q", content)
			}
			if cfg == nil || *cfg != defaultConfig() {
				t.Errorf("a broken config should still hand back the defaults, got %+v", cfg)
			}
		})
	}
}

func TestDisplaySettingsCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)

	var out bytes.Buffer
	if err := displaySettings(&out, path); err != nil {
		t.Fatalf("displaySettings error: %v", err)
	}
	if !strings.Contains(out.String(), "(newly created)") {
		t.Errorf("first run should report a new file:\n%s", out.String())
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if *cfg != defaultConfig() {
		t.Errorf("written config = %+v; want defaults", *cfg)
	}

	out.Reset()
	if err := displaySettings(&out, path); err != nil {
		t.Fatalf("displaySettings error: %v", err)
	}
	if strings.Contains(out.String(), "(newly created)") {
		t.Errorf("second run should not create the file again")
	}
	if !strings.Contains(out.String(), "rank_cache_ttl: 10m0s") {
		t.Errorf("settings output is missing the cache ttl:\n%s", out.String())
	}
}

func TestWarnDefaultSettings(t *testing.T) {
	_, err := LoadConfig(writeTempConfig(t, "display:\n  precision: 11\n"))
	if err == nil {
		t.Fatalf("precision 11 should be rejected")
	}

	var out bytes.Buffer
	warnDefaultSettings(&out, err)
	if !strings.HasPrefix(out.String(), "Warning: failed to parse config") ||
		!strings.Contains(out.String(), "display.precision must be between 0 and 10, got 11\nUsing default settings.\n") {
		t.Errorf("unexpected warning:\n%s", out.String())
	}

	orig := Warning
	Warning = "<w>"
	t.Cleanup(func() { Warning = orig })
	out.Reset()
	warnDefaultSettings(&out, err)
	if !strings.HasPrefix(out.String(), "<w>Warning:") {
		t.Errorf("warning should carry the warning color: %q", out.String())
	}
}
