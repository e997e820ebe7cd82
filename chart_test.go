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
	"reflect"
	"testing"

	"github.com/cybrota/happiness/bst"
)

func TestChartSeries(t *testing.T) {
	slots := []bst.Slot{
		{Key: "United States", Value: 6.7, Filled: true},
		{Key: "Peru", Value: 5.8, Filled: true},
		{},
	}
	labels, data := chartSeries(slots)

	if want := []string{"United St…", "Peru"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %q; want %q", labels, want)
	}
	if want := []float64{6.7, 5.8}; !reflect.DeepEqual(data, want) {
		t.Errorf("data = %v; want %v", data, want)
	}

	labels, data = chartSeries(nil)
	if len(labels) != 0 || len(data) != 0 {
		t.Errorf("empty selection should give an empty series")
	}
}

func TestShortLabel(t *testing.T) {
	testCases := []struct {
		name  string
		width int
		want  string
	}{
		{"Peru", 10, "Peru"},
		{"Luxembourg", 10, "Luxembourg"},
		{"Netherlands", 10, "Netherlan…"},
		{"Türkiye Cumhuriyeti", 8, "Türkiye…"},
	}
	for _, tc := range testCases {
		if got := shortLabel(tc.name, tc.width); got != tc.want {
			t.Errorf("shortLabel(%q, %d) = %q; want %q", tc.name, tc.width, got, tc.want)
		}
	}
}

func TestSeriesBounds(t *testing.T) {
	data := []float64{3.5, -1, 7.25}
	if minOf(data) != -1 || maxOf(data) != 7.25 {
		t.Errorf("minOf/maxOf = %v/%v; want -1/7.25", minOf(data), maxOf(data))
	}
	if !hasNegative(data) || hasNegative([]float64{0, 1}) {
		t.Errorf("hasNegative gave the wrong answer")
	}
}
