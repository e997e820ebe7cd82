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
	"strconv"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/happiness/bst"
)

const chartLabelWidth = 10

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// chartSeries turns the filled slots of a selection into bar labels and values.
// Labels are shortened to fit under a bar.
func chartSeries(slots []bst.Slot) ([]string, []float64) {
	filled := bst.Filled(slots)
	labels := make([]string, len(filled))
	data := make([]float64, len(filled))
	for i, s := range filled {
		labels[i] = shortLabel(s.Key, chartLabelWidth)
		data[i] = s.Value
	}
	return labels, data
}

func shortLabel(name string, width int) string {
	r := []rune(name)
	if len(r) <= width {
		return name
	}
	return string(r[:width-1]) + "…"
}

// runChart draws a bar chart of a top or bottom selection and waits for q,
// Esc or Ctrl-C.
func runChart(idx *CountryIndex, direction string, count, precision int) error {
	slots, title, err := rankWithTitle(idx, direction, count)
	if err != nil {
		return err
	}
	labels, data := chartSeries(slots)
	if len(data) == 0 {
		return fmt.Errorf("no countries to chart")
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetColorScheme()
	chart := widgets.NewBarChart()
	chart.Title = " " + title + " "
	chart.TitleStyle = ui.NewStyle(scheme.Title)
	chart.BorderStyle = ui.NewStyle(scheme.Border)
	chart.Data = data
	chart.Labels = labels
	chart.BarWidth = chartLabelWidth
	chart.BarGap = 2
	chart.BarColors = scheme.Bars
	chart.LabelStyles = []ui.Style{ui.NewStyle(scheme.Label)}
	chart.NumStyles = []ui.Style{ui.NewStyle(scheme.Number)}
	// bars grow from zero, so negative scores are drawn from a lifted baseline
	// and labelled with their real values
	base := 0.0
	if hasNegative(data) {
		base = minOf(data)
		chart.MaxVal = maxOf(data) - base
		for i := range chart.Data {
			chart.Data[i] -= base
		}
	}
	chart.NumFormatter = func(v float64) string {
		return strconv.FormatFloat(v+base, 'f', precision, 64)
	}

	footer := widgets.NewParagraph()
	footer.Text = "[q](fg:green), [<esc>](fg:green) or [<ctrl> + c](fg:green) to quit"
	footer.Border = false
	footer.TextStyle = ui.NewStyle(scheme.TextMuted)

	render := func() {
		w, h := ui.TerminalDimensions()
		chart.SetRect(0, 0, w, h-1)
		footer.SetRect(0, h-1, w, h)
		ui.Render(chart, footer)
	}
	render()

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<Escape>", "<C-c>":
			return nil
		case "<Resize>":
			ui.Clear()
			render()
		}
	}
	return nil
}

func hasNegative(data []float64) bool {
	return minOf(data) < 0
}

func minOf(data []float64) float64 {
	m := data[0]
	for _, v := range data[1:] {
		m = min(m, v)
	}
	return m
}

func maxOf(data []float64) float64 {
	m := data[0]
	for _, v := range data[1:] {
		m = max(m, v)
	}
	return m
}
