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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/happiness/bst"
)

// BrowseMode selects which countries the browser lists.
type BrowseMode int

const (
	BrowseAll BrowseMode = iota
	BrowseTop
	BrowseBottom
)

func (b BrowseMode) String() string {
	switch b {
	case BrowseTop:
		return "Top"
	case BrowseBottom:
		return "Bottom"
	}
	return "All"
}

func (b BrowseMode) next() BrowseMode {
	return (b + 1) % 3
}

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	searchInput textinput.Model
	countryList list.Model
	detailView  viewport.Model
	idx         *CountryIndex
	config      *Config
	browseMode  BrowseMode
	focusIndex  int // 0: input, 1: list, 2: details
	countries   []bst.Record
	lastQuery   string
	selected    string
	statusLine  string
	styles      *Styles
	mdRenderer  *glamour.TermRenderer
	width       int
	height      int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

type countryItem struct {
	record    bst.Record
	precision int
}

func (i countryItem) FilterValue() string { return i.record.Key }
func (i countryItem) Title() string       { return i.record.Key }
func (i countryItem) Description() string {
	return fmt.Sprintf("😊 %.*f", i.precision, i.record.Value)
}

// browseEntries lists the countries shown for a browse mode, narrowed to
// names starting with query (case-insensitive).
func browseEntries(idx *CountryIndex, mode BrowseMode, count int, query string) ([]bst.Record, error) {
	var records []bst.Record
	switch mode {
	case BrowseTop, BrowseBottom:
		direction := rankTop
		if mode == BrowseBottom {
			direction = rankBottom
		}
		slots, _, err := rankWithTitle(idx, direction, count)
		if err != nil {
			return nil, err
		}
		for _, s := range bst.Filled(slots) {
			records = append(records, bst.Record{Key: s.Key, Value: s.Value})
		}
	default:
		records = idx.Records(bst.InOrder)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records, nil
	}
	var matches []bst.Record
	for _, r := range records {
		if strings.HasPrefix(strings.ToLower(r.Key), query) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// countryDetail builds the markdown shown next to the list for one country.
func countryDetail(idx *CountryIndex, name string, precision int) string {
	happiness, err := idx.Find(name)
	if err != nil {
		return fmt.Sprintf("# %s\n\nNot in the tree.\n", name)
	}
	path, err := idx.PathTo(name)
	if err != nil {
		return fmt.Sprintf("# %s\n\nNot in the tree.\n", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "* **Happiness:** %.*f\n", precision, happiness)
	fmt.Fprintf(&b, "* **Depth:** %d\n", len(path)-1)
	fmt.Fprintf(&b, "* **Rank:** %d of %d\n\n", happinessRank(idx, name), idx.Len())
	b.WriteString("## Path from root\n\n")
	for i, step := range path {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

// happinessRank is the 1-based position of name among all countries ordered
// from happiest to least happy, or 0 when absent.
func happinessRank(idx *CountryIndex, name string) int {
	slots, err := idx.Top(min(idx.Len(), bst.MaxCount))
	if err != nil {
		return 0
	}
	for i, s := range slots {
		if s.Filled && s.Key == name {
			return i + 1
		}
	}
	return 0
}

// InitialModel creates the initial model
func InitialModel(idx *CountryIndex, cfg *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a country name prefix..."
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	countryList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	countryList.SetShowTitle(false)
	countryList.SetShowHelp(false)
	countryList.SetFilteringEnabled(false)

	detailView := viewport.New(0, 0)
	detailView.SetContent("Select a country to see its details...")

	mdRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		searchInput: ti,
		countryList: countryList,
		detailView:  detailView,
		idx:         idx,
		config:      cfg,
		browseMode:  BrowseAll,
		styles:      NewStyles(),
		mdRenderer:  mdRenderer,
	}
	m.refreshCountries()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "f2":
		m.browseMode = m.browseMode.next()
		m.refreshCountries()
		return m, nil
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % 3
		if m.focusIndex == 0 {
			m.searchInput.Focus()
		} else {
			m.searchInput.Blur()
		}
		return m, nil
	case "enter":
		if m.focusIndex == 0 {
			return m, nil
		}
		name := m.currentCountry()
		if name == "" {
			return m, nil
		}
		if err := copyToClipboard(name); err != nil {
			m.statusLine = m.styles.ErrorMessage.Render("clipboard: " + err.Error())
			return m, nil
		}
		m.selected = name
		return m, tea.Quit
	case "up", "k":
		if m.focusIndex == 2 {
			m.detailView.LineUp(1)
			return m, nil
		}
		if m.focusIndex == 1 {
			m.countryList.CursorUp()
			m.updateDetail()
			return m, nil
		}
	case "down", "j":
		if m.focusIndex == 2 {
			m.detailView.LineDown(1)
			return m, nil
		}
		if m.focusIndex == 1 {
			m.countryList.CursorDown()
			m.updateDetail()
			return m, nil
		}
	case "pgup":
		if m.focusIndex == 2 {
			m.detailView.LineUp(m.detailView.Height)
			return m, nil
		}
	case "pgdown":
		if m.focusIndex == 2 {
			m.detailView.LineDown(m.detailView.Height)
			return m, nil
		}
	}

	if m.focusIndex != 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if q := m.searchInput.Value(); q != m.lastQuery {
		m.lastQuery = q
		m.refreshCountries()
	}
	return m, cmd
}

func (m *Model) currentCountry() string {
	i := m.countryList.Index()
	if i < 0 || i >= len(m.countries) {
		return ""
	}
	return m.countries[i].Key
}

// refreshCountries reloads the list for the current mode and query.
func (m *Model) refreshCountries() {
	records, err := browseEntries(m.idx, m.browseMode, m.config.Display.DefaultCount, m.searchInput.Value())
	if err != nil {
		m.statusLine = m.styles.ErrorMessage.Render(err.Error())
		records = nil
	} else {
		m.statusLine = ""
	}

	m.countries = records
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = countryItem{record: r, precision: m.config.Display.Precision}
	}
	m.countryList.SetItems(items)
	m.countryList.ResetSelected()
	m.updateDetail()
}

func (m *Model) updateDetail() {
	name := m.currentCountry()
	if name == "" {
		m.detailView.SetContent("No matching countries.")
		return
	}
	md := countryDetail(m.idx, name, m.config.Display.Precision)
	if m.mdRenderer != nil {
		if rendered, err := m.mdRenderer.Render(md); err == nil {
			m.detailView.SetContent(rendered)
			return
		}
	}
	m.detailView.SetContent(md)
}

func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	m.searchInput.Width = leftWidth - 4
	m.countryList.SetSize(leftWidth-2, listHeight-2)
	m.detailView.Width = rightWidth - 2
	m.detailView.Height = listHeight + inputHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	box := func(focused bool, width, height int, title, body string) string {
		style := m.styles.BorderBlurred
		if focused {
			style = m.styles.BorderFocused
			title += " (Active)"
		}
		return style.
			Width(width).
			Height(height).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Width(width-4).Render(title),
				body,
			))
	}

	inputBox := box(m.focusIndex == 0, leftWidth, inputHeight, " 🔍 Search Countries", m.searchInput.View())
	listTitle := fmt.Sprintf(" 🌍 %s Countries (%d)", m.browseMode, len(m.countries))
	listBox := box(m.focusIndex == 1, leftWidth, listHeight, listTitle, m.countryList.View())
	detailBox := box(m.focusIndex == 2, rightWidth, listHeight+inputHeight+2, " 📖 Details", m.detailView.View())

	layout := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		detailBox,
	)

	parts := []string{layout, m.renderHelp()}
	if m.statusLine != "" {
		parts = append(parts, m.statusLine)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "f2", "↑/↓", "esc"}
	descs := []string{"copy name", "switch focus", "all/top/bottom", "move", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard. It runs while the alt screen is
// up, so it must not print; reportSelection confirms once the program exits.
var copyToClipboard = clipboard.WriteAll

// reportSelection prints the clipboard confirmation for the final model of a
// browser session. Nothing is printed when the user quit without a selection.
func reportSelection(w io.Writer, final tea.Model) {
	m, ok := final.(Model)
	if !ok || m.selected == "" {
		return
	}
	fmt.Fprintf(w, "📋 Copied %s%s%s to clipboard.\n", Green, m.selected, Reset)
}

// runBrowser starts the interactive country browser.
func runBrowser(idx *CountryIndex, cfg *Config) error {
	if idx.Len() == 0 {
		return errors.New("no countries loaded; nothing to browse")
	}
	program := tea.NewProgram(
		InitialModel(idx, cfg),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return err
	}
	reportSelection(os.Stderr, final)
	return nil
}
