// DataWiz - Telegraf Collectors Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-exit/datawiz/internal/collectors"
	"github.com/cloud-exit/datawiz/internal/config"
	"github.com/cloud-exit/datawiz/internal/dataloaders"
	"github.com/cloud-exit/datawiz/internal/generate"
	"github.com/cloud-exit/datawiz/internal/store"
	"github.com/cloud-exit/datawiz/internal/ui"
)

// Step identifies the current wizard step. It mirrors the store's
// CurrentStepIndex.
type Step int

const (
	stepWelcome Step = iota
	stepBucket
	stepCollectors
	stepReview
	stepDone
)

// stepInfo describes a wizard step for sidebar display.
type stepInfo struct {
	Step  Step
	Label string
}

var sidebarSteps = []stepInfo{
	{stepBucket, "Bucket"},
	{stepCollectors, "Collectors"},
	{stepReview, "Review"},
}

const sidebarWidth = 18

// Model is the root bubbletea model for the collectors wizard. All
// selections live in the store; the model only tracks cursors and layout.
type Model struct {
	store    *store.Store
	cfg      *config.Config
	buckets  []dataloaders.Bucket
	collect  *collectors.Step
	selector bundleSelector
	keys     keyMap
	help     help.Model

	bucketCursor int
	reviewErr    string
	width        int
	height       int
	cancelled    bool
	confirmed    bool
}

// NewModel creates a wizard model over st. The step position is taken from
// st, so a restored draft resumes where it stopped. A lone configured bucket
// is selected up front.
func NewModel(cfg *config.Config, st *store.Store) Model {
	buckets := cfg.BucketList()
	m := Model{
		store:    st,
		cfg:      cfg,
		buckets:  buckets,
		selector: newBundleSelector(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.collect = collectors.NewStep(collectors.Props{
		OrgID:                       cfg.Influx.OrgID,
		Buckets:                     buckets,
		OnIncrementCurrentStepIndex: st.IncrementCurrentStepIndex,
		State:                       st,
		Dispatch:                    st,
	})
	if len(buckets) == 1 && st.Bucket() == "" {
		b := buckets[0]
		st.SetBucketInfo(b.OrgID, b.Name, b.ID)
	}
	if name := st.Bucket(); name != "" {
		for i, b := range buckets {
			if b.Name == name {
				m.bucketCursor = i
				break
			}
		}
	}
	return m
}

func (m Model) current() Step {
	s := Step(m.store.State().DataLoading.Steps.CurrentStepIndex)
	if s > stepDone {
		return stepDone
	}
	return s
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.contentWidth()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.cancelled = true
			return m, tea.Quit
		}

		switch m.current() {
		case stepWelcome:
			return m.updateWelcome(msg)
		case stepBucket:
			return m.updateBucket(msg)
		case stepCollectors:
			return m.updateCollectors(msg)
		case stepReview:
			return m.updateReview(msg)
		}
		return m, nil
	}

	// Cursor blink and other input messages for the filter box.
	if m.current() == stepCollectors && m.selector.filtering {
		var cmd tea.Cmd
		m.selector.filter, cmd = m.selector.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.current() {
	case stepWelcome:
		return m.viewWelcome()
	case stepDone:
		return ""
	}

	render := collectors.ErrorHandling(m.viewStep, m.viewRenderError)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " "+render())
}

func (m Model) viewStep() string {
	switch m.current() {
	case stepBucket:
		return m.viewBucket()
	case stepCollectors:
		return m.viewCollectors()
	case stepReview:
		return m.viewReview()
	}
	return ""
}

func (m Model) viewRenderError(err error) string {
	ui.Debugf("wizard: %v", err)
	var b strings.Builder
	b.WriteString(errorStyle.Render("Something went wrong while drawing this step."))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(err.Error()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc to go back, Ctrl+C to quit"))
	return b.String()
}

// Cancelled returns true if the user cancelled the wizard.
func (m Model) Cancelled() bool { return m.cancelled }

// Confirmed returns true if the user confirmed the generated config.
func (m Model) Confirmed() bool { return m.confirmed }

// Result returns the final store state.
func (m Model) Result() store.State { return m.store.State() }

// --- Welcome Step ---

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.store.IncrementCurrentStepIndex()
	case msg.String() == "q":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(ui.LogoText()))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Welcome to DataWiz"))
	b.WriteString("\n\n")
	b.WriteString("This wizard builds a Telegraf configuration for your InfluxDB.\n")
	b.WriteString("You'll choose a bucket and the data collectors to enable.\n\n")
	b.WriteString(helpStyle.Render("Press Enter to start, q to quit"))
	return b.String()
}

// --- Bucket Step (single-select) ---

func (m Model) updateBucket(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.bucketCursor > 0 {
			m.bucketCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.bucketCursor < len(m.buckets)-1 {
			m.bucketCursor++
		}
	case key.Matches(msg, m.keys.Next):
		if len(m.buckets) > 0 {
			b := m.buckets[m.bucketCursor]
			m.store.SetBucketInfo(b.OrgID, b.Name, b.ID)
		}
		m.store.IncrementCurrentStepIndex()
	case key.Matches(msg, m.keys.Back):
		m.store.DecrementCurrentStepIndex()
	}
	return m, nil
}

func (m Model) viewBucket() string {
	var b strings.Builder
	b.WriteString(m.stepTitle(stepBucket, "Where should metrics be written?"))
	b.WriteString("\n\n")

	if len(m.buckets) == 0 {
		b.WriteString(dimStyle.Render("No buckets configured. Add buckets to " + config.ConfigFile() + "."))
		b.WriteString("\n")
	}
	selected := m.store.Bucket()
	for i, bucket := range m.buckets {
		cursor := "  "
		if m.bucketCursor == i {
			cursor = cursorStyle.Render("> ")
		}
		radio := "( )"
		if bucket.Name == selected {
			radio = selectedStyle.Render("(*)")
		}
		name := fmt.Sprintf("%-20s", bucket.Name)
		if m.bucketCursor == i {
			name = selectedStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, radio, name, dimStyle.Render(bucket.ID)))
	}

	b.WriteString(helpStyle.Render(m.help.View(listKeys(m.keys))))
	return b.String()
}

// --- Collectors Step ---

func (m Model) updateCollectors(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.selector.filtering {
		var cmd tea.Cmd
		m.selector, cmd = m.selector.updateFilter(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.collect.Submit()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.store.DecrementCurrentStepIndex()
		return m, nil
	}

	v := m.collect.Render()
	if v.Selector == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.selector, cmd = m.selector.update(msg, v.Selector, m.keys)
	return m, cmd
}

func (m Model) viewCollectors() string {
	v := m.collect.Render()

	var b strings.Builder
	b.WriteString(m.stepTitle(stepCollectors, v.Title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(v.Subtitle))
	b.WriteString("\n\n")

	if v.Selector != nil {
		b.WriteString(m.selector.view(v.Selector, m.contentWidth()))
	}

	b.WriteString("\n")
	b.WriteString(renderButtons(onboardingButtons(true, v.Buttons, "Next →"), m.contentWidth()))
	b.WriteString("\n")
	switch {
	case v.Selector == nil:
		b.WriteString(dimStyle.Render("(no bucket chosen; press Esc to pick one)"))
		b.WriteString("\n")
	case v.Buttons.NextStatus == collectors.StatusDisabled:
		b.WriteString(dimStyle.Render("(select at least one bundle to continue)"))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(selectorKeys(m.keys))))
	return b.String()
}

// --- Review Step ---

func (m Model) renderConfig() ([]byte, error) {
	return generate.Render(TelegrafOptions(m.cfg, m.store.State()))
}

func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		if _, err := m.renderConfig(); err != nil {
			m.reviewErr = err.Error()
			return m, nil
		}
		m.reviewErr = ""
		m.confirmed = true
		m.store.IncrementCurrentStepIndex()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.reviewErr = ""
		m.store.DecrementCurrentStepIndex()
	}
	return m, nil
}

func (m Model) viewReview() string {
	var b strings.Builder
	b.WriteString(m.stepTitle(stepReview, "Review telegraf.conf"))
	b.WriteString("\n\n")

	data, err := m.renderConfig()
	if err != nil {
		b.WriteString(errorStyle.Render("Cannot generate config: " + err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle.Render(truncateLines(string(data), m.previewLines())))
		b.WriteString("\n")
	}
	if m.reviewErr != "" {
		b.WriteString(errorStyle.Render(m.reviewErr))
		b.WriteString("\n")
	}

	path := m.cfg.Telegraf.ConfigPath
	if path == "" {
		path = config.DefaultTelegrafConfigPath()
	}
	b.WriteString(helpStyle.Render("Enter to write " + path + ", Esc to go back"))
	return b.String()
}

// previewLines is how much of the config fits on screen.
func (m Model) previewLines() int {
	if m.height <= 0 {
		return 40
	}
	if n := m.height - 8; n > 5 {
		return n
	}
	return 5
}

func truncateLines(s string, max int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) <= max {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[:max], "\n") + fmt.Sprintf("\n... (%d more lines)", len(lines)-max)
}

// --- Layout ---

// contentWidth returns the available width for step content, accounting for sidebar.
func (m Model) contentWidth() int {
	w := m.width - sidebarWidth - 2
	if w < 40 {
		w = 40
	}
	return w
}

// stepTitle formats a step title like "Step 2/3 - Some title".
func (m Model) stepTitle(s Step, title string) string {
	num := 0
	for i, si := range sidebarSteps {
		if si.Step == s {
			num = i + 1
		}
	}
	return titleStyle.Render(fmt.Sprintf("Step %d/%d - %s", num, len(sidebarSteps), title))
}

// renderSidebar returns the sidebar panel string.
func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString("\n")

	cur := m.current()
	for i, si := range sidebarSteps {
		label := fmt.Sprintf("%d. %s", i+1, si.Label)
		switch {
		case si.Step == cur:
			b.WriteString(sidebarActiveStyle.Render(">> " + label))
		case si.Step < cur:
			b.WriteString(sidebarVisitedStyle.Render(label + " ✓"))
		default:
			b.WriteString(dimStyle.Render(label))
		}
		b.WriteString("\n")
	}
	return sidebarStyle.Render(b.String())
}

// wrapWords joins words with ", " and wraps to maxWidth, indenting
// continuation lines with the given indent string.
func wrapWords(words []string, indent string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 80
	}
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := len(indent)
	b.WriteString(indent)

	for i, w := range words {
		seg := w
		if i < len(words)-1 {
			seg += ","
		}
		needed := len(seg)
		if lineLen > len(indent) {
			needed++
		}

		if lineLen+needed > maxWidth && lineLen > len(indent) {
			b.WriteString("\n")
			b.WriteString(indent)
			lineLen = len(indent)
		}

		if lineLen > len(indent) {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(seg)
		lineLen += len(seg)
	}
	return b.String()
}
