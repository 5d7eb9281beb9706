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

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/datawiz/internal/collectors"
	"github.com/cloud-exit/datawiz/internal/dataloaders"
)

// bundleSelector is the streaming selector shown once a bucket is chosen: a
// bucket switcher above a filterable list of plugin bundles. It keeps only
// cursor and filter state; selections live in the store.
type bundleSelector struct {
	cursor    int
	filter    textinput.Model
	filtering bool
}

func newBundleSelector() bundleSelector {
	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.Placeholder = "system, docker, redis..."
	ti.CharLimit = 40
	return bundleSelector{filter: ti}
}

// visible returns the bundles matching the current filter.
func (s bundleSelector) visible() []dataloaders.BundleName {
	term := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	var out []dataloaders.BundleName
	for _, b := range dataloaders.AllBundles() {
		if term == "" ||
			strings.Contains(string(b), term) ||
			strings.Contains(strings.ToLower(b.DisplayName()), term) ||
			strings.Contains(strings.ToLower(b.Description()), term) {
			out = append(out, b)
		}
	}
	return out
}

// update handles list navigation and selection. Selection changes are
// reported through the callbacks on v.
func (s bundleSelector) update(msg tea.KeyMsg, v *collectors.SelectorView, keys keyMap) (bundleSelector, tea.Cmd) {
	bundles := s.visible()

	switch {
	case key.Matches(msg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, keys.Down):
		if s.cursor < len(bundles)-1 {
			s.cursor++
		}
	case key.Matches(msg, keys.Toggle):
		if s.cursor < len(bundles) {
			b := bundles[s.cursor]
			v.OnTogglePluginBundle(b, dataloaders.ContainsBundle(v.PluginBundles, b))
		}
	case key.Matches(msg, keys.Left):
		if next, ok := cycleBucket(v.Buckets, v.SelectedBucketName, -1); ok {
			v.OnSelectBucket(next)
		}
	case key.Matches(msg, keys.Right):
		if next, ok := cycleBucket(v.Buckets, v.SelectedBucketName, 1); ok {
			v.OnSelectBucket(next)
		}
	case key.Matches(msg, keys.Filter):
		s.filtering = true
		cmd := s.filter.Focus()
		return s, cmd
	}
	return s, nil
}

// updateFilter routes keys to the filter input while it has focus. Enter
// keeps the filter, Esc clears it.
func (s bundleSelector) updateFilter(msg tea.KeyMsg) (bundleSelector, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.filtering = false
		s.filter.Blur()
		return s, nil
	case "esc":
		s.filtering = false
		s.filter.Blur()
		s.filter.SetValue("")
		s.cursor = 0
		return s, nil
	}

	prev := s.filter.Value()
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	if s.filter.Value() != prev {
		s.cursor = 0
	}
	return s, cmd
}

// cycleBucket returns the bucket dir steps away from the selected one,
// wrapping around. It reports false when there is nothing to switch to.
func cycleBucket(buckets []dataloaders.Bucket, selected string, dir int) (dataloaders.Bucket, bool) {
	if len(buckets) < 2 {
		return dataloaders.Bucket{}, false
	}
	idx := 0
	for i, b := range buckets {
		if b.Name == selected {
			idx = i
			break
		}
	}
	n := len(buckets)
	return buckets[((idx+dir)%n+n)%n], true
}

func (s bundleSelector) view(v *collectors.SelectorView, width int) string {
	var b strings.Builder

	b.WriteString("Bucket: ")
	if len(v.Buckets) > 1 {
		b.WriteString(cursorStyle.Render("‹ ") + selectedStyle.Render(v.SelectedBucketName) + cursorStyle.Render(" ›"))
	} else {
		b.WriteString(selectedStyle.Render(v.SelectedBucketName))
	}
	b.WriteString("\n\n")

	if s.filtering || s.filter.Value() != "" {
		b.WriteString(s.filter.View())
		b.WriteString("\n\n")
	}

	bundles := s.visible()
	if len(bundles) == 0 {
		b.WriteString(dimStyle.Render("No bundles match the filter."))
		b.WriteString("\n")
	}
	for i, bundle := range bundles {
		cursor := "  "
		if i == s.cursor && !s.filtering {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if dataloaders.ContainsBundle(v.PluginBundles, bundle) {
			check = selectedStyle.Render("[x]")
		}
		name := fmt.Sprintf("%-12s", bundle.DisplayName())
		if i == s.cursor {
			name = selectedStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, check, name, dimStyle.Render(bundle.Description())))
	}

	b.WriteString("\n")
	if len(v.TelegrafPlugins) == 0 {
		b.WriteString(dimStyle.Render("No plugins selected yet."))
	} else {
		b.WriteString(fmt.Sprintf("Plugins (%d):\n", len(v.TelegrafPlugins)))
		b.WriteString(wrapWords(pluginLabels(v.TelegrafPlugins), "  ", width))
	}
	b.WriteString("\n")
	return b.String()
}

// pluginLabels marks plugins that will run with generated default endpoints.
func pluginLabels(plugins []dataloaders.TelegrafPlugin) []string {
	out := make([]string, 0, len(plugins))
	for _, p := range plugins {
		if p.Configured == dataloaders.Unconfigured {
			out = append(out, p.Name+"*")
			continue
		}
		out = append(out, p.Name)
	}
	return out
}
