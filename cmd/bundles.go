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

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cloud-exit/datawiz/internal/dataloaders"
	"github.com/spf13/cobra"
)

var bundlesCmd = &cobra.Command{
	Use:   "bundles",
	Short: "List available plugin bundles",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), bundleTable())
	},
}

func init() {
	rootCmd.AddCommand(bundlesCmd)
}

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)
}

// bundleTable renders every bundle with the telegraf inputs it enables.
func bundleTable() string {
	t := newTable("BUNDLE", "NAME", "PLUGINS", "DESCRIPTION")
	for _, b := range dataloaders.AllBundles() {
		t.Row(string(b), b.DisplayName(), strings.Join(pluginLabels(b), ", "), b.Description())
	}
	return t.String()
}

// pluginLabels marks plugins that need editing after generation with a '*'.
func pluginLabels(b dataloaders.BundleName) []string {
	var out []string
	for _, name := range dataloaders.PluginsForBundle(b) {
		if dataloaders.NewTelegrafPlugin(name).Configured == dataloaders.Unconfigured {
			name += "*"
		}
		out = append(out, name)
	}
	return out
}
