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
	"strconv"
	"time"

	"github.com/cloud-exit/datawiz/internal/draft"
	"github.com/cloud-exit/datawiz/internal/ui"
	"github.com/spf13/cobra"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List or clear saved wizard drafts",
	RunE: func(cmd *cobra.Command, args []string) error {
		drafts := openDrafts()
		if drafts == nil {
			return fmt.Errorf("draft store unavailable")
		}
		defer drafts.Close()

		if cmd.Flags().Changed("clear") {
			org, _ := cmd.Flags().GetString("clear")
			if err := drafts.Delete(org); err != nil {
				return fmt.Errorf("clearing draft for %q: %w", org, err)
			}
			ui.Successf("Cleared draft for organization %q.", org)
			return nil
		}

		out, err := draftTable(drafts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	draftsCmd.Flags().String("clear", "", "Delete the draft for this organization ID")
	rootCmd.AddCommand(draftsCmd)
}

// draftTable lists saved drafts, or a hint when there are none.
func draftTable(drafts *draft.Store) (string, error) {
	orgs, err := drafts.List()
	if err != nil {
		return "", fmt.Errorf("listing drafts: %w", err)
	}
	if len(orgs) == 0 {
		return "No saved drafts.", nil
	}

	t := newTable("ORG", "BUCKET", "BUNDLES", "STEP", "CREATED", "UPDATED")
	for _, org := range orgs {
		st, err := drafts.Load(org)
		if err != nil {
			ui.Debugf("skipping draft %q: %v", org, err)
			continue
		}
		created, updated, err := drafts.CreatedUpdated(org)
		if err != nil {
			ui.Debugf("no log for draft %q: %v", org, err)
		}
		steps := st.DataLoading.Steps
		label := org
		if label == "" {
			label = "(none)"
		}
		t.Row(label, steps.Bucket,
			strconv.Itoa(len(st.DataLoading.DataLoaders.PluginBundles)),
			strconv.Itoa(steps.CurrentStepIndex+1),
			formatDraftTime(created), formatDraftTime(updated))
	}
	return t.String(), nil
}

func formatDraftTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(draftTimeLayout)
}

const draftTimeLayout = "2006-01-02 15:04"
