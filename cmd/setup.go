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
	"errors"
	"fmt"
	"os"

	"github.com/cloud-exit/datawiz/internal/config"
	"github.com/cloud-exit/datawiz/internal/draft"
	"github.com/cloud-exit/datawiz/internal/generate"
	"github.com/cloud-exit/datawiz/internal/store"
	"github.com/cloud-exit/datawiz/internal/ui"
	"github.com/cloud-exit/datawiz/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the setup wizard",
	Long:  "Interactive wizard to pick a bucket and data collectors and write telegraf.conf.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(cmd)
	},
}

func init() {
	setupCmd.Flags().Bool("fresh", false, "Ignore any saved draft and start over")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command) error {
	// Non-interactive terminal: fall back to defaults
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		ui.Warn("Non-interactive terminal detected. Writing default configuration.")
		if err := config.WriteDefaults(); err != nil {
			return fmt.Errorf("writing defaults: %w", err)
		}
		ui.Success("Default configuration written. Use 'datawiz generate' for scripted setups.")
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Buckets) == 0 {
		ui.Warnf("No buckets configured in %s. Add one to continue past the bucket step.", config.ConfigFile())
	}

	drafts := openDrafts()
	if drafts != nil {
		defer drafts.Close()
	}

	fresh := false
	if cmd.Flags().Lookup("fresh") != nil {
		fresh, _ = cmd.Flags().GetBool("fresh")
	}
	orgID := cfg.Influx.OrgID
	st := store.New(initialState(drafts, orgID, cfg.Settings.ResumeDrafts && !fresh))

	if drafts != nil {
		unsubscribe := st.Subscribe(func(s store.State) {
			if err := drafts.Save(orgID, s); err != nil {
				ui.Debugf("saving draft: %v", err)
			}
		})
		defer unsubscribe()
	}

	result, err := wizard.Run(cmd.Context(), cfg, st)
	if errors.Is(err, wizard.ErrCancelled) {
		if drafts != nil {
			ui.Info("Setup cancelled. Progress saved; run 'datawiz setup' to pick up where you left off.")
		} else {
			ui.Info("Setup cancelled.")
		}
		return nil
	}
	if err != nil {
		return err
	}

	if err := generate.WriteConfig(result.Path, result.Config); err != nil {
		return fmt.Errorf("writing %s: %w", result.Path, err)
	}
	if drafts != nil {
		if err := drafts.Delete(orgID); err != nil {
			ui.Debugf("clearing draft: %v", err)
		}
	}

	ui.Successf("Wrote %s (%d plugins, bucket %q).", result.Path, result.Plugins, result.Bucket)
	fmt.Println()
	fmt.Println("  Next steps:")
	fmt.Printf("    export %s=<your InfluxDB API token>\n", cfg.TokenEnvOrDefault())
	fmt.Printf("    telegraf --config %s\n", result.Path)
	fmt.Println()
	return nil
}

// loadConfig reads config.yaml, falling back to defaults when there is none.
func loadConfig() (*config.Config, error) {
	if !config.ConfigExists() {
		ui.Debugf("no config at %s, using defaults", config.ConfigFile())
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openDrafts opens the draft store. Drafts are a convenience, so a store that
// can not be opened (another datawiz holding the lock, say) only disables them.
func openDrafts() *draft.Store {
	d, err := draft.Open(draft.Options{Dir: config.DraftsDir()})
	if err != nil {
		ui.Warnf("Drafts disabled: %v", err)
		return nil
	}
	return d
}

// initialState returns the saved draft for orgID when resuming, otherwise an
// empty state.
func initialState(drafts *draft.Store, orgID string, resume bool) store.State {
	if drafts == nil || !resume {
		return store.State{}
	}
	saved, err := drafts.Load(orgID)
	if err != nil {
		if !errors.Is(err, draft.ErrNotFound) {
			ui.Warnf("Ignoring unreadable draft: %v", err)
		}
		return store.State{}
	}
	ui.Info("Resuming saved draft. Run 'datawiz setup --fresh' to start over.")
	return wizard.ResumeState(saved)
}
