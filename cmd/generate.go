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

	"github.com/cloud-exit/datawiz/internal/collectors"
	"github.com/cloud-exit/datawiz/internal/config"
	"github.com/cloud-exit/datawiz/internal/dataloaders"
	"github.com/cloud-exit/datawiz/internal/generate"
	"github.com/cloud-exit/datawiz/internal/store"
	"github.com/cloud-exit/datawiz/internal/ui"
	"github.com/cloud-exit/datawiz/internal/wizard"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write telegraf.conf without the wizard",
	Long: `Render telegraf.conf from the given bundles and bucket without the interactive wizard.

Examples:
  datawiz generate --bundle system
  datawiz generate --bundle system --bundle docker --bucket telegraf -o ./telegraf.conf
  datawiz generate --bundle redis --stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bundles, _ := cmd.Flags().GetStringSlice("bundle")
		bucket, _ := cmd.Flags().GetString("bucket")
		output, _ := cmd.Flags().GetString("output")
		stdout, _ := cmd.Flags().GetBool("stdout")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := buildState(cfg, bucket, bundles)
		if err != nil {
			return err
		}
		res, err := wizard.Finish(cfg, st)
		if err != nil {
			return err
		}

		if stdout {
			_, err := cmd.OutOrStdout().Write(res.Config)
			return err
		}
		path := res.Path
		if output != "" {
			path = output
		}
		if err := generate.WriteConfig(path, res.Config); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		ui.Successf("Wrote %s (%d plugins, bucket %q).", path, res.Plugins, res.Bucket)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringSliceP("bundle", "b", nil, "Bundle to collect (repeatable: system, docker, kubernetes, nginx, redis)")
	generateCmd.Flags().String("bucket", "", "Bucket name from config.yaml (default: first configured bucket)")
	generateCmd.Flags().StringP("output", "o", "", "Output path (default: telegraf.config_path)")
	generateCmd.Flags().Bool("stdout", false, "Print the config instead of writing it")

	_ = generateCmd.RegisterFlagCompletionFunc("bundle", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, b := range dataloaders.AllBundles() {
			names = append(names, string(b))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(generateCmd)
}

// buildState drives the collectors step the same way the wizard does: select
// the bucket, then toggle each requested bundle on.
func buildState(cfg *config.Config, bucketName string, bundleNames []string) (store.State, error) {
	buckets := cfg.BucketList()
	if len(buckets) == 0 {
		return store.State{}, fmt.Errorf("no buckets configured in %s", config.ConfigFile())
	}

	bucket := buckets[0]
	if bucketName != "" {
		b, ok := cfg.FindBucket(bucketName)
		if !ok {
			return store.State{}, fmt.Errorf("unknown bucket %q", bucketName)
		}
		bucket = b
	}

	st := store.New(store.State{})
	step := collectors.NewStep(collectors.Props{
		OrgID:    cfg.Influx.OrgID,
		Buckets:  buckets,
		State:    st,
		Dispatch: st,
	})
	step.HandleSelectBucket(bucket)

	for _, name := range bundleNames {
		b, err := dataloaders.ParseBundleName(name)
		if err != nil {
			return store.State{}, err
		}
		if dataloaders.ContainsBundle(st.PluginBundles(), b) {
			continue
		}
		step.HandleTogglePluginBundle(b, false)
	}

	if step.NextButtonStatus() == collectors.StatusDisabled {
		return store.State{}, fmt.Errorf("select at least one bundle with --bundle")
	}
	return st.State(), nil
}
