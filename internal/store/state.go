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

// Package store holds the wizard's shared state and applies actions to it.
package store

import (
	"github.com/cloud-exit/datawiz/internal/dataloaders"
)

// State is the whole application state.
type State struct {
	DataLoading DataLoading `yaml:"data_loading"`
}

// DataLoading groups everything the data-loader wizard collects.
type DataLoading struct {
	DataLoaders DataLoaders `yaml:"data_loaders"`
	Steps       Steps       `yaml:"steps"`
}

// DataLoaders holds the selected plugins and bundles.
type DataLoaders struct {
	TelegrafPlugins []dataloaders.TelegrafPlugin `yaml:"telegraf_plugins,omitempty"`
	PluginBundles   []dataloaders.BundleName     `yaml:"plugin_bundles,omitempty"`
}

// Steps holds the wizard position and the bucket chosen for output.
type Steps struct {
	CurrentStepIndex int    `yaml:"current_step_index"`
	OrgID            string `yaml:"org_id,omitempty"`
	Bucket           string `yaml:"bucket,omitempty"`
	BucketID         string `yaml:"bucket_id,omitempty"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	dl := &out.DataLoading.DataLoaders
	if dl.TelegrafPlugins != nil {
		dl.TelegrafPlugins = append([]dataloaders.TelegrafPlugin(nil), dl.TelegrafPlugins...)
	}
	if dl.PluginBundles != nil {
		dl.PluginBundles = append([]dataloaders.BundleName(nil), dl.PluginBundles...)
	}
	return out
}
