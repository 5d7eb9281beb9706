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

// Package collectors implements the "select data collectors" wizard step: it
// projects store state into a view, maps selector events to store actions, and
// gates the next button on selection completeness.
package collectors

import "github.com/cloud-exit/datawiz/internal/dataloaders"

// ComponentStatus is the enablement state of a navigation control.
type ComponentStatus int

const (
	StatusDefault ComponentStatus = iota
	StatusDisabled
)

func (s ComponentStatus) String() string {
	if s == StatusDisabled {
		return "disabled"
	}
	return "default"
}

// StateReader exposes the subset of store state this step reads.
type StateReader interface {
	Bucket() string
	TelegrafPlugins() []dataloaders.TelegrafPlugin
	PluginBundles() []dataloaders.BundleName
}

// Dispatcher exposes the store mutations this step may trigger.
type Dispatcher interface {
	SetBucketInfo(orgID, name, id string)
	AddPluginBundleWithPlugins(bundle dataloaders.BundleName)
	RemovePluginBundleWithPlugins(bundle dataloaders.BundleName)
}

// StateProps is the projected store state.
type StateProps struct {
	Bucket          string
	TelegrafPlugins []dataloaders.TelegrafPlugin
	PluginBundles   []dataloaders.BundleName
}

// Props are the inputs handed down by the parent wizard.
type Props struct {
	OrgID                       string
	Buckets                     []dataloaders.Bucket
	OnIncrementCurrentStepIndex func()

	State    StateReader
	Dispatch Dispatcher
}

// NextButtonStatus decides whether the wizard may advance past this step.
func NextButtonStatus(buckets []dataloaders.Bucket, plugins []dataloaders.TelegrafPlugin) ComponentStatus {
	if len(buckets) == 0 {
		return StatusDisabled
	}
	if len(plugins) == 0 {
		return StatusDisabled
	}
	return StatusDefault
}
