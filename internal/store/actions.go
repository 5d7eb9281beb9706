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

package store

import "github.com/cloud-exit/datawiz/internal/dataloaders"

// Action is a state mutation understood by Reduce.
type Action interface {
	actionType() string
}

// SetBucketInfo records the bucket telegraf will write to.
type SetBucketInfo struct {
	OrgID string
	Name  string
	ID    string
}

// AddPluginBundle adds a bundle and the plugins it implies.
type AddPluginBundle struct {
	Bundle dataloaders.BundleName
}

// RemovePluginBundle removes a bundle and the plugins only it provided.
type RemovePluginBundle struct {
	Bundle dataloaders.BundleName
}

// IncrementStep moves the wizard forward one step.
type IncrementStep struct{}

// DecrementStep moves the wizard back one step.
type DecrementStep struct{}

// SetStep jumps to a specific step index.
type SetStep struct {
	Index int
}

// Reset replaces the whole state.
type Reset struct {
	State State
}

func (SetBucketInfo) actionType() string      { return "SET_BUCKET_INFO" }
func (AddPluginBundle) actionType() string    { return "ADD_PLUGIN_BUNDLE" }
func (RemovePluginBundle) actionType() string { return "REMOVE_PLUGIN_BUNDLE" }
func (IncrementStep) actionType() string      { return "INCREMENT_CURRENT_STEP_INDEX" }
func (DecrementStep) actionType() string      { return "DECREMENT_CURRENT_STEP_INDEX" }
func (SetStep) actionType() string            { return "SET_CURRENT_STEP_INDEX" }
func (Reset) actionType() string              { return "RESET" }

// ActionType returns the wire name of an action, used in debug logs.
func ActionType(a Action) string {
	return a.actionType()
}

// Reduce returns the state that results from applying a to s. s is not modified.
func Reduce(s State, a Action) State {
	out := s.Clone()
	steps := &out.DataLoading.Steps
	dl := &out.DataLoading.DataLoaders

	switch a := a.(type) {
	case SetBucketInfo:
		steps.OrgID = a.OrgID
		steps.Bucket = a.Name
		steps.BucketID = a.ID
	case AddPluginBundle:
		if dataloaders.PluginsForBundle(a.Bundle) == nil {
			return out
		}
		if !dataloaders.ContainsBundle(dl.PluginBundles, a.Bundle) {
			dl.PluginBundles = append(dl.PluginBundles, a.Bundle)
		}
		for _, name := range dataloaders.PluginsForBundle(a.Bundle) {
			if !hasPlugin(dl.TelegrafPlugins, name) {
				dl.TelegrafPlugins = append(dl.TelegrafPlugins, dataloaders.NewTelegrafPlugin(name))
			}
		}
	case RemovePluginBundle:
		dl.PluginBundles = removeBundle(dl.PluginBundles, a.Bundle)
		keep := pluginsOf(dl.PluginBundles)
		drop := make(map[string]bool)
		for _, name := range dataloaders.PluginsForBundle(a.Bundle) {
			if !keep[name] {
				drop[name] = true
			}
		}
		var plugins []dataloaders.TelegrafPlugin
		for _, p := range dl.TelegrafPlugins {
			if !drop[p.Name] {
				plugins = append(plugins, p)
			}
		}
		dl.TelegrafPlugins = plugins
	case IncrementStep:
		steps.CurrentStepIndex++
	case DecrementStep:
		if steps.CurrentStepIndex > 0 {
			steps.CurrentStepIndex--
		}
	case SetStep:
		if a.Index >= 0 {
			steps.CurrentStepIndex = a.Index
		}
	case Reset:
		return a.State.Clone()
	}
	return out
}

func hasPlugin(plugins []dataloaders.TelegrafPlugin, name string) bool {
	for _, p := range plugins {
		if p.Name == name {
			return true
		}
	}
	return false
}

func removeBundle(list []dataloaders.BundleName, b dataloaders.BundleName) []dataloaders.BundleName {
	var out []dataloaders.BundleName
	for _, x := range list {
		if x != b {
			out = append(out, x)
		}
	}
	return out
}

func pluginsOf(bundles []dataloaders.BundleName) map[string]bool {
	set := make(map[string]bool)
	for _, b := range bundles {
		for _, name := range dataloaders.PluginsForBundle(b) {
			set[name] = true
		}
	}
	return set
}
