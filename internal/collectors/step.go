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

package collectors

import "github.com/cloud-exit/datawiz/internal/dataloaders"

const (
	Title    = "What do you want to monitor?"
	Subtitle = "Telegraf is a plugin-based data collection agent which writes metrics to a bucket in InfluxDB"
)

// View is the render output of the step. Selector is nil until a bucket has
// been chosen.
type View struct {
	Title    string
	Subtitle string
	Selector *SelectorView
	Buttons  ButtonsView
}

// SelectorView is what the streaming selector needs to draw itself.
type SelectorView struct {
	Buckets            []dataloaders.Bucket
	SelectedBucketName string
	PluginBundles      []dataloaders.BundleName
	TelegrafPlugins    []dataloaders.TelegrafPlugin

	OnSelectBucket       func(dataloaders.Bucket)
	OnTogglePluginBundle func(bundle dataloaders.BundleName, isSelected bool)
}

// ButtonsView configures the onboarding navigation buttons.
type ButtonsView struct {
	NextStatus    ComponentStatus
	AutoFocusNext bool
}

// Step is the select-collectors step. It holds no state of its own; every
// render reads through Props.State.
type Step struct {
	props Props
}

// NewStep returns a step bound to the given props.
func NewStep(props Props) *Step {
	return &Step{props: props}
}

// SetProps replaces the parent-supplied props, e.g. after the bucket list changes.
func (s *Step) SetProps(props Props) {
	s.props = props
}

// Props returns the current props.
func (s *Step) Props() Props {
	return s.props
}

func (s *Step) project() StateProps {
	if s.props.State == nil {
		return StateProps{}
	}
	return StateProps{
		Bucket:          s.props.State.Bucket(),
		TelegrafPlugins: s.props.State.TelegrafPlugins(),
		PluginBundles:   s.props.State.PluginBundles(),
	}
}

// NextButtonStatus evaluates the gating rule against current props and state.
func (s *Step) NextButtonStatus() ComponentStatus {
	return NextButtonStatus(s.props.Buckets, s.project().TelegrafPlugins)
}

// HandleSelectBucket records the chosen bucket in the store.
func (s *Step) HandleSelectBucket(bucket dataloaders.Bucket) {
	s.props.Dispatch.SetBucketInfo(bucket.OrgID, bucket.Name, bucket.ID)
}

// HandleTogglePluginBundle flips a bundle. isSelected is the state before the
// toggle: a selected bundle is removed, an unselected one is added.
func (s *Step) HandleTogglePluginBundle(bundle dataloaders.BundleName, isSelected bool) {
	if isSelected {
		s.props.Dispatch.RemovePluginBundleWithPlugins(bundle)
		return
	}
	s.props.Dispatch.AddPluginBundleWithPlugins(bundle)
}

// Submit advances the wizard when the next button is enabled and reports
// whether it did.
func (s *Step) Submit() bool {
	if s.NextButtonStatus() == StatusDisabled {
		return false
	}
	if s.props.OnIncrementCurrentStepIndex != nil {
		s.props.OnIncrementCurrentStepIndex()
	}
	return true
}

// Render composes the step view from the current projection.
func (s *Step) Render() View {
	st := s.project()
	v := View{
		Title:    Title,
		Subtitle: Subtitle,
		Buttons: ButtonsView{
			NextStatus:    NextButtonStatus(s.props.Buckets, st.TelegrafPlugins),
			AutoFocusNext: true,
		},
	}
	if st.Bucket != "" {
		v.Selector = &SelectorView{
			Buckets:              s.props.Buckets,
			SelectedBucketName:   st.Bucket,
			PluginBundles:        st.PluginBundles,
			TelegrafPlugins:      st.TelegrafPlugins,
			OnSelectBucket:       s.HandleSelectBucket,
			OnTogglePluginBundle: s.HandleTogglePluginBundle,
		}
	}
	return v
}
