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

import (
	"sync"

	"github.com/cloud-exit/datawiz/internal/collectors"
	"github.com/cloud-exit/datawiz/internal/dataloaders"
	"github.com/cloud-exit/datawiz/internal/ui"
)

var (
	_ collectors.StateReader = (*Store)(nil)
	_ collectors.Dispatcher  = (*Store)(nil)
)

// Store serializes actions against a single State and notifies subscribers
// after each one.
type Store struct {
	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	nextID int

	// dispatchMu keeps notification order equal to dispatch order.
	dispatchMu sync.Mutex
}

// New creates a store holding a copy of initial.
func New(initial State) *Store {
	return &Store{
		state: initial.Clone(),
		subs:  make(map[int]func(State)),
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies a and then calls every subscriber with the new state.
// Subscribers run on the calling goroutine, outside the state lock, so they
// may read the store but must not dispatch.
func (s *Store) Dispatch(a Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state.Clone()
	subs := make([]func(State), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	ui.Debugf("store: %s", ActionType(a))
	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers fn for state updates and returns a function that
// removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Projection maps the full state to what the collectors step reads.
func Projection(st State) collectors.StateProps {
	dl := st.DataLoading.DataLoaders
	return collectors.StateProps{
		Bucket:          st.DataLoading.Steps.Bucket,
		TelegrafPlugins: dl.TelegrafPlugins,
		PluginBundles:   dl.PluginBundles,
	}
}

func (s *Store) Bucket() string {
	return Projection(s.State()).Bucket
}

func (s *Store) TelegrafPlugins() []dataloaders.TelegrafPlugin {
	return Projection(s.State()).TelegrafPlugins
}

func (s *Store) PluginBundles() []dataloaders.BundleName {
	return Projection(s.State()).PluginBundles
}

func (s *Store) SetBucketInfo(orgID, name, id string) {
	s.Dispatch(SetBucketInfo{OrgID: orgID, Name: name, ID: id})
}

func (s *Store) AddPluginBundleWithPlugins(bundle dataloaders.BundleName) {
	s.Dispatch(AddPluginBundle{Bundle: bundle})
}

func (s *Store) RemovePluginBundleWithPlugins(bundle dataloaders.BundleName) {
	s.Dispatch(RemovePluginBundle{Bundle: bundle})
}

// IncrementCurrentStepIndex advances the wizard position.
func (s *Store) IncrementCurrentStepIndex() {
	s.Dispatch(IncrementStep{})
}

// DecrementCurrentStepIndex moves the wizard position back, stopping at zero.
func (s *Store) DecrementCurrentStepIndex() {
	s.Dispatch(DecrementStep{})
}
