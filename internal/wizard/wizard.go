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

// Package wizard is the terminal UI that walks the user through choosing a
// bucket and data collectors and produces a telegraf.conf.
package wizard

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/datawiz/internal/config"
	"github.com/cloud-exit/datawiz/internal/generate"
	"github.com/cloud-exit/datawiz/internal/store"
)

// ErrCancelled is returned when the user quits before confirming.
var ErrCancelled = errors.New("setup cancelled")

// Result holds what the wizard produced for the caller to persist.
type Result struct {
	State    store.State
	Config   []byte // rendered telegraf.conf
	Path     string // where Config should be written
	Plugins  int
	Bucket   string
	OrgID    string
	BucketID string
}

// Run executes the wizard TUI over st. The store is left holding the final
// state whether or not the user confirms, so the caller can save a draft.
func Run(ctx context.Context, cfg *config.Config, st *store.Store) (*Result, error) {
	p := tea.NewProgram(NewModel(cfg, st), tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	wm := finalModel.(Model)
	if wm.Cancelled() || !wm.Confirmed() {
		return nil, ErrCancelled
	}
	return Finish(cfg, wm.Result())
}

// Finish renders the telegraf config for a completed state.
func Finish(cfg *config.Config, st store.State) (*Result, error) {
	data, err := generate.Render(TelegrafOptions(cfg, st))
	if err != nil {
		return nil, fmt.Errorf("rendering telegraf config: %w", err)
	}

	path := cfg.Telegraf.ConfigPath
	if path == "" {
		path = config.DefaultTelegrafConfigPath()
	}
	steps := st.DataLoading.Steps
	return &Result{
		State:    st,
		Config:   data,
		Path:     path,
		Plugins:  len(st.DataLoading.DataLoaders.TelegrafPlugins),
		Bucket:   steps.Bucket,
		OrgID:    steps.OrgID,
		BucketID: steps.BucketID,
	}, nil
}

// TelegrafOptions maps configuration and wizard state to generator input.
func TelegrafOptions(cfg *config.Config, st store.State) generate.Options {
	org := cfg.Influx.OrgName
	if org == "" {
		org = st.DataLoading.Steps.OrgID
	}
	return generate.Options{
		InfluxURL:     cfg.Influx.URL,
		TokenEnv:      cfg.TokenEnvOrDefault(),
		Organization:  org,
		Bucket:        st.DataLoading.Steps.Bucket,
		Interval:      cfg.Telegraf.Interval,
		FlushInterval: cfg.Telegraf.FlushInterval,
		Plugins:       st.DataLoading.DataLoaders.TelegrafPlugins,
	}
}

// ResumeState prepares a saved draft for another run. A draft saved after
// confirmation reopens on the review step, and one without a bucket can not
// sit past the bucket step.
func ResumeState(st store.State) store.State {
	steps := &st.DataLoading.Steps
	if steps.CurrentStepIndex > int(stepReview) {
		steps.CurrentStepIndex = int(stepReview)
	}
	if steps.Bucket == "" && steps.CurrentStepIndex > int(stepBucket) {
		steps.CurrentStepIndex = int(stepBucket)
	}
	if steps.CurrentStepIndex < 0 {
		steps.CurrentStepIndex = 0
	}
	return st
}
