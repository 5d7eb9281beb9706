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

// Package generate renders telegraf.conf from the wizard's selections.
package generate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cloud-exit/datawiz/internal/dataloaders"
)

// Options holds everything needed to render a telegraf config.
type Options struct {
	InfluxURL     string
	TokenEnv      string // env var holding the InfluxDB token, e.g. INFLUX_TOKEN
	Organization  string
	Bucket        string
	Interval      string
	FlushInterval string
	Plugins       []dataloaders.TelegrafPlugin
}

type agentSection struct {
	Interval          string `toml:"interval"`
	RoundInterval     bool   `toml:"round_interval"`
	MetricBatchSize   int    `toml:"metric_batch_size"`
	MetricBufferLimit int    `toml:"metric_buffer_limit"`
	CollectionJitter  string `toml:"collection_jitter"`
	FlushInterval     string `toml:"flush_interval"`
	FlushJitter       string `toml:"flush_jitter"`
	OmitHostname      bool   `toml:"omit_hostname"`
}

type document struct {
	Agent   agentSection                `toml:"agent"`
	Outputs map[string][]map[string]any `toml:"outputs"`
	Inputs  map[string][]map[string]any `toml:"inputs,omitempty"`
}

// pluginDefaults are the settings written for plugins that need an endpoint
// or have non-obvious defaults.
var pluginDefaults = map[string]map[string]any{
	"cpu": {
		"percpu":           true,
		"totalcpu":         true,
		"collect_cpu_time": false,
		"report_active":    false,
	},
	"disk": {
		"ignore_fs": []string{"tmpfs", "devtmpfs", "devfs", "iso9660", "overlay", "aufs", "squashfs"},
	},
	"docker":     {"endpoint": "unix:///var/run/docker.sock"},
	"kubernetes": {"url": "http://127.0.0.1:10255"},
	"nginx":      {"urls": []string{"http://localhost/server_status"}},
	"redis":      {"servers": []string{"tcp://localhost:6379"}},
}

const header = "# Telegraf configuration generated by datawiz.\n# Set %s before starting telegraf.\n\n"

// Render builds the telegraf.conf document.
func Render(opts Options) ([]byte, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("no bucket selected")
	}
	if len(opts.Plugins) == 0 {
		return nil, fmt.Errorf("no plugins selected")
	}
	tokenEnv := opts.TokenEnv
	if tokenEnv == "" {
		tokenEnv = "INFLUX_TOKEN"
	}

	doc := document{
		Agent: agentSection{
			Interval:          orDefault(opts.Interval, "10s"),
			RoundInterval:     true,
			MetricBatchSize:   1000,
			MetricBufferLimit: 10000,
			CollectionJitter:  "0s",
			FlushInterval:     orDefault(opts.FlushInterval, "10s"),
			FlushJitter:       "0s",
		},
		Outputs: map[string][]map[string]any{
			"influxdb_v2": {{
				"urls":         []string{orDefault(opts.InfluxURL, "http://localhost:8086")},
				"token":        "$" + tokenEnv,
				"organization": opts.Organization,
				"bucket":       opts.Bucket,
			}},
		},
		Inputs: make(map[string][]map[string]any),
	}

	for _, p := range opts.Plugins {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		if _, dup := doc.Inputs[name]; dup {
			continue
		}
		settings := make(map[string]any)
		for k, v := range pluginDefaults[name] {
			settings[k] = v
		}
		doc.Inputs[name] = []map[string]any{settings}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, header, tokenEnv)
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding telegraf config: %w", err)
	}
	return buf.Bytes(), nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// WriteConfig writes data to path, creating the parent directory.
func WriteConfig(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
