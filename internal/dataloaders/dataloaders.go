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

// Package dataloaders defines the buckets, Telegraf plugins, and plugin bundles
// offered by the collectors wizard.
package dataloaders

import (
	"fmt"
	"strings"
)

// Bucket is a data destination in an InfluxDB organization.
type Bucket struct {
	OrgID string `yaml:"org_id"`
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
}

// ConfigurationState describes whether a plugin has everything it needs to run.
type ConfigurationState string

const (
	Configured   ConfigurationState = "configured"
	Unconfigured ConfigurationState = "unconfigured"
	Invalid      ConfigurationState = "invalid"
)

// TelegrafPlugin is a single plugin selected for the generated agent config.
type TelegrafPlugin struct {
	Name       string             `yaml:"name"`
	Configured ConfigurationState `yaml:"configured"`
	Active     bool               `yaml:"active"`
}

// BundleName tags a predefined group of plugins that is toggled as a unit.
type BundleName string

const (
	BundleSystem     BundleName = "system"
	BundleDocker     BundleName = "docker"
	BundleKubernetes BundleName = "kubernetes"
	BundleNginx      BundleName = "nginx"
	BundleRedis      BundleName = "redis"
)

// bundleInfo describes a bundle for display and plugin expansion.
type bundleInfo struct {
	Name        BundleName
	DisplayName string
	Description string
	Plugins     []string
}

// allBundles is ordered the way bundles are listed in the selector.
var allBundles = []bundleInfo{
	{BundleSystem, "System", "CPU, memory, disk, network and process metrics of this host",
		[]string{"cpu", "disk", "diskio", "mem", "net", "processes", "swap", "system"}},
	{BundleDocker, "Docker", "Container stats from the Docker daemon", []string{"docker"}},
	{BundleKubernetes, "Kubernetes", "Pod and node metrics from the kubelet", []string{"kubernetes"}},
	{BundleNginx, "NGINX", "Connection metrics from the stub_status module", []string{"nginx"}},
	{BundleRedis, "Redis", "Server INFO metrics from Redis", []string{"redis"}},
}

// pluginsNeedingInput must be given endpoints before Telegraf can use them.
var pluginsNeedingInput = map[string]bool{
	"docker":     true,
	"kubernetes": true,
	"nginx":      true,
	"redis":      true,
}

// AllBundles returns every known bundle in display order.
func AllBundles() []BundleName {
	out := make([]BundleName, 0, len(allBundles))
	for _, b := range allBundles {
		out = append(out, b.Name)
	}
	return out
}

func lookup(b BundleName) (bundleInfo, bool) {
	for _, info := range allBundles {
		if info.Name == b {
			return info, true
		}
	}
	return bundleInfo{}, false
}

// PluginsForBundle returns the plugin names implied by a bundle, or nil for an
// unknown bundle.
func PluginsForBundle(b BundleName) []string {
	info, ok := lookup(b)
	if !ok {
		return nil
	}
	return append([]string(nil), info.Plugins...)
}

// DisplayName returns the human-readable bundle name.
func (b BundleName) DisplayName() string {
	if info, ok := lookup(b); ok {
		return info.DisplayName
	}
	return string(b)
}

// Description returns a one-line summary of what the bundle collects.
func (b BundleName) Description() string {
	if info, ok := lookup(b); ok {
		return info.Description
	}
	return ""
}

// ParseBundleName matches s case-insensitively against the known bundles.
func ParseBundleName(s string) (BundleName, error) {
	s = strings.TrimSpace(s)
	for _, info := range allBundles {
		if strings.EqualFold(string(info.Name), s) || strings.EqualFold(info.DisplayName, s) {
			return info.Name, nil
		}
	}
	return "", fmt.Errorf("unknown bundle %q", s)
}

// NewTelegrafPlugin returns a plugin in its initial configuration state.
func NewTelegrafPlugin(name string) TelegrafPlugin {
	state := Configured
	if pluginsNeedingInput[name] {
		state = Unconfigured
	}
	return TelegrafPlugin{Name: name, Configured: state}
}

// ContainsBundle reports whether b is in list.
func ContainsBundle(list []BundleName, b BundleName) bool {
	for _, x := range list {
		if x == b {
			return true
		}
	}
	return false
}

// PluginNames returns the names of plugins in order.
func PluginNames(plugins []TelegrafPlugin) []string {
	names := make([]string, 0, len(plugins))
	for _, p := range plugins {
		names = append(names, p.Name)
	}
	return names
}
