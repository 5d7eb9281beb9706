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

package config

import "github.com/cloud-exit/datawiz/internal/dataloaders"

// Config is the top-level datawiz configuration (config.yaml).
type Config struct {
	Version  int            `yaml:"version"`
	Influx   InfluxConfig   `yaml:"influx"`
	Buckets  []BucketConfig `yaml:"buckets,omitempty"`
	Telegraf TelegrafConfig `yaml:"telegraf"`
	Settings SettingsConfig `yaml:"settings"`
}

// InfluxConfig describes the InfluxDB instance telegraf writes to.
type InfluxConfig struct {
	URL      string `yaml:"url"`
	OrgID    string `yaml:"org_id"`
	OrgName  string `yaml:"org_name,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"` // env var telegraf reads the token from
}

// BucketConfig is a bucket the user may send metrics to.
type BucketConfig struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	OrgID string `yaml:"org_id,omitempty"` // defaults to influx.org_id
}

// TelegrafConfig controls the generated telegraf.conf.
type TelegrafConfig struct {
	ConfigPath    string `yaml:"config_path"`
	Interval      string `yaml:"interval"`
	FlushInterval string `yaml:"flush_interval"`
}

// SettingsConfig holds wizard behaviour toggles.
type SettingsConfig struct {
	ResumeDrafts bool `yaml:"resume_drafts"`
}

// BucketList returns the configured buckets with missing org IDs filled in.
func (c *Config) BucketList() []dataloaders.Bucket {
	var out []dataloaders.Bucket
	for _, b := range c.Buckets {
		org := b.OrgID
		if org == "" {
			org = c.Influx.OrgID
		}
		out = append(out, dataloaders.Bucket{OrgID: org, ID: b.ID, Name: b.Name})
	}
	return out
}

// FindBucket returns the bucket named name, or false.
func (c *Config) FindBucket(name string) (dataloaders.Bucket, bool) {
	for _, b := range c.BucketList() {
		if b.Name == name {
			return b, true
		}
	}
	return dataloaders.Bucket{}, false
}

// TokenEnvOrDefault returns the token env var name, INFLUX_TOKEN if unset.
func (c *Config) TokenEnvOrDefault() string {
	if c.Influx.TokenEnv == "" {
		return "INFLUX_TOKEN"
	}
	return c.Influx.TokenEnv
}
