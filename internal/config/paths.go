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

import (
	"os"
	"path/filepath"
	"runtime"
)

// XDG-compliant paths for datawiz configuration and data.
var (
	// Home is the configuration directory (~/.config/datawiz).
	Home string
	// Data is the data directory (~/.local/share/datawiz).
	Data string
)

// configOverride is set by --config.
var configOverride string

func init() {
	Home = filepath.Join(xdgConfig(), "datawiz")
	Data = filepath.Join(xdgData(), "datawiz")
}

func xdgConfig() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if v := os.Getenv("APPDATA"); v != "" {
			return v
		}
	}
	return filepath.Join(homeDir(), ".config")
}

func xdgData() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if v := os.Getenv("LOCALAPPDATA"); v != "" {
			return v
		}
	}
	return filepath.Join(homeDir(), ".local", "share")
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

// SetConfigFile overrides the config.yaml location. An empty path restores
// the default.
func SetConfigFile(path string) {
	configOverride = path
}

// ConfigFile returns the path to config.yaml.
func ConfigFile() string {
	if configOverride != "" {
		return configOverride
	}
	return filepath.Join(Home, "config.yaml")
}

// DraftsDir returns the BadgerDB directory holding wizard drafts.
func DraftsDir() string {
	return filepath.Join(Data, "drafts")
}

// DefaultTelegrafConfigPath is where telegraf.conf is written unless configured.
func DefaultTelegrafConfigPath() string {
	return filepath.Join(Home, "telegraf.conf")
}
