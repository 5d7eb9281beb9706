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

// Package ui provides terminal output: colors, leveled log lines, and the logo.
package ui

import (
	"os"

	"golang.org/x/term"
)

// ANSI color codes.
var (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[0;33m"
	Cyan   = "\033[0;36m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	NC     = "\033[0m" // No Color / Reset
)

func init() {
	if !isTerminal() {
		DisableColors()
	}
}

// DisableColors clears every color code, e.g. for --no-color or tests.
func DisableColors() {
	Red = ""
	Green = ""
	Yellow = ""
	Cyan = ""
	Bold = ""
	Dim = ""
	NC = ""
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether stdin is a terminal the wizard can drive.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
