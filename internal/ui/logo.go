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

package ui

import (
	"fmt"
	"strings"
)

var logoLines = []string{
	"  ____        _    __        ___     ",
	" |  _ \\  __ _| |_ __ \\      / (_)____",
	" | | | |/ _` | __/ _` \\ /\\ / /| |_  /",
	" | |_| | (_| | || (_| |\\ V  V / | |/ / ",
	" |____/ \\__,_|\\__\\__,_| \\_/\\_/  |_/___|",
}

// LogoText returns the DataWiz ASCII logo without colors.
func LogoText() string {
	return strings.Join(logoLines, "\n")
}

// Logo prints the DataWiz logo with tagline.
func Logo() {
	fmt.Fprint(Out, Cyan)
	fmt.Fprintln(Out, LogoText())
	fmt.Fprint(Out, NC)
	fmt.Fprintf(Out, "%sTelegraf data collectors, configured from your terminal%s\n", Dim, NC)
}
