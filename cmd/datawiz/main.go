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

// datawiz configures a Telegraf agent for an InfluxDB bucket.
//
// Usage:
//
//	datawiz                              # run the setup wizard
//	datawiz generate --bundle system     # write telegraf.conf non-interactively
//	datawiz bundles                      # list plugin bundles
//	datawiz drafts [--clear ORG]         # list or clear saved drafts
package main

import "github.com/cloud-exit/datawiz/cmd"

func main() {
	cmd.Execute()
}
