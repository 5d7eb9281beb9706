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

package wizard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-exit/datawiz/internal/collectors"
)

// ButtonState is the visual state of a navigation button.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonDisabled
	ButtonFocused
)

// Button is a single entry in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// onboardingButtons builds the Back/Next pair for a step. Next takes its
// enablement from status and is focused when autoFocusNext is set and it is
// enabled.
func onboardingButtons(backEnabled bool, bv collectors.ButtonsView, nextLabel string) []Button {
	back := Button{Label: "← Back", State: ButtonNormal}
	if !backEnabled {
		back.State = ButtonDisabled
	}

	next := Button{Label: nextLabel, State: ButtonNormal}
	switch {
	case bv.NextStatus == collectors.StatusDisabled:
		next.State = ButtonDisabled
	case bv.AutoFocusNext:
		next.State = ButtonFocused
	}
	return []Button{back, next}
}

// renderButtons draws the buttons centered within width.
func renderButtons(buttons []Button, width int) string {
	if len(buttons) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, buttonDisabledStyle.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, buttonFocusedStyle.Render(btn.Label))
		default:
			rendered = append(rendered, buttonStyle.Render(btn.Label))
		}
	}

	bar := strings.Join(rendered, "")
	if width <= 0 {
		return bar
	}
	return lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Center, bar)
}
