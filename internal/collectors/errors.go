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

package collectors

import (
	"fmt"
	"runtime/debug"
)

// RenderError carries a panic recovered from a render function.
type RenderError struct {
	Value any
	Stack []byte
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render panic: %v", e.Value)
}

// ErrorHandling wraps render so that a panic is recovered and replaced by the
// fallback view built from the recovered error.
func ErrorHandling[V any](render func() V, fallback func(error) V) func() V {
	return func() (v V) {
		defer func() {
			if r := recover(); r != nil {
				v = fallback(&RenderError{Value: r, Stack: debug.Stack()})
			}
		}()
		return render()
	}
}
