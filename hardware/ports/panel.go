// This file is part of Gopherway.
//
// Gopherway is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherway is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherway.  If not, see <https://www.gnu.org/licenses/>.

// Package ports represents the console's input surface. The handheld has a
// single button of interest to this firmware: the ACT key, wired to a GPIO
// pin with the internal pull-up enabled, so the line reads low while the
// button is held.
package ports

import (
	"sync/atomic"
)

// Panel is the console's physical input. Event handling in the display
// implementations runs off the main flow, so the line state is atomic.
type Panel struct {
	// the state of the GPIO line, not of the button: zero when the button is
	// held (active low)
	actLine int32
}

// NewPanel is the preferred method of initialisation for the Panel type. The
// pull-up means the line idles high.
func NewPanel() *Panel {
	pan := &Panel{}
	pan.actLine = 1
	return pan
}

// SetACT presses or releases the ACT button.
func (pan *Panel) SetACT(pressed bool) {
	if pressed {
		atomic.StoreInt32(&pan.actLine, 0)
	} else {
		atomic.StoreInt32(&pan.actLine, 1)
	}
}

// ACT polls the button line once. Returns true while the button is held.
func (pan *Panel) ACT() bool {
	return atomic.LoadInt32(&pan.actLine) == 0
}
