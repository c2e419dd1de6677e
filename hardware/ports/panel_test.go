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

package ports_test

import (
	"testing"

	"gopherway/hardware/ports"
	"gopherway/test"
)

func TestPanel(t *testing.T) {
	pnl := ports.NewPanel()

	// the button line idles high
	test.Equate(t, pnl.ACT(), false)

	pnl.SetACT(true)
	test.Equate(t, pnl.ACT(), true)
	test.Equate(t, pnl.ACT(), true)

	pnl.SetACT(false)
	test.Equate(t, pnl.ACT(), false)
}
