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

package renderers_test

import (
	"testing"

	"gopherway/display/renderers"
	"gopherway/test"
)

func TestDigestChaining(t *testing.T) {
	dig := renderers.NewDigest()

	test.ExpectedSuccess(t, dig.NewFrame(1))
	test.ExpectedSuccess(t, dig.SetPixel(10, 10, true))
	test.ExpectedSuccess(t, dig.EndFrame())
	one := dig.Hash()

	// the same picture again produces a different digest because the
	// previous digest is folded in
	test.ExpectedSuccess(t, dig.NewFrame(2))
	test.ExpectedSuccess(t, dig.EndFrame())
	two := dig.Hash()
	test.Equate(t, one == two, false)

	test.Equate(t, dig.Frame(), 2)

	// an identical sequence arrives at an identical digest
	rep := renderers.NewDigest()
	test.ExpectedSuccess(t, rep.NewFrame(1))
	test.ExpectedSuccess(t, rep.SetPixel(10, 10, true))
	test.ExpectedSuccess(t, rep.EndFrame())
	test.ExpectedSuccess(t, rep.NewFrame(2))
	test.ExpectedSuccess(t, rep.EndFrame())
	test.Equate(t, dig.Hash(), rep.Hash())
}
