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

package performance_test

import (
	"testing"

	"gopherway/performance"
	"gopherway/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(430, 10.0)
	test.Equate(t, int(fps), 43)
	test.Equate(t, int(accuracy), 100)

	fps, accuracy = performance.CalcFPS(215, 10.0)
	test.Equate(t, int(fps*2), 43)
	test.Equate(t, int(accuracy), 50)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileNone))

	p, err = performance.ParseProfileString("cpu")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileCPU))

	p, err = performance.ParseProfileString("cpu,mem")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileCPU|performance.ProfileMem))

	p, err = performance.ParseProfileString("all")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileAll))

	_, err = performance.ParseProfileString("cpu,what")
	test.ExpectedFailure(t, err)
}
