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

package conway_test

import (
	"testing"

	"gopherway/conway"
	"gopherway/test"
)

// population counts every live cell in the active region.
func population(fs *conway.FrameStore) int {
	pop := 0
	for y := 0; y < conway.ActiveHeight; y++ {
		for x := 0; x < conway.Width; x++ {
			pop += int(fs.GetCell(x, y))
		}
	}
	return pop
}

func TestLoneCellDies(t *testing.T) {
	fs := conway.NewFrameStore(conway.DefaultSeed)

	fs.SetCell(20, 20)
	fs.Promote()
	fs.Step()

	test.Equate(t, population(fs), 0)
}

func TestBlockIsStable(t *testing.T) {
	fs := conway.NewFrameStore(conway.DefaultSeed)

	// the 2x2 block is a still life
	fs.SetCell(30, 30)
	fs.SetCell(31, 30)
	fs.SetCell(30, 31)
	fs.SetCell(31, 31)
	fs.Promote()

	for i := 0; i < 5; i++ {
		fs.Step()

		test.Equate(t, fs.GetCell(30, 30), 1)
		test.Equate(t, fs.GetCell(31, 30), 1)
		test.Equate(t, fs.GetCell(30, 31), 1)
		test.Equate(t, fs.GetCell(31, 31), 1)
		test.Equate(t, population(fs), 4)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	fs := conway.NewFrameStore(conway.DefaultSeed)

	// horizontal blinker centred on (50, 25)
	fs.SetCell(49, 25)
	fs.SetCell(50, 25)
	fs.SetCell(51, 25)
	fs.Promote()

	fs.Step()

	// flips to vertical
	test.Equate(t, fs.GetCell(50, 24), 1)
	test.Equate(t, fs.GetCell(50, 25), 1)
	test.Equate(t, fs.GetCell(50, 26), 1)
	test.Equate(t, fs.GetCell(49, 25), 0)
	test.Equate(t, fs.GetCell(51, 25), 0)
	test.Equate(t, population(fs), 3)

	fs.Step()

	// and back to horizontal
	test.Equate(t, fs.GetCell(49, 25), 1)
	test.Equate(t, fs.GetCell(50, 25), 1)
	test.Equate(t, fs.GetCell(51, 25), 1)
	test.Equate(t, fs.GetCell(50, 24), 0)
	test.Equate(t, fs.GetCell(50, 26), 0)
	test.Equate(t, population(fs), 3)
}

func TestBlinkerAcrossSeam(t *testing.T) {
	fs := conway.NewFrameStore(conway.DefaultSeed)

	// horizontal blinker straddling the horizontal wrap
	fs.SetCell(127, 30)
	fs.SetCell(0, 30)
	fs.SetCell(1, 30)
	fs.Promote()

	fs.Step()

	// flips to vertical on the wrap column
	test.Equate(t, fs.GetCell(0, 29), 1)
	test.Equate(t, fs.GetCell(0, 30), 1)
	test.Equate(t, fs.GetCell(0, 31), 1)
	test.Equate(t, fs.GetCell(127, 30), 0)
	test.Equate(t, fs.GetCell(1, 30), 0)
	test.Equate(t, population(fs), 3)
}

func TestTopAndBottomRowsInteract(t *testing.T) {
	fs := conway.NewFrameStore(conway.DefaultSeed)

	// a vertical blinker straddling the top edge. the row above the active
	// region reads as the bottom row so this behaves like a torus vertically
	// too
	fs.SetCell(60, 55)
	fs.SetCell(60, 0)
	fs.SetCell(60, 1)
	fs.Promote()

	fs.Step()

	test.Equate(t, fs.GetCell(59, 0), 1)
	test.Equate(t, fs.GetCell(60, 0), 1)
	test.Equate(t, fs.GetCell(61, 0), 1)
	test.Equate(t, fs.GetCell(60, 55), 0)
	test.Equate(t, fs.GetCell(60, 1), 0)
	test.Equate(t, population(fs), 3)
}

func TestStepDeterminism(t *testing.T) {
	a := conway.NewFrameStore(conway.DefaultSeed)
	b := conway.NewFrameStore(conway.DefaultSeed)
	a.Reset()
	b.Reset()

	for i := 0; i < 50; i++ {
		a.Step()
		b.Step()
	}

	fa := a.Committed()
	fb := b.Committed()
	for i := range fa {
		if fa[i] != fb[i] {
			t.Fatalf("same seed diverged after 50 generations (byte %d)", i)
		}
	}
}
