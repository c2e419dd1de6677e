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

func TestRandRange(t *testing.T) {
	rnd := conway.NewRand(conway.DefaultSeed)

	for i := 0; i < 10000; i++ {
		v := rnd.Next(conway.Width)
		if v >= conway.Width {
			t.Fatalf("Next(%d) returned %d", conway.Width, v)
		}
	}
}

func TestRandDeterminism(t *testing.T) {
	a := conway.NewRand(0xdeadbeef)
	b := conway.NewRand(0xdeadbeef)

	for i := 0; i < 1000; i++ {
		test.Equate(t, a.Next(conway.ActiveHeight), b.Next(conway.ActiveHeight))
	}
}

func TestRandSeedMatters(t *testing.T) {
	a := conway.NewRand(0x00000001)
	b := conway.NewRand(0x00000002)

	// the sequences will coincide occasionally but not everywhere
	same := true
	for i := 0; i < 100; i++ {
		if a.Next(conway.Width) != b.Next(conway.Width) {
			same = false
		}
	}
	test.Equate(t, same, false)
}
