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

package conway

// DefaultSeed is the value the firmware seeds its pseudo random number
// generator with at power on. The original uses its "game start code" for
// this.
const DefaultSeed = 0xbeefaffe

// Rand is the firmware's pseudo random number generator: a 32-bit state
// advanced by a shift-and-xor mix on every call. It is nothing like a good
// source of randomness but it is cheap, deterministic and scatters cells
// well enough for a start pattern.
//
// The generator is seeded once and never reseeded, which makes the whole
// run a pure function of the seed.
type Rand struct {
	state uint32
}

// NewRand is the preferred method of initialisation for the Rand type.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Next advances the generator and returns a value in the range [0, max).
func (rnd *Rand) Next(max uint32) uint32 {
	rnd.state = rnd.state<<16 | (rnd.state<<1^rnd.state<<2)>>16
	return rnd.state % max
}
