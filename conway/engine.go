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

// generation computes the next state of every cell in the active region
// into the working buffer. The committed buffer is only read, which is what
// allows the computation to overlap an in-flight transfer of the same
// buffer.
//
// Every cell is visited and all eight neighbours counted every time. No
// dirty region tracking, no shortcuts; the grid is small enough that the
// straight scan is fast even on the real console's modest clock.
func (fs *FrameStore) generation() {
	fs.clearWorking()

	for y := 0; y < ActiveHeight; y++ {
		for x := 0; x < Width; x++ {
			neighbours := fs.GetCell(x-1, y-1) +
				fs.GetCell(x, y-1) +
				fs.GetCell(x+1, y-1) +
				fs.GetCell(x-1, y) +
				fs.GetCell(x+1, y) +
				fs.GetCell(x-1, y+1) +
				fs.GetCell(x, y+1) +
				fs.GetCell(x+1, y+1)

			if fs.GetCell(x, y) == 0x01 {
				// survival on two or three neighbours
				if neighbours >= 2 && neighbours <= 3 {
					fs.SetCell(x, y)
				}
			} else if neighbours == 3 {
				// birth on exactly three neighbours
				fs.SetCell(x, y)
			}
		}
	}
}

// Step advances the simulation one generation: the next state is computed
// into the working buffer and immediately promoted.
//
// The firmware's run loop doesn't use Step() directly; it separates the
// computation from the promotion so the bus wait can sit between them. But
// compute-then-promote is the complete contract of a simulation step and
// this is the function to use when there is no concurrent transfer to
// worry about.
func (fs *FrameStore) Step() {
	fs.generation()
	fs.Promote()
}
