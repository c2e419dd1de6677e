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

// Grid geometry. The display is 128x64 pixels packed eight vertical pixels
// per byte, giving eight page-rows of 128 bytes. The first page-row holds
// the title banner; the simulation plays on the remaining seven, so the
// active region is 56 pixel rows tall.
const (
	Width        = 128
	ActiveHeight = 56

	// byte sizes of the two buffers. the committed buffer is the full frame
	// (header page-row plus active region); the working buffer holds the
	// active region only
	committedSize = Width * 8
	workingSize   = Width * ActiveHeight / 8
)

// SeedCells is the number of random cell placements a reset makes. Since
// the same cell can be picked twice the resulting population can be
// slightly lower.
const SeedCells = 768

// FrameStore is the double screen buffer at the centre of the firmware.
//
// The committed buffer is the frame currently shown: it is what the
// transmitter streams to the display and what the automaton engine reads as
// the previous generation. The working buffer is the scratch the next
// generation is written into. Promote() makes the working buffer visible by
// copying it into the committed buffer's active region.
//
// All buffers are fixed size value arrays. Nothing in this package
// allocates after the FrameStore itself has been created.
type FrameStore struct {
	committed [committedSize]uint8
	working   [workingSize]uint8

	rnd *Rand
}

// NewFrameStore is the preferred method of initialisation for the
// FrameStore type.
func NewFrameStore(seed uint32) *FrameStore {
	return &FrameStore{
		rnd: NewRand(seed),
	}
}

// GetCell reads the cell at (x, y) of the active region from the committed
// buffer. Returns 1 for a live cell and 0 for a dead cell, so results can
// be summed directly when counting neighbours.
//
// x wraps modulo the grid width; the grid is a torus horizontally. y is
// handled with two sentinel checks rather than modulo: the row above the
// active region reads as the bottom row and the row below reads as the top
// row. The active region's height doesn't lend itself to the same masking
// trick as the width and the neighbour counting only ever reaches one row
// out of range, so the two checks are all that is needed.
func (fs *FrameStore) GetCell(x int, y int) uint8 {
	x &= Width - 1
	if y == -1 {
		y = ActiveHeight - 1
	}
	if y == ActiveHeight {
		y = 0
	}
	return (fs.committed[(y>>3)*Width+Width+x] >> uint(y&0x07)) & 0x01
}

// SetCell sets the cell at (x, y) of the active region in the working
// buffer. Cells are only ever set, never cleared; the working buffer starts
// every generation zeroed.
func (fs *FrameStore) SetCell(x int, y int) {
	fs.working[(y>>3)*Width+x] |= 0x01 << uint(y&0x07)
}

// Promote copies the working buffer into the committed buffer's active
// region. Promoting twice without an intervening generation is harmless; it
// copies the same bytes again.
//
// The caller is responsible for making sure no transfer of the committed
// buffer is in flight. Program.Cycle() waits on the bus before every
// promotion.
func (fs *FrameStore) Promote() {
	copy(fs.committed[Width:], fs.working[:])
}

// Reset the simulation to a fresh start screen: the working buffer is
// cleared and reseeded with SeedCells random cells, promoted, and the title
// banner written into the header page-row.
func (fs *FrameStore) Reset() {
	fs.clearWorking()
	for i := SeedCells; i > 0; i-- {
		fs.SetCell(int(fs.rnd.Next(Width)), int(fs.rnd.Next(ActiveHeight)))
	}
	fs.Promote()
	copy(fs.committed[:len(TitleGlyph)], TitleGlyph[:])
}

// Committed returns the full committed buffer, header included, in display
// page order. This is the view the transmitter streams to the display; the
// slice aliases the buffer itself so the ownership rules for a block
// transfer apply.
func (fs *FrameStore) Committed() []uint8 {
	return fs.committed[:]
}

func (fs *FrameStore) clearWorking() {
	for i := range fs.working {
		fs.working[i] = 0x00
	}
}
