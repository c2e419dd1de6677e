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

// Package conway is the console's cellular automaton firmware: John Conway's
// Game of Life played on the lower seven page-rows of the display, under a
// static title banner.
//
// The package divides the same way the original program does:
//
//   - FrameStore: the double screen buffer. A committed buffer holding the
//     frame being shown (and transmitted), and a working buffer the next
//     generation is computed into. Promotion copies working into the
//     committed buffer's active region.
//
//   - the automaton engine: Step() reads the committed buffer with the wrap
//     policy applied and writes survivors and births into the working
//     buffer.
//
//   - Transmitter: pushes the committed buffer to the display, using the
//     bus's block transfer engine so that the push overlaps with the next
//     generation's computation.
//
//   - Program: the top level state machine. RESET seeds a fresh random
//     pattern; RUNNING advances one generation per cycle; the frame is
//     transmitted unconditionally after either.
//
// The one deliberate departure from the original is that promotion
// explicitly waits for any in-flight transfer before touching the committed
// buffer. The original relies on the structure of its loop for the same
// guarantee; here the ordering is an enforced invariant of Program.Cycle()
// and is tested as such.
package conway
