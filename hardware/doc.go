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

// Package hardware is the base package for the console emulation. The
// Console type is the root: it wires the serial bus, the display controller
// on the bus, the input panel and the firmware together, and its Run()
// function is the emulation's main loop.
//
// Everything required for a headless emulation lives here and in the
// sub-packages. Presentation is attached from outside through the
// display.PixelRenderer interface.
package hardware
