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

// Package oled emulates the SSD1306 monochrome display controller, as seen
// from the serial bus. The OLED type implements the i2c.Device interface and
// decodes transactions exactly as the real controller does: a control byte
// selecting command or data mode, followed by the payload.
//
// Display memory is organised as eight page-rows of 128 columns, one byte
// per column holding eight vertically stacked pixels. Data bytes land at the
// controller's addressing pointers, which advance according to horizontal
// addressing mode and the column/page ranges set by the firmware's
// initialisation sequence.
//
// The OLED does not present the picture itself. Instances of
// display.PixelRenderer are attached with AddRenderer() and receive the
// frame at the end of every data transaction, in the same way television
// implementations fan out to pixel renderers in other emulators.
package oled
