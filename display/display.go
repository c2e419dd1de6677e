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

// Package display defines the interface between the emulated OLED and
// anything that wants to show (or otherwise work with) the pictures the
// firmware produces.
//
// Implementations that display visual information:
//
//   - sdldisplay (a desktop window)
//   - termdisplay (a raw terminal)
//
// Implementations that only work with the visual information:
//
//   - renderers.Digest
//   - renderers.ImageWriter
package display

// Monochrome display dimensions. Every PixelRenderer implementation can rely
// on SetPixel() only ever being called with coordinates inside these bounds.
const (
	Width  = 128
	Height = 64
)

// PixelRenderer implementations work with the visual information pushed from
// the emulated display device.
//
// A frame is delivered as a call to NewFrame(), followed by a SetPixel() for
// every pixel on the display, followed by a call to EndFrame(). Renderers
// that present the frame somewhere should do so on EndFrame().
//
// Note that frames are pushed from the bus transfer goroutine and not from
// the main flow. Renderers that share state with another thread of control
// (the SDL renderer for example, which can only touch SDL resources on the
// main thread) must arrange their own protection.
type PixelRenderer interface {
	NewFrame(frame int) error
	SetPixel(x, y int, on bool) error
	EndFrame() error
}
