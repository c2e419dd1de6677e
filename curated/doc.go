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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and so can be used wherever
// a normal error is expected.
//
// Errors are created with the Errorf() function. Like fmt.Errorf() it takes
// a formatting pattern and placeholder values, but the pattern string also
// acts as the error's identity. The Is() function compares against the
// pattern, not against the formatted message:
//
//	e := curated.Errorf("ssd1306: unknown command: %#02x", c)
//
//	if curated.Is(e, "ssd1306: unknown command: %#02x") {
//		...
//	}
//
// Has() is like Is() but looks for the pattern anywhere in the error chain.
// This is how sentinel conditions (the user quitting a display window, for
// example) are passed up through the run loop without the intermediate
// layers needing to know about them.
package curated
