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

// TitleGlyph is the banner shown in the header page-row: "CONWAY'S GAME OF
// LIFE" in a five pixel font, pre-rendered as display page bytes. It is
// written once on every reset and the simulation never touches it.
var TitleGlyph = [...]uint8{
	0x00, 0x3e, 0x41, 0x41, 0x41, 0x22, 0x00, 0x3e, 0x41, 0x41, 0x41, 0x3e,
	0x00, 0x7f, 0x04, 0x08, 0x10, 0x7f, 0x00, 0x3f, 0x40, 0x38, 0x40, 0x3f,
	0x00, 0x7c, 0x12, 0x11, 0x12, 0x7c, 0x00, 0x07, 0x08, 0x70, 0x08, 0x07,
	0x00, 0x00, 0x05, 0x03, 0x00, 0x00, 0x00, 0x46, 0x49, 0x49, 0x49, 0x31,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3e, 0x41, 0x49, 0x49, 0x7a,
	0x00, 0x7c, 0x12, 0x11, 0x12, 0x7c, 0x00, 0x7f, 0x02, 0x0c, 0x02, 0x7f,
	0x00, 0x7f, 0x49, 0x49, 0x49, 0x41, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x3e, 0x41, 0x41, 0x41, 0x3e, 0x00, 0x7f, 0x09, 0x09, 0x09, 0x01,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7f, 0x40, 0x40, 0x40, 0x40,
	0x00, 0x00, 0x41, 0x7f, 0x41, 0x00, 0x00, 0x7f, 0x09, 0x09, 0x09, 0x01,
	0x00, 0x7f, 0x49, 0x49, 0x49, 0x41,
}
