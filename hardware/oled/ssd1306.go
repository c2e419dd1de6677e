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

package oled

import (
	"gopherway/display"
	"gopherway/logger"
)

// Address is the SSD1306's 7-bit bus address.
const Address = 0x3c

// control bytes. the first byte of every transaction selects whether the
// payload is a command stream or a data stream.
const (
	ctrlCommand = 0x00
	ctrlData    = 0x40
)

// display memory geometry.
const (
	columns = display.Width
	pages   = display.Height / 8
)

// transaction mode.
type mode int

const (
	modeAwaitControl mode = iota
	modeCommand
	modeData
)

// OLED emulates the SSD1306 display controller. It implements the
// i2c.Device interface.
//
// Exported read functions (Pixel, DisplayOn, etc) are for the benefit of
// tests and diagnostics. They are not synchronised against an in-flight
// block transfer; callers must wait for the transfer to complete first.
type OLED struct {
	gram [pages * columns]uint8

	// current transaction
	mode      mode
	dataCount int

	// command decode. a command byte with a non-zero argument count parks
	// itself in pending until all arguments have arrived
	pending  uint8
	argsLeft int
	args     [2]uint8

	// addressing pointers and ranges (horizontal addressing mode)
	addrMode  uint8
	col       int
	page      int
	colStart  int
	colEnd    int
	pageStart int
	pageEnd   int

	// panel configuration
	displayOn  bool
	chargePump bool
	remap      bool // segment remap (A1): column 0 on the right edge when unset
	scanDec    bool // COM scan direction (C8): page 0 at the bottom when unset

	renderers []display.PixelRenderer
	frameNum  int
}

// NewOLED is the preferred method of initialisation for the OLED type.
func NewOLED() *OLED {
	dsp := &OLED{}
	dsp.colEnd = columns - 1
	dsp.pageEnd = pages - 1
	return dsp
}

// AddRenderer attaches a pixel renderer to the display. Renderers receive
// the frame at the end of every data transaction while the display is on.
func (dsp *OLED) AddRenderer(rend display.PixelRenderer) {
	dsp.renderers = append(dsp.renderers, rend)
}

// Address implements the i2c.Device interface.
func (dsp *OLED) Address() uint8 {
	return Address
}

// Start implements the i2c.Device interface.
func (dsp *OLED) Start() {
	dsp.mode = modeAwaitControl
	dsp.dataCount = 0
}

// WriteByte implements the i2c.Device interface.
func (dsp *OLED) WriteByte(data uint8) {
	switch dsp.mode {
	case modeAwaitControl:
		switch data {
		case ctrlCommand:
			dsp.mode = modeCommand
		case ctrlData:
			dsp.mode = modeData
		default:
			// continuation bits are not used by the firmware. treat anything
			// unrecognised as a command stream
			logger.Logf("ssd1306", "unrecognised control byte %#02x", data)
			dsp.mode = modeCommand
		}

	case modeCommand:
		dsp.command(data)

	case modeData:
		dsp.data(data)
	}
}

// Stop implements the i2c.Device interface.
func (dsp *OLED) Stop() {
	if dsp.mode == modeData && dsp.dataCount > 0 {
		if dsp.dataCount != pages*columns {
			logger.Logf("ssd1306", "partial frame update (%d bytes)", dsp.dataCount)
		}
		if dsp.displayOn {
			dsp.push()
		}
	}
	dsp.mode = modeAwaitControl
}

// command decodes one byte of a command stream.
func (dsp *OLED) command(data uint8) {
	// argument for a previously seen command
	if dsp.argsLeft > 0 {
		dsp.args[len(dsp.args)-dsp.argsLeft] = data
		dsp.argsLeft--
		if dsp.argsLeft == 0 {
			dsp.commit()
		}
		return
	}

	switch {
	case data == 0xa8: // multiplex ratio
		dsp.await(data, 1)
	case data == 0x8d: // charge pump
		dsp.await(data, 1)
	case data == 0x20: // memory addressing mode
		dsp.await(data, 1)
	case data == 0x21: // column start/end
		dsp.await(data, 2)
	case data == 0x22: // page start/end
		dsp.await(data, 2)
	case data == 0xda: // COM pins configuration
		dsp.await(data, 1)
	case data == 0x81: // contrast
		dsp.await(data, 1)
	case data == 0xd3: // display offset
		dsp.await(data, 1)
	case data == 0xd5: // display clock divide
		dsp.await(data, 1)
	case data == 0xd9: // pre-charge period
		dsp.await(data, 1)
	case data == 0xdb: // VCOMH deselect level
		dsp.await(data, 1)
	case data == 0xa0:
		dsp.remap = false
	case data == 0xa1:
		dsp.remap = true
	case data == 0xc0:
		dsp.scanDec = false
	case data == 0xc8:
		dsp.scanDec = true
	case data == 0xae:
		dsp.displayOn = false
		logger.Log("ssd1306", "display off")
	case data == 0xaf:
		dsp.displayOn = true
		logger.Log("ssd1306", "display on")
	case data >= 0x40 && data <= 0x7f: // display start line
	case data == 0xa4 || data == 0xa5: // entire display on/off
	case data == 0xa6 || data == 0xa7: // normal/inverse
	case data == 0x2e || data == 0x2f: // scroll deactivate/activate
	default:
		logger.Logf("ssd1306", "unknown command %#02x", data)
	}
}

// await the stated number of argument bytes before committing the command.
func (dsp *OLED) await(cmd uint8, args int) {
	dsp.pending = cmd
	dsp.argsLeft = args
}

// commit a command once all of its arguments have arrived.
func (dsp *OLED) commit() {
	switch dsp.pending {
	case 0x20:
		dsp.addrMode = dsp.args[0]
		if dsp.addrMode != 0x00 {
			// the firmware only ever uses horizontal addressing
			logger.Logf("ssd1306", "unsupported addressing mode %#02x", dsp.addrMode)
		}
	case 0x21:
		dsp.colStart = int(dsp.args[0]) & (columns - 1)
		dsp.colEnd = int(dsp.args[1]) & (columns - 1)
		dsp.col = dsp.colStart
	case 0x22:
		dsp.pageStart = int(dsp.args[0]) & (pages - 1)
		dsp.pageEnd = int(dsp.args[1]) & (pages - 1)
		dsp.page = dsp.pageStart
	case 0x8d:
		dsp.chargePump = dsp.args[0] == 0x14
	case 0xa8, 0xda, 0x81, 0xd3, 0xd5, 0xd9, 0xdb:
		// accepted but the emulation has no use for the value
	}
}

// data writes one byte of a data stream into display memory and advances the
// addressing pointers.
func (dsp *OLED) data(data uint8) {
	dsp.gram[dsp.page*columns+dsp.col] = data
	dsp.dataCount++

	// horizontal addressing: column advances first, wrapping into the next
	// page; the page wraps back to the start of the window
	dsp.col++
	if dsp.col > dsp.colEnd {
		dsp.col = dsp.colStart
		dsp.page++
		if dsp.page > dsp.pageEnd {
			dsp.page = dsp.pageStart
		}
	}
}

// push the current frame to all attached renderers.
//
// This runs on whichever goroutine delivered the final byte of the data
// transaction. For a block transfer that is the transfer goroutine, which is
// the hosted equivalent of pixels arriving outside the firmware's control.
func (dsp *OLED) push() {
	dsp.frameNum++

	for _, rend := range dsp.renderers {
		if err := rend.NewFrame(dsp.frameNum); err != nil {
			logger.Logf("ssd1306", "renderer: %v", err)
			continue
		}

		for y := 0; y < display.Height; y++ {
			for x := 0; x < display.Width; x++ {
				if err := rend.SetPixel(x, y, dsp.Pixel(x, y)); err != nil {
					logger.Logf("ssd1306", "renderer: %v", err)
				}
			}
		}

		if err := rend.EndFrame(); err != nil {
			logger.Logf("ssd1306", "renderer: %v", err)
		}
	}
}

// Pixel returns the visible state of the pixel at the panel coordinate
// (x, y), with the segment remap and COM scan direction applied. The
// firmware's A1/C8 configuration makes the mapping the identity: page 0 at
// the top of the panel, column 0 on the left.
func (dsp *OLED) Pixel(x, y int) bool {
	if !dsp.remap {
		x = columns - 1 - x
	}
	if !dsp.scanDec {
		y = display.Height - 1 - y
	}
	return (dsp.gram[(y/8)*columns+x]>>(y%8))&0x01 == 0x01
}

// DisplayOn returns true if the panel has been switched on.
func (dsp *OLED) DisplayOn() bool {
	return dsp.displayOn
}

// Frame returns the number of frames pushed to renderers so far.
func (dsp *OLED) Frame() int {
	return dsp.frameNum
}
