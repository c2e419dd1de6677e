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

// Package termdisplay shows the OLED panel in a terminal: two pixel rows
// per character cell, drawn with unicode half-blocks. Useful over ssh and
// anywhere SDL isn't available.
//
// The terminal is put into cbreak mode (via "github.com/pkg/term/termios")
// so that keys arrive unbuffered: space presses the ACT button, q or ctrl-c
// quits. A goroutine reads the input; frames arrive from the bus transfer
// goroutine and are drawn immediately on EndFrame().
package termdisplay

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"gopherway/curated"
	"gopherway/display"
	"gopherway/hardware/ports"
)

// terminal control sequences.
const (
	cursorHome = "\x1b[H"
	cursorHide = "\x1b[?25l"
	cursorShow = "\x1b[?25h"
	clearTerm  = "\x1b[2J"
)

// half-block characters indexed by (bottomPixel<<1 | topPixel).
var blocks = [4]rune{' ', '▀', '▄', '█'}

// how long a key press holds the ACT line low. the terminal gives us key
// presses, not key state, so a press is released on a timer; long enough
// for the firmware to poll the line at least once at any sensible frame
// rate.
const keyHold = 100 * time.Millisecond

// TermDisplay is the raw-terminal implementation of a
// display.PixelRenderer.
type TermDisplay struct {
	input  *os.File
	output *os.File

	// terminal attributes at startup, restored by Destroy()
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	panel *ports.Panel

	// pixels only ever touched by the renderer callbacks
	pixels [display.Height][display.Width]bool

	// whether the user has asked to quit. accessed atomically
	quit int32

	// ends the key reading goroutine
	endReader chan bool
}

// NewTermDisplay is the preferred method of initialisation for the
// TermDisplay type. The terminal is claimed until Destroy() is called.
func NewTermDisplay(panel *ports.Panel) (*TermDisplay, error) {
	scr := &TermDisplay{
		input:     os.Stdin,
		output:    os.Stdout,
		panel:     panel,
		endReader: make(chan bool),
	}

	if err := termios.Tcgetattr(scr.input.Fd(), &scr.canAttr); err != nil {
		return nil, curated.Errorf("termdisplay: %v", err)
	}
	scr.cbreakAttr = scr.canAttr
	termios.Cfmakecbreak(&scr.cbreakAttr)

	if err := termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.cbreakAttr); err != nil {
		return nil, curated.Errorf("termdisplay: %v", err)
	}

	scr.output.WriteString(cursorHide)
	scr.output.WriteString(clearTerm)

	go scr.readKeys()

	return scr, nil
}

// readKeys runs as a goroutine, polling the input file one byte at a time.
func (scr *TermDisplay) readKeys() {
	buf := make([]byte, 1)
	for {
		select {
		case <-scr.endReader:
			return
		default:
		}

		n, err := scr.input.Read(buf)
		if err != nil || n == 0 {
			continue
		}

		switch buf[0] {
		case ' ':
			scr.panel.SetACT(true)
			time.AfterFunc(keyHold, func() {
				scr.panel.SetACT(false)
			})
		case 'q', 0x03: // ctrl-c arrives as a plain byte in cbreak mode
			atomic.StoreInt32(&scr.quit, 1)
		}
	}
}

// PendingQuit returns true once the user has pressed q or ctrl-c.
func (scr *TermDisplay) PendingQuit() bool {
	return atomic.LoadInt32(&scr.quit) == 1
}

// Service implements the GuiCreator interface. The terminal needs no main
// thread servicing; input is handled by the reading goroutine.
func (scr *TermDisplay) Service() {
}

// Destroy restores the terminal to the state it was found in.
func (scr *TermDisplay) Destroy(output io.Writer) {
	close(scr.endReader)

	if err := termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.canAttr); err != nil {
		io.WriteString(output, err.Error())
	}
	scr.output.WriteString(cursorShow)
	scr.output.WriteString("\n")
}

// NewFrame implements the display.PixelRenderer interface.
func (scr *TermDisplay) NewFrame(frame int) error {
	return nil
}

// SetPixel implements the display.PixelRenderer interface.
func (scr *TermDisplay) SetPixel(x, y int, on bool) error {
	scr.pixels[y][x] = on
	return nil
}

// EndFrame implements the display.PixelRenderer interface. The frame is
// drawn over the previous one with a home-cursor redraw; no flicker, no
// scrollback spam.
func (scr *TermDisplay) EndFrame() error {
	s := strings.Builder{}
	s.WriteString(cursorHome)

	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			b := 0
			if scr.pixels[y][x] {
				b |= 0x01
			}
			if scr.pixels[y+1][x] {
				b |= 0x02
			}
			s.WriteRune(blocks[b])
		}
		s.WriteString("\r\n")
	}

	if _, err := scr.output.WriteString(s.String()); err != nil {
		return curated.Errorf("termdisplay: %v", err)
	}

	return nil
}
