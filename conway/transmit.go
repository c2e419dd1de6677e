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

import (
	"gopherway/curated"
)

// Transport is the view of the serial bus required by the firmware. The
// i2c.Bus type implements it; tests substitute implementations that record
// calls and control completion timing.
type Transport interface {
	// begin an addressed write transaction. blocks while the bus is busy
	Start(addr uint8) error

	// blocking single byte write to the open transaction
	Write(data uint8) error

	// stop condition
	Stop()

	// non-blocking block transfer of the buffer. the transaction is finished
	// by the transfer's completion handler
	WriteBuffer(buf []uint8) error

	// whether a block transfer is in flight
	InFlight() bool

	// block until the in-flight transfer has completed and stopped
	WaitTransfer()
}

// DisplayAddress is the display's bus address as transmitted on the wire:
// the 7-bit device address shifted up with the write direction bit clear.
const DisplayAddress = 0x78

// control bytes sent as the first payload byte of every transaction.
const (
	commandMode = 0x00
	dataMode    = 0x40
)

// initSequence is the display controller bring-up, sent once at power on:
// multiplex ratio, charge pump enable, horizontal addressing over the full
// column and page range, COM pin configuration, a 180 degree flip to match
// how the panel is mounted, and display on.
var initSequence = []uint8{
	0xa8, 0x3f,
	0x8d, 0x14,
	0x20, 0x00,
	0x21, 0x00, 0x7f,
	0x22, 0x00, 0x3f,
	0xda, 0x12,
	0xa1, 0xc8,
	0xaf,
}

// Transmitter is the frame transmission driver: it owns the firmware's use
// of the serial bus.
type Transmitter struct {
	bus Transport
}

// NewTransmitter is the preferred method of initialisation for the
// Transmitter type.
func NewTransmitter(bus Transport) *Transmitter {
	return &Transmitter{bus: bus}
}

// Init sends the display controller's initialisation sequence. Like a frame
// transmission, the sequence goes out through the block transfer engine;
// the next Start() on the bus waits for it to finish.
func (trm *Transmitter) Init() error {
	if err := trm.bus.Start(DisplayAddress); err != nil {
		return curated.Errorf("transmit: init: %v", err)
	}
	if err := trm.bus.Write(commandMode); err != nil {
		return curated.Errorf("transmit: init: %v", err)
	}
	if err := trm.bus.WriteBuffer(initSequence); err != nil {
		return curated.Errorf("transmit: init: %v", err)
	}
	return nil
}

// Transmit streams a full frame to the display and returns without waiting
// for it to arrive. Ownership of the frame memory passes to the bus until
// the transfer's completion handler has run.
func (trm *Transmitter) Transmit(frame []uint8) error {
	if err := trm.bus.Start(DisplayAddress); err != nil {
		return curated.Errorf("transmit: %v", err)
	}
	if err := trm.bus.Write(dataMode); err != nil {
		return curated.Errorf("transmit: %v", err)
	}
	if err := trm.bus.WriteBuffer(frame); err != nil {
		return curated.Errorf("transmit: %v", err)
	}
	return nil
}
