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

// Package i2c emulates the console's two-wire serial bus and the block
// transfer engine attached to it.
//
// The real hardware is an I2C master peripheral fed by a DMA channel: the
// firmware programs the channel with a buffer address and length, enables
// the transfer request, and carries on computing while the hardware clocks
// the buffer out. An interrupt fires when the last byte has been handed to
// the bus engine and the interrupt handler issues the stop condition.
//
// The hosted version reproduces the shape of that contract rather than the
// register interface. WriteBuffer() streams the buffer to the attached
// device from its own goroutine (the stand-in for the DMA engine and its
// interrupt context) and the completion handler runs there. The main flow
// can test for a transfer with InFlight() and block on its completion with
// WaitTransfer(); Start() performs the same wait internally, which is the
// hosted rendition of the "wait until bus idle" spin in the original.
package i2c
