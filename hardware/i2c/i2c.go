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

package i2c

import (
	"sync/atomic"

	"gopherway/curated"
	"gopherway/logger"
)

// NoAck is the error returned by Start() when no attached device matches the
// transmitted address.
const NoAck = "i2c: no acknowledgement from address %#02x"

// Device is any addressable slave on the bus.
//
// Start() is called when the device has acknowledged its address at the
// beginning of a write transaction; WriteByte() for every payload byte; and
// Stop() when the master signals the stop condition.
//
// A Device can rely on calls arriving in transaction order but not on which
// goroutine they arrive from. Bytes sent with Bus.Write() arrive from the
// main flow; bytes sent with Bus.WriteBuffer() arrive from the transfer
// goroutine, as does the Stop() issued by the completion handler.
type Device interface {
	Address() uint8
	Start()
	WriteByte(data uint8)
	Stop()
}

// Bus is the master engine for the two-wire serial bus. It supports a single
// attached device, write transactions only, and at most one block transfer
// in flight at any time. That is all the console's firmware requires.
type Bus struct {
	dev Device

	// whether an addressed transaction is open. written by the main flow in
	// Start() and by the completion handler in endTransfer(); the ordering
	// argument for why this is safe without a lock is in the comment for
	// WaitTransfer()
	open bool

	// the block transfer engine. accessed atomically
	inFlight int32

	// closed by the completion handler when the in-flight transfer has been
	// stopped. replaced on every call to WriteBuffer()
	transferEnd chan struct{}
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	bus := &Bus{
		transferEnd: make(chan struct{}),
	}

	// nothing in flight at power-on
	close(bus.transferEnd)

	return bus
}

// Attach a device to the bus. Any previously attached device is replaced.
func (bus *Bus) Attach(dev Device) {
	bus.dev = dev
	logger.Logf("i2c", "device attached at address %#02x", dev.Address())
}

// Start an addressed write transaction. The address argument carries the
// 7-bit device address in the upper bits and the direction bit in bit zero,
// as it appears on the wire.
//
// If a block transfer is in flight, Start() blocks until the transfer's
// completion handler has issued the stop condition. This is the equivalent
// of the original's wait on the bus busy flag.
func (bus *Bus) Start(addr uint8) error {
	bus.WaitTransfer()

	if addr&0x01 == 0x01 {
		return curated.Errorf("i2c: read transactions are not supported")
	}

	if bus.open {
		return curated.Errorf("i2c: start: transaction already open")
	}

	if bus.dev == nil || bus.dev.Address() != addr>>1 {
		return curated.Errorf(NoAck, addr)
	}

	bus.dev.Start()
	bus.open = true

	return nil
}

// Write a single byte to the open transaction. Blocking, although in the
// hosted model the transport is always immediately ready.
func (bus *Bus) Write(data uint8) error {
	if bus.InFlight() {
		return curated.Errorf("i2c: write: transfer in flight")
	}
	if !bus.open {
		return curated.Errorf("i2c: write: no open transaction")
	}

	bus.dev.WriteByte(data)

	return nil
}

// Stop the open transaction. A stop on an idle bus does nothing, which
// mirrors the original engine's guard on the read/write flag.
func (bus *Bus) Stop() {
	if !bus.open {
		return
	}
	bus.dev.Stop()
	bus.open = false
}

// WriteBuffer sends the buffer through the block transfer engine and returns
// immediately. Ownership of the buffer passes to the engine until the
// completion handler has run; the caller must not mutate it before then.
//
// The transaction is finished by the completion handler, not the caller. In
// particular the caller must not Write() or Stop() after WriteBuffer().
func (bus *Bus) WriteBuffer(buf []byte) error {
	if !bus.open {
		return curated.Errorf("i2c: transfer: no open transaction")
	}

	if !atomic.CompareAndSwapInt32(&bus.inFlight, 0, 1) {
		return curated.Errorf("i2c: transfer: already in flight")
	}

	bus.transferEnd = make(chan struct{})

	// the transfer goroutine stands in for the DMA engine; the tail of the
	// function, after the last byte, is the interrupt handler
	go func() {
		for _, b := range buf {
			bus.dev.WriteByte(b)
		}
		bus.endTransfer()
	}()

	return nil
}

// endTransfer is the completion handler for the block transfer engine. It
// finalises the transaction: in the original this is the interrupt handler
// that disables the transfer request, waits for the final byte's
// acknowledgement and raises the stop condition.
//
// It must never touch the transferred buffer's memory.
func (bus *Bus) endTransfer() {
	bus.dev.Stop()
	bus.open = false
	atomic.StoreInt32(&bus.inFlight, 0)
	close(bus.transferEnd)
}

// InFlight returns true if a block transfer has been started but its
// completion handler has not yet run.
func (bus *Bus) InFlight() bool {
	return atomic.LoadInt32(&bus.inFlight) == 1
}

// WaitTransfer blocks until the in-flight block transfer has been completed
// and stopped. Returns immediately if nothing is in flight.
//
// The channel close in the completion handler creates the happens-before
// edge that makes the handler's writes (including the open flag) visible to
// the main flow. Everything the main flow does to the bus after a transfer
// must therefore go through WaitTransfer(), and it does: Start() waits
// before anything else.
func (bus *Bus) WaitTransfer() {
	<-bus.transferEnd
}
