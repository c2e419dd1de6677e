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

package i2c_test

import (
	"sync"
	"testing"

	"gopherway/curated"
	"gopherway/hardware/i2c"
	"gopherway/test"
)

// recordDevice implements the i2c.Device interface and records every call in
// order. The mutex is required because block transfer bytes arrive from the
// transfer goroutine.
type recordDevice struct {
	crit sync.Mutex

	log  []string
	data []uint8
}

func (dev *recordDevice) Address() uint8 {
	return 0x3c
}

func (dev *recordDevice) Start() {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.log = append(dev.log, "start")
}

func (dev *recordDevice) WriteByte(data uint8) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.log = append(dev.log, "data")
	dev.data = append(dev.data, data)
}

func (dev *recordDevice) Stop() {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.log = append(dev.log, "stop")
}

func TestTransaction(t *testing.T) {
	bus := i2c.NewBus()
	dev := &recordDevice{}
	bus.Attach(dev)

	test.ExpectedSuccess(t, bus.Start(0x78))
	test.ExpectedSuccess(t, bus.Write(0x00))
	test.ExpectedSuccess(t, bus.Write(0xaf))
	bus.Stop()

	test.Equate(t, len(dev.log), 4)
	test.Equate(t, dev.log[0], "start")
	test.Equate(t, dev.log[3], "stop")
	test.Equate(t, dev.data[0], 0x00)
	test.Equate(t, dev.data[1], 0xaf)
}

func TestNoAcknowledgement(t *testing.T) {
	bus := i2c.NewBus()

	// no device attached
	err := bus.Start(0x78)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, i2c.NoAck), true)

	// wrong address
	bus.Attach(&recordDevice{})
	err = bus.Start(0x7a)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, i2c.NoAck), true)

	// right address
	test.ExpectedSuccess(t, bus.Start(0x78))
}

func TestReadRejected(t *testing.T) {
	bus := i2c.NewBus()
	bus.Attach(&recordDevice{})

	// direction bit set
	test.ExpectedFailure(t, bus.Start(0x79))
}

func TestTransactionGuards(t *testing.T) {
	bus := i2c.NewBus()
	dev := &recordDevice{}
	bus.Attach(dev)

	// write and transfer need an open transaction
	test.ExpectedFailure(t, bus.Write(0x00))
	test.ExpectedFailure(t, bus.WriteBuffer([]uint8{0x00}))

	// a stop on an idle bus does nothing
	bus.Stop()
	test.Equate(t, len(dev.log), 0)

	// a second start without a stop fails
	test.ExpectedSuccess(t, bus.Start(0x78))
	test.ExpectedFailure(t, bus.Start(0x78))
}

func TestBlockTransfer(t *testing.T) {
	bus := i2c.NewBus()
	dev := &recordDevice{}
	bus.Attach(dev)

	buf := []uint8{0x01, 0x02, 0x03, 0x04}

	test.ExpectedSuccess(t, bus.Start(0x78))
	test.ExpectedSuccess(t, bus.Write(0x40))
	test.ExpectedSuccess(t, bus.WriteBuffer(buf))

	bus.WaitTransfer()
	test.Equate(t, bus.InFlight(), false)

	// start, control byte, four transfer bytes, stop from the completion
	// handler
	test.Equate(t, len(dev.log), 7)
	test.Equate(t, dev.log[0], "start")
	test.Equate(t, dev.log[6], "stop")
	test.Equate(t, len(dev.data), 5)
	test.Equate(t, dev.data[0], 0x40)
	test.Equate(t, dev.data[4], 0x04)
}

func TestStartWaitsForTransfer(t *testing.T) {
	bus := i2c.NewBus()
	dev := &recordDevice{}
	bus.Attach(dev)

	buf := make([]uint8, 1024)

	test.ExpectedSuccess(t, bus.Start(0x78))
	test.ExpectedSuccess(t, bus.WriteBuffer(buf))

	// the next start must block until the completion handler has issued the
	// stop condition. when it returns, the device must have seen the whole
	// transfer
	test.ExpectedSuccess(t, bus.Start(0x78))
	bus.Stop()

	dev.crit.Lock()
	defer dev.crit.Unlock()

	test.Equate(t, len(dev.data), 1024)

	// sequence: start, 1024 bytes, stop, start, stop
	test.Equate(t, len(dev.log), 1028)
	test.Equate(t, dev.log[1025], "stop")
	test.Equate(t, dev.log[1026], "start")
	test.Equate(t, dev.log[1027], "stop")
}

// gateDevice is a recordDevice whose WriteByte blocks until the gate is
// opened. It holds a block transfer in flight for as long as a test needs.
type gateDevice struct {
	recordDevice
	gate chan struct{}
}

func (dev *gateDevice) WriteByte(data uint8) {
	<-dev.gate
	dev.recordDevice.WriteByte(data)
}

func TestSingleTransferInFlight(t *testing.T) {
	bus := i2c.NewBus()
	dev := &gateDevice{gate: make(chan struct{})}
	bus.Attach(dev)

	test.ExpectedSuccess(t, bus.Start(0x78))
	test.ExpectedSuccess(t, bus.WriteBuffer(make([]uint8, 4)))

	// with the device gated the transfer is still in flight. a second
	// transfer or a blocking write behind it is a firmware bug
	test.Equate(t, bus.InFlight(), true)
	test.ExpectedFailure(t, bus.WriteBuffer(make([]uint8, 1)))
	test.ExpectedFailure(t, bus.Write(0x00))

	close(dev.gate)
	bus.WaitTransfer()
	test.Equate(t, bus.InFlight(), false)
}
