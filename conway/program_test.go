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

package conway_test

import (
	"testing"

	"gopherway/conway"
	"gopherway/curated"
	"gopherway/test"
)

// transaction is the record of one addressed write on the fake bus.
type transaction struct {
	addr    uint8
	payload []uint8
}

// fakeBus implements the conway.Transport interface. A block transfer stays
// "in flight" until the next WaitTransfer() call, which is when the buffer is
// read. The snapshot taken when the transfer starts is compared against the
// buffer at that point; any difference means the program mutated memory it
// had handed to the bus.
type fakeBus struct {
	open     bool
	inFlight bool

	buf  []uint8
	snap []uint8

	transactions []transaction
	mutated      bool
}

func (bus *fakeBus) Start(addr uint8) error {
	bus.WaitTransfer()

	if bus.open {
		return curated.Errorf("fake: transaction already open")
	}
	bus.open = true
	bus.transactions = append(bus.transactions, transaction{addr: addr})

	return nil
}

func (bus *fakeBus) Write(data uint8) error {
	if !bus.open {
		return curated.Errorf("fake: no open transaction")
	}

	cur := &bus.transactions[len(bus.transactions)-1]
	cur.payload = append(cur.payload, data)

	return nil
}

func (bus *fakeBus) Stop() {
	bus.open = false
}

func (bus *fakeBus) WriteBuffer(buf []uint8) error {
	if !bus.open {
		return curated.Errorf("fake: no open transaction")
	}
	if bus.inFlight {
		return curated.Errorf("fake: transfer already in flight")
	}

	bus.inFlight = true
	bus.buf = buf
	bus.snap = append([]uint8(nil), buf...)

	return nil
}

func (bus *fakeBus) InFlight() bool {
	return bus.inFlight
}

func (bus *fakeBus) WaitTransfer() {
	if !bus.inFlight {
		return
	}

	for i := range bus.buf {
		if bus.buf[i] != bus.snap[i] {
			bus.mutated = true
			break
		}
	}

	cur := &bus.transactions[len(bus.transactions)-1]
	cur.payload = append(cur.payload, bus.snap...)

	bus.inFlight = false
	bus.open = false
}

// flush completes any outstanding transfer so the recorded transactions can
// be inspected.
func (bus *fakeBus) flush() {
	bus.WaitTransfer()
}

// fakePanel implements the conway.Input interface.
type fakePanel struct {
	pressed bool
}

func (pnl *fakePanel) ACT() bool {
	return pnl.pressed
}

func TestPowerOnSendsInit(t *testing.T) {
	bus := &fakeBus{}
	prg := conway.NewProgram(bus, &fakePanel{}, conway.DefaultSeed)

	test.ExpectedSuccess(t, prg.PowerOn())
	bus.flush()

	test.Equate(t, len(bus.transactions), 1)

	trn := bus.transactions[0]
	test.Equate(t, trn.addr, conway.DisplayAddress)

	// command mode followed by the controller bring-up, ending in display on
	test.Equate(t, trn.payload[0], 0x00)
	test.Equate(t, trn.payload[1], 0xa8)
	test.Equate(t, trn.payload[len(trn.payload)-1], 0xaf)
}

func TestCycleTransmitsFrame(t *testing.T) {
	bus := &fakeBus{}
	prg := conway.NewProgram(bus, &fakePanel{}, conway.DefaultSeed)

	test.ExpectedSuccess(t, prg.PowerOn())
	test.ExpectedSuccess(t, prg.Cycle())
	bus.flush()

	test.Equate(t, len(bus.transactions), 2)

	trn := bus.transactions[1]
	test.Equate(t, trn.addr, conway.DisplayAddress)

	// data mode followed by a full frame
	test.Equate(t, trn.payload[0], 0x40)
	test.Equate(t, len(trn.payload), 1+conway.Width*8)

	// the header page-row carries the title banner in every frame
	for i := range conway.TitleGlyph {
		test.Equate(t, trn.payload[1+i], conway.TitleGlyph[i])
	}
}

func TestNoMutationDuringTransfer(t *testing.T) {
	bus := &fakeBus{}
	prg := conway.NewProgram(bus, &fakePanel{}, conway.DefaultSeed)

	test.ExpectedSuccess(t, prg.PowerOn())
	for i := 0; i < 20; i++ {
		test.ExpectedSuccess(t, prg.Cycle())
	}
	bus.flush()

	// the program must not touch the committed buffer while the bus holds it
	test.Equate(t, bus.mutated, false)
}

func TestResetButton(t *testing.T) {
	bus := &fakeBus{}
	pnl := &fakePanel{}
	prg := conway.NewProgram(bus, pnl, conway.DefaultSeed)

	test.ExpectedSuccess(t, prg.PowerOn())
	for i := 0; i < 10; i++ {
		test.ExpectedSuccess(t, prg.Cycle())
	}

	// pressing the button resets the simulation in the following cycle
	pnl.pressed = true
	test.ExpectedSuccess(t, prg.Cycle())
	bus.flush()

	// the reset consumes the random number generator from where the power-on
	// reset left it, so the expected screen is the second reset of a store
	// seeded identically
	ref := conway.NewFrameStore(conway.DefaultSeed)
	ref.Reset()
	ref.Reset()

	trn := bus.transactions[len(bus.transactions)-1]
	frame := ref.Committed()
	for i := range frame {
		if trn.payload[1+i] != frame[i] {
			t.Fatalf("frame after reset does not match a fresh reset (byte %d)", i)
		}
	}
}

func TestFrameAdvancesPerCycle(t *testing.T) {
	bus := &fakeBus{}
	prg := conway.NewProgram(bus, &fakePanel{}, conway.DefaultSeed)

	test.ExpectedSuccess(t, prg.PowerOn())
	test.ExpectedSuccess(t, prg.Cycle())
	test.ExpectedSuccess(t, prg.Cycle())
	bus.flush()

	// the frame transmitted by the second cycle is one generation on from
	// the frame transmitted by the first
	ref := conway.NewFrameStore(conway.DefaultSeed)
	ref.Reset()
	ref.Step()

	trn := bus.transactions[1]
	frame := ref.Committed()
	for i := range frame {
		if trn.payload[1+i] != frame[i] {
			t.Fatalf("first transmitted frame is not the first generation (byte %d)", i)
		}
	}

	ref.Step()
	trn = bus.transactions[2]
	for i := range frame {
		if trn.payload[1+i] != frame[i] {
			t.Fatalf("second transmitted frame is not the second generation (byte %d)", i)
		}
	}
}
