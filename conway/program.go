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

// the program's state machine. there is no terminal state; the loop runs
// until the power is pulled.
type state int

const (
	stateReset state = iota
	stateRunning
)

// Input is the view of the console's input surface required by the
// firmware. The ports.Panel type implements it.
type Input interface {
	// poll the ACT button. true while the button is held
	ACT() bool
}

// Program is the Conway firmware's top level: the state machine that ties
// the frame store, the automaton engine and the transmitter together.
type Program struct {
	// Store is exported so that tests and diagnostic tooling can inspect
	// the frame the program is showing
	Store *FrameStore

	bus   Transport
	input Input
	trm   *Transmitter
	state state
}

// NewProgram is the preferred method of initialisation for the Program
// type.
func NewProgram(bus Transport, input Input, seed uint32) *Program {
	return &Program{
		Store: NewFrameStore(seed),
		bus:   bus,
		input: input,
		trm:   NewTransmitter(bus),
		state: stateReset,
	}
}

// PowerOn performs the firmware's bring-up: the start screen is seeded and
// the display controller initialised. The original does these in the same
// order, game state before peripherals.
func (prg *Program) PowerOn() error {
	prg.Store.Reset()
	prg.state = stateRunning

	if err := prg.trm.Init(); err != nil {
		return curated.Errorf("conway: %v", err)
	}

	return nil
}

// Cycle runs one pass of the firmware's forever loop: poll the button,
// reset or advance the simulation, transmit the frame.
//
// The automaton engine runs while the previous frame's transfer is still in
// flight; that is the point of the double buffer. The committed buffer is
// only mutated (by Reset or Promote) after WaitTransfer() confirms the bus
// has finished reading it. The transfer started at the end of the cycle
// then overlaps with the computation in the next.
func (prg *Program) Cycle() error {
	if prg.input.ACT() {
		prg.state = stateReset
	}

	switch prg.state {
	case stateReset:
		prg.bus.WaitTransfer()
		prg.Store.Reset()
		prg.state = stateRunning

	case stateRunning:
		prg.Store.generation()
		prg.bus.WaitTransfer()
		prg.Store.Promote()
	}

	if err := prg.trm.Transmit(prg.Store.Committed()); err != nil {
		return curated.Errorf("conway: %v", err)
	}

	return nil
}
