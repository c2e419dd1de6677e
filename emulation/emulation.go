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

// Package emulation defines the types that describe the emulation at its
// highest level. It exists as its own package so that the hardware package
// and the packages that drive it (main, performance) can share these types
// without circular imports.
package emulation

// State indicates the emulation's state.
type State int

// List of possible emulation states. Values are ordered so that order
// comparisons are meaningful. For example, Running is "greater than" Paused.
const (
	Initialising State = iota
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "initialising"
	case Paused:
		return "paused"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return "unknown"
}
