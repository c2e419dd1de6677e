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

package hardware

import (
	"gopherway/curated"
	"gopherway/emulation"
)

// Run the console until the continueCheck function says otherwise. The
// continueCheck is called after every firmware cycle, which is where the
// driving mode hooks in its frame rate limiting, duration checks and quit
// handling. A nil continueCheck runs forever, like the real hardware.
//
// The firmware itself has no way of stopping; an error from Run() comes
// from the emulation layers, not from the game.
func (con *Console) Run(continueCheck func() (emulation.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (emulation.State, error) {
			return emulation.Running, nil
		}
	}

	state := emulation.Running

	for state != emulation.Ending {
		switch state {
		case emulation.Running:
			if err := con.Firmware.Cycle(); err != nil {
				return err
			}
		case emulation.Paused:
			// nothing to do. the display keeps showing the last transmitted
			// frame, just like the real panel would
		default:
			return curated.Errorf("console: unsupported emulation state (%v) in Run() function", state)
		}

		var err error
		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the console for the specified number of firmware
// cycles. Useful for fps measurement and for tests that want a determined
// number of generations.
func (con *Console) RunForFrameCount(numFrames int, continueCheck func(frame int) (emulation.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (emulation.State, error) {
			return emulation.Running, nil
		}
	}

	for frame := 0; frame < numFrames; frame++ {
		if err := con.Firmware.Cycle(); err != nil {
			return err
		}

		state, err := continueCheck(frame)
		if err != nil {
			return err
		}
		if state == emulation.Ending {
			return nil
		}
	}

	return nil
}
