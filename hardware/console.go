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
	"gopherway/conway"
	"gopherway/curated"
	"gopherway/display"
	"gopherway/hardware/i2c"
	"gopherway/hardware/oled"
	"gopherway/hardware/ports"
	"gopherway/logger"
)

// Console is the main container for the emulated components of the
// handheld: the serial bus, the display controller attached to it, the
// input panel and the Conway firmware.
type Console struct {
	Bus      *i2c.Bus
	OLED     *oled.OLED
	Panel    *ports.Panel
	Firmware *conway.Program
}

// NewConsole creates a new Console and everything associated with the
// hardware.
func NewConsole(seed uint32) (*Console, error) {
	con := &Console{
		Bus:   i2c.NewBus(),
		OLED:  oled.NewOLED(),
		Panel: ports.NewPanel(),
	}

	con.Bus.Attach(con.OLED)

	con.Firmware = conway.NewProgram(con.Bus, con.Panel, seed)
	if con.Firmware == nil {
		return nil, curated.Errorf("console: can't create firmware")
	}

	logger.Logf("console", "created (seed %#08x)", seed)

	return con, nil
}

// AddPixelRenderer attaches a renderer to the emulated display.
func (con *Console) AddPixelRenderer(rend display.PixelRenderer) {
	con.OLED.AddRenderer(rend)
}

// PowerOn the console: the firmware seeds its start screen and initialises
// the display controller.
func (con *Console) PowerOn() error {
	return con.Firmware.PowerOn()
}
