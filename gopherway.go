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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"gopherway/conway"
	"gopherway/display"
	"gopherway/display/renderers"
	"gopherway/display/sdldisplay"
	"gopherway/display/termdisplay"
	"gopherway/emulation"
	"gopherway/hardware"
	"gopherway/logger"
	"gopherway/modalflag"
	"gopherway/performance"
	"gopherway/statsview"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// screen is the view of a GUI seen by the emulation side of the program.
type screen interface {
	display.PixelRenderer

	// PendingQuit returns true once the user has asked the GUI to close.
	PendingQuit() bool
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			// if a gui has been created then call Service()
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "TERM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, sync)

	case "TERM":
		err = term(md, sync)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	scaling := md.AddFloat64("scale", 0.0, "display scaling")
	fpsCap := md.AddBool("fpscap", true, "cap fps to bus transfer rate")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	seed := md.AddUint("seed", uint(conway.DefaultSeed), "initial value for the random number generator")
	frames := md.AddString("frames", "", "write every frame as a PNG image to the named directory")
	stats := md.AddBool("stats", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	con, err := hardware.NewConsole(uint32(*seed))
	if err != nil {
		return err
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdldisplay.NewSdlDisplay(float32(*scaling), con.Panel)
	}

	// wait for creator result
	var scr screen
	select {
	case g := <-sync.creation:
		scr = g.(screen)
	case err := <-sync.creationError:
		return err
	}

	con.AddPixelRenderer(scr)

	if *frames != "" {
		imw, err := renderers.NewImageWriter(*frames)
		if err != nil {
			return err
		}
		con.AddPixelRenderer(imw)
	}

	return run(con, scr, *fpsCap)
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	fpsCap := md.AddBool("fpscap", true, "cap fps to bus transfer rate")
	seed := md.AddUint("seed", uint(conway.DefaultSeed), "initial value for the random number generator")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the log would fight with the terminal renderer for the same screen
	logger.SetEcho(nil)

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	con, err := hardware.NewConsole(uint32(*seed))
	if err != nil {
		return err
	}

	// the terminal renderer has no main-thread requirement but routing it
	// through the creator channel means the main() function takes care of
	// restoring the terminal attributes on quit or interrupt
	sync.creator <- func() (GuiCreator, error) {
		return termdisplay.NewTermDisplay(con.Panel)
	}

	var scr screen
	select {
	case g := <-sync.creation:
		scr = g.(screen)
	case err := <-sync.creationError:
		return err
	}

	con.AddPixelRenderer(scr)

	return run(con, scr, *fpsCap)
}

// run the console until the screen asks to quit. common to the play and term
// modes.
func run(con *hardware.Console, scr screen, fpsCap bool) error {
	lmtr := display.NewLimiter(display.BusFPS)
	lmtr.SetActive(fpsCap)

	if err := con.PowerOn(); err != nil {
		return err
	}

	return con.Run(func() (emulation.State, error) {
		lmtr.Wait()
		if scr.PendingQuit() {
			return emulation.Ending, nil
		}
		return emulation.Running, nil
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through profiler (cpu, mem, trace, all)")
	uncapped := md.AddBool("uncapped", true, "run as fast as possible")
	seed := md.AddUint("seed", uint(conway.DefaultSeed), "initial value for the random number generator")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, *duration, *uncapped, uint32(*seed))
}
