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

// Package sdldisplay is the SDL implementation of the console's display: a
// desktop window showing the OLED panel, scaled up from its native 128x64.
//
// SDL requires that window management happens on the main thread, so the
// package follows the creator/service pattern: the window is created and
// its events serviced from the program's main goroutine while frames arrive
// from the bus transfer goroutine. The two meet at a mutex protected pixel
// buffer.
//
// The keyboard stands in for the console's input surface: space or return
// presses the ACT button and escape (or closing the window) ends the
// emulation.
package sdldisplay

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"

	"gopherway/curated"
	"gopherway/display"
	"gopherway/hardware/ports"
	"gopherway/logger"
)

const windowTitle = "Gopherway"

// IdealScale is the suggested scaling for the window. The OLED's native
// resolution is tiny on a modern desktop.
const IdealScale = 6.0

// number of bytes per pixel in the texture
const pixelDepth = 4

const pitch = display.Width * pixelDepth

// SdlDisplay is the SDL implementation of a display.PixelRenderer. It also
// satisfies the GuiCreator interface required by the main thread loop.
type SdlDisplay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	panel *ports.Panel

	// pixels are written by the renderer callbacks on the bus transfer
	// goroutine and uploaded to the texture on the main thread. the front
	// buffer and dirty flag are protected by crit; the back buffer is only
	// ever touched by the renderer callbacks
	crit   sync.Mutex
	front  []byte
	back   []byte
	dirty  bool

	// whether the user has asked to quit. accessed atomically
	quit int32
}

// NewSdlDisplay is the preferred method of initialisation for the
// SdlDisplay type. Must be called from the main thread.
func NewSdlDisplay(scale float32, panel *ports.Panel) (*SdlDisplay, error) {
	scr := &SdlDisplay{
		panel: panel,
		front: make([]byte, display.Width*display.Height*pixelDepth),
		back:  make([]byte, display.Width*display.Height*pixelDepth),
	}

	if scale <= 0.0 {
		scale = IdealScale
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	var err error

	scr.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(display.Width)*scale), int32(float32(display.Height)*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	// the renderer does the scaling; we always draw at native resolution
	if err := scr.renderer.SetLogicalSize(display.Width, display.Height); err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	// open with a dark panel
	scr.renderer.SetDrawColor(0, 0, 0, 255)
	scr.renderer.Clear()
	scr.renderer.Present()

	logger.Logf("sdldisplay", "window opened (scale %.1f)", scale)

	return scr, nil
}

// Service the SDL event queue and upload any freshly arrived frame. MUST
// ONLY be called from the main thread and should be called often.
func (scr *SdlDisplay) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			atomic.StoreInt32(&scr.quit, 1)

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break
			}
			switch ev.Keysym.Sym {
			case sdl.K_SPACE, sdl.K_RETURN:
				scr.panel.SetACT(ev.Type == sdl.KEYDOWN)
			case sdl.K_ESCAPE:
				if ev.Type == sdl.KEYDOWN {
					atomic.StoreInt32(&scr.quit, 1)
				}
			}
		}
	}

	scr.crit.Lock()
	if !scr.dirty {
		scr.crit.Unlock()
		return
	}
	scr.dirty = false
	err := scr.texture.Update(nil, scr.front, pitch)
	scr.crit.Unlock()

	if err != nil {
		logger.Logf("sdldisplay", "%v", err)
		return
	}

	scr.renderer.Clear()
	scr.renderer.Copy(scr.texture, nil, nil)
	scr.renderer.Present()
}

// PendingQuit returns true once the user has closed the window or pressed
// escape.
func (scr *SdlDisplay) PendingQuit() bool {
	return atomic.LoadInt32(&scr.quit) == 1
}

// Destroy cleans up the SDL resources. Must be called from the main thread.
func (scr *SdlDisplay) Destroy(output io.Writer) {
	if err := scr.texture.Destroy(); err != nil {
		io.WriteString(output, err.Error())
	}
	if err := scr.renderer.Destroy(); err != nil {
		io.WriteString(output, err.Error())
	}
	if err := scr.window.Destroy(); err != nil {
		io.WriteString(output, err.Error())
	}
	sdl.Quit()
}

// NewFrame implements the display.PixelRenderer interface.
func (scr *SdlDisplay) NewFrame(frame int) error {
	return nil
}

// SetPixel implements the display.PixelRenderer interface.
func (scr *SdlDisplay) SetPixel(x, y int, on bool) error {
	i := (y*display.Width + x) * pixelDepth

	v := byte(0x00)
	if on {
		v = 0xff
	}

	scr.back[i] = v
	scr.back[i+1] = v
	scr.back[i+2] = v
	scr.back[i+3] = 0xff

	return nil
}

// EndFrame implements the display.PixelRenderer interface.
func (scr *SdlDisplay) EndFrame() error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	copy(scr.front, scr.back)
	scr.dirty = true
	return nil
}
