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

package renderers

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"gopherway/curated"
	"gopherway/display"
)

// ImageWriter is an implementation of the display.PixelRenderer interface
// that saves every frame as an individual PNG file in the target directory.
type ImageWriter struct {
	dir string

	// the image we write to until EndFrame() is called
	currFrameData *image.Gray
	currFrameNum  int
}

// NewImageWriter is the preferred method of initialisation for the
// ImageWriter type. The target directory must already exist.
func NewImageWriter(dir string) (*ImageWriter, error) {
	nfo, err := os.Stat(dir)
	if err != nil {
		return nil, curated.Errorf("imagewriter: %v", err)
	}
	if !nfo.IsDir() {
		return nil, curated.Errorf("imagewriter: %s is not a directory", dir)
	}

	imw := &ImageWriter{dir: dir}
	imw.currFrameData = newFrameImage()

	return imw, nil
}

func newFrameImage() *image.Gray {
	return image.NewGray(image.Rectangle{
		Min: image.Point{X: 0, Y: 0},
		Max: image.Point{X: display.Width, Y: display.Height},
	})
}

// NewFrame implements the display.PixelRenderer interface.
func (imw *ImageWriter) NewFrame(frame int) error {
	imw.currFrameData = newFrameImage()
	imw.currFrameNum = frame
	return nil
}

// SetPixel implements the display.PixelRenderer interface.
func (imw *ImageWriter) SetPixel(x, y int, on bool) error {
	if on {
		imw.currFrameData.Set(x, y, color.Gray{Y: 255})
	}
	return nil
}

// EndFrame implements the display.PixelRenderer interface. The completed
// frame is written out immediately.
func (imw *ImageWriter) EndFrame() error {
	imageName := filepath.Join(imw.dir, fmt.Sprintf("frame_%05d.png", imw.currFrameNum))

	f, err := os.Open(imageName)
	if f != nil {
		f.Close()
		return curated.Errorf("imagewriter: image file (%s) already exists", imageName)
	}
	if err != nil && !os.IsNotExist(err) {
		return curated.Errorf("imagewriter: %v", err)
	}

	f, err = os.Create(imageName)
	if err != nil {
		return curated.Errorf("imagewriter: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, imw.currFrameData); err != nil {
		return curated.Errorf("imagewriter: %v", err)
	}

	return nil
}
