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
	"crypto/sha1"
	"fmt"

	"gopherway/display"
)

// Digest is an implementation of the display.PixelRenderer interface that
// generates a SHA-1 value of the frame every frame. It displays nothing.
// Successive digests are chained: the previous digest is folded into the
// data being hashed, so the value after N frames fingerprints the whole
// sequence, not just the last picture.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Digest struct {
	digest [sha1.Size]byte

	// frame data with room at the head for the previous digest value
	pixels [sha1.Size + display.Width*display.Height]byte

	frameNum int
}

// NewDigest is the preferred method of initialisation for the Digest type.
func NewDigest() *Digest {
	return &Digest{}
}

// Hash returns the current digest value as a printable string.
func (dig *Digest) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the current digest value to zero.
func (dig *Digest) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Frame returns the number of the last frame hashed.
func (dig *Digest) Frame() int {
	return dig.frameNum
}

// NewFrame implements the display.PixelRenderer interface.
func (dig *Digest) NewFrame(frame int) error {
	dig.frameNum = frame
	return nil
}

// SetPixel implements the display.PixelRenderer interface.
func (dig *Digest) SetPixel(x, y int, on bool) error {
	v := byte(0x00)
	if on {
		v = 0x01
	}
	dig.pixels[sha1.Size+y*display.Width+x] = v
	return nil
}

// EndFrame implements the display.PixelRenderer interface.
func (dig *Digest) EndFrame() error {
	// chain fingerprints by copying the value of the previous fingerprint to
	// the head of the frame data
	copy(dig.pixels[:sha1.Size], dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels[:])
	return nil
}
