// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

// Package video implements the monochrome display of the CHIP-8 machine.
// Sixty-four columns by thirty-two rows, one bit per pixel. Sprites are
// composed onto the display with XOR, which is also how the machine detects
// collisions: a draw that unsets a previously set pixel reports the fact.
//
// Pixel renderers (the host's window, the test digest, anything that wants
// frames) register themselves with AddPixelRenderer() and receive a snapshot
// of the display on every call to Render().
package video

import (
	"strings"
)

// Width and Height are the dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Frame is a complete snapshot of the display. Row-major, one bool per
// pixel.
type Frame [Height][Width]bool

// PixelRenderer implementations display, or otherwise work with, frames
// from the machine's video output.
type PixelRenderer interface {
	// NewFrame is called once per host frame with a snapshot of the display
	NewFrame(frame Frame) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. the PixelRenderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// Video is the display of the machine.
type Video struct {
	pixels Frame

	renderers []PixelRenderer
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// AddPixelRenderer registers an implementation of PixelRenderer. Multiple
// renderers can be added.
func (vid *Video) AddPixelRenderer(r PixelRenderer) {
	vid.renderers = append(vid.renderers, r)
}

// Reset the display to its initial, cleared state.
func (vid *Video) Reset() {
	vid.Clear()
}

// Clear unsets every pixel. Implements the bus.VideoBus interface.
func (vid *Video) Clear() {
	vid.pixels = Frame{}
}

// DrawSprite XORs a sprite into the display. The sprite is a slice of up to
// fifteen bytes, each byte one row of eight pixels, most significant bit
// leftmost. The starting coordinates wrap around the display edges; the
// sprite itself does not - rows and columns that would fall off the edge
// are clipped.
//
// Returns true if the draw unset any previously set pixel. Implements the
// bus.VideoBus interface.
func (vid *Video) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	sx := int(x) % Width
	sy := int(y) % Height

	collision := false

	for r, b := range sprite {
		py := sy + r
		if py >= Height {
			break // for loop
		}

		for c := 0; c < 8; c++ {
			if b&(0x80>>c) == 0x00 {
				continue
			}

			px := sx + c
			if px >= Width {
				break // column loop
			}

			if vid.pixels[py][px] {
				collision = true
			}
			vid.pixels[py][px] = !vid.pixels[py][px]
		}
	}

	return collision
}

// Pixel returns the state of an individual pixel.
func (vid *Video) Pixel(x int, y int) bool {
	return vid.pixels[y][x]
}

// Snapshot returns a copy of the current display contents.
func (vid *Video) Snapshot() Frame {
	return vid.pixels
}

// Render pushes a snapshot of the display to all registered pixel
// renderers. Called by the host once per frame.
func (vid *Video) Render() error {
	for _, r := range vid.renderers {
		if err := r.NewFrame(vid.pixels); err != nil {
			return err
		}
	}
	return nil
}

// EndRendering tells all registered pixel renderers that the session is
// over.
func (vid *Video) EndRendering() error {
	for _, r := range vid.renderers {
		if err := r.EndRendering(); err != nil {
			return err
		}
	}
	return nil
}

// String returns the display as a grid of characters. Useful when debugging
// test failures.
func (vid *Video) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if vid.pixels[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
