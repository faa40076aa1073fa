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

package video_test

import (
	"testing"

	"github.com/kimballen/gopherchip8/hardware/video"
	"github.com/kimballen/gopherchip8/test"
)

func TestDrawIdempotence(t *testing.T) {
	vid := video.NewVideo()
	sprite := []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

	// first draw. no collision on an empty display
	collision := vid.DrawSprite(0, 0, sprite)
	test.Equate(t, collision, false)
	test.Equate(t, vid.Pixel(0, 0), true)
	test.Equate(t, vid.Pixel(3, 0), true)
	test.Equate(t, vid.Pixel(4, 0), false)

	// drawing the same sprite in the same place XORs it away again, and
	// reports the collision
	collision = vid.DrawSprite(0, 0, sprite)
	test.Equate(t, collision, true)
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if vid.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) should be unset:\n%v", x, y, vid)
			}
		}
	}
}

func TestStartCoordinatesWrap(t *testing.T) {
	vid := video.NewVideo()

	// starting coordinates are taken modulo the display dimensions
	vid.DrawSprite(video.Width, video.Height, []uint8{0x80})
	test.Equate(t, vid.Pixel(0, 0), true)

	vid.Clear()
	vid.DrawSprite(video.Width+2, video.Height+1, []uint8{0x80})
	test.Equate(t, vid.Pixel(2, 1), true)
}

func TestSpriteClipping(t *testing.T) {
	vid := video.NewVideo()

	// a sprite drawn near the right edge clips. it does not wrap onto the
	// next row
	vid.DrawSprite(video.Width-2, 0, []uint8{0xff})
	test.Equate(t, vid.Pixel(video.Width-2, 0), true)
	test.Equate(t, vid.Pixel(video.Width-1, 0), true)
	test.Equate(t, vid.Pixel(0, 0), false)
	test.Equate(t, vid.Pixel(0, 1), false)

	// the same at the bottom edge. rows below the edge are not drawn
	vid.Clear()
	vid.DrawSprite(0, video.Height-1, []uint8{0x80, 0x80, 0x80})
	test.Equate(t, vid.Pixel(0, video.Height-1), true)
	test.Equate(t, vid.Pixel(0, 0), false)
	test.Equate(t, vid.Pixel(0, 1), false)
}

func TestClear(t *testing.T) {
	vid := video.NewVideo()
	vid.DrawSprite(10, 10, []uint8{0xff})
	vid.Clear()
	test.Equate(t, vid.Pixel(10, 10), false)

	// a cleared display records no collisions
	collision := vid.DrawSprite(10, 10, []uint8{0xff})
	test.Equate(t, collision, false)
}

type testRenderer struct {
	frames int
	last   video.Frame
	ended  bool
}

func (r *testRenderer) NewFrame(frame video.Frame) error {
	r.frames++
	r.last = frame
	return nil
}

func (r *testRenderer) EndRendering() error {
	r.ended = true
	return nil
}

func TestRenderers(t *testing.T) {
	vid := video.NewVideo()
	r := &testRenderer{}
	vid.AddPixelRenderer(r)

	vid.DrawSprite(0, 0, []uint8{0x80})
	test.ExpectedSuccess(t, vid.Render())
	test.Equate(t, r.frames, 1)
	test.Equate(t, r.last[0][0], true)

	// the frame passed to the renderer is a snapshot. clearing the display
	// does not reach back into it
	vid.Clear()
	test.Equate(t, r.last[0][0], true)

	test.ExpectedSuccess(t, vid.EndRendering())
	test.Equate(t, r.ended, true)
}
