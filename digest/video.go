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

// Package digest is used to create a fingerprint of the video frames
// produced by the machine. Each frame's hash is chained with the previous
// one, so a single hash value summarises an entire sequence of frames. It
// is a convenient way of comparing program output without a display; note
// that SHA-1 is used as a checksum, this is not a cryptographic task.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/kimballen/gopherchip8/hardware/video"
)

// Video is an implementation of the video.PixelRenderer interface with an
// embedded frame fingerprint.
type Video struct {
	digest   [sha1.Size]byte
	frameNum int

	// the frame data prefixed with the previous digest value, hashed on
	// every NewFrame()
	pixels []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
// For convenience, the video argument can be non-nil, in which case the
// digester registers itself as a renderer.
func NewVideo(vid *video.Video) *Video {
	dig := &Video{
		pixels: make([]byte, sha1.Size+video.Width*video.Height),
	}
	if vid != nil {
		vid.AddPixelRenderer(dig)
	}
	return dig
}

// Hash returns the current digest value.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the current digest value to zero.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// FrameNum returns the number of frames that have been hashed since the
// last reset.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame implements the video.PixelRenderer interface.
func (dig *Video) NewFrame(frame video.Frame) error {
	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the frame data
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if frame[y][x] {
				dig.pixels[i] = 1
			} else {
				dig.pixels[i] = 0
			}
			i++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++

	return nil
}

// EndRendering implements the video.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
