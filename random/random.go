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

// Package random is a source of random numbers for the emulated machine.
// The one instruction that requires randomness gets its values from here
// rather than from the math/rand package directly, so that tests can ask for
// a predictable sequence.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator for the emulated machine.
type Random struct {
	// use a zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool

	rnd *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{
		rnd: rand.New(rand.NewSource(baseSeed)),
	}
}

// Reset the random number sequence. For a Random with ZeroSeed the sequence
// restarts from the beginning.
func (rnd *Random) Reset() {
	if rnd.ZeroSeed {
		rnd.rnd = rand.New(rand.NewSource(0))
	} else {
		rnd.rnd = rand.New(rand.NewSource(baseSeed))
	}
}

// Uint8 returns a random 8-bit value.
func (rnd *Random) Uint8() uint8 {
	if rnd.rnd == nil {
		rnd.Reset()
	}
	return uint8(rnd.rnd.Intn(256))
}
