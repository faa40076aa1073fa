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

package random_test

import (
	"testing"

	"github.com/kimballen/gopherchip8/random"
	"github.com/kimballen/gopherchip8/test"
)

func TestZeroSeed(t *testing.T) {
	rnd := random.NewRandom()
	rnd.ZeroSeed = true
	rnd.Reset()

	// a zero seeded sequence restarts from the beginning on Reset()
	a := rnd.Uint8()
	b := rnd.Uint8()
	rnd.Reset()
	test.Equate(t, rnd.Uint8(), a)
	test.Equate(t, rnd.Uint8(), b)
}
