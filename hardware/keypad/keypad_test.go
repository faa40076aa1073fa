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

package keypad_test

import (
	"testing"

	"github.com/kimballen/gopherchip8/hardware/keypad"
	"github.com/kimballen/gopherchip8/test"
)

func TestPressRelease(t *testing.T) {
	key := keypad.NewKeypad()

	test.Equate(t, key.IsPressed(0x5), false)
	key.Press(0x5)
	test.Equate(t, key.IsPressed(0x5), true)
	test.Equate(t, key.IsPressed(0x6), false)
	key.Release(0x5)
	test.Equate(t, key.IsPressed(0x5), false)
}

func TestPressEvent(t *testing.T) {
	key := keypad.NewKeypad()

	// no press event before a key is pressed
	key.AwaitPress()
	_, ok := key.PressEvent()
	test.Equate(t, ok, false)

	key.Press(0xa)
	k, ok := key.PressEvent()
	test.Equate(t, ok, true)
	test.Equate(t, k, 0x0a)

	// AwaitPress() discards the latched event
	key.AwaitPress()
	_, ok = key.PressEvent()
	test.Equate(t, ok, false)

	// a key that is held down is not a transition
	key.Press(0xa)
	_, ok = key.PressEvent()
	test.Equate(t, ok, false)

	// releasing and pressing again is
	key.Release(0xa)
	key.Press(0xa)
	k, ok = key.PressEvent()
	test.Equate(t, ok, true)
	test.Equate(t, k, 0x0a)
}
