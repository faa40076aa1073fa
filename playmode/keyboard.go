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

package playmode

import (
	"github.com/kimballen/gopherchip8/gui"
	"github.com/kimballen/gopherchip8/hardware"
)

// the conventional mapping of the machine's hex keypad onto the left-hand
// side of a modern keyboard:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   ->   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keypadMap = map[string]uint8{
	"1": 0x01, "2": 0x02, "3": 0x03, "4": 0x0c,
	"Q": 0x04, "W": 0x05, "E": 0x06, "R": 0x0d,
	"A": 0x07, "S": 0x08, "D": 0x09, "F": 0x0e,
	"Z": 0x0a, "X": 0x00, "C": 0x0b, "V": 0x0f,
}

// KeyboardEventHandler applies a host keyboard event to the machine's
// keypad. Unmapped keys are ignored.
func KeyboardEventHandler(ev gui.EventDataKeyboard, ch8 *hardware.Chip8) {
	key, ok := keypadMap[ev.Key]
	if !ok {
		return
	}

	if ev.Down {
		ch8.Keypad.Press(key)
	} else {
		ch8.Keypad.Release(key)
	}
}
