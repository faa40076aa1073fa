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

// Package keypad implements the sixteen-key input state of the CHIP-8
// machine. Keys are identified by the values 0x0 to 0xf, matching the
// machine's hexadecimal keypad layout.
//
// The host calls Press() and Release() as it polls its own input devices.
// The CPU only ever reads key state: either the immediate IsPressed() query
// or, for the wait-for-key instruction, the AwaitPress()/PressEvent() pair
// which latches the first key seen transitioning to the pressed state.
package keypad

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad is the input state of the machine.
type Keypad struct {
	keys [NumKeys]bool

	// the most recent key transition to the pressed state since the last
	// call to AwaitPress(). -1 means no transition has been seen
	pressEvent int
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{
		pressEvent: -1,
	}
}

// Reset all keys to the released state.
func (key *Keypad) Reset() {
	key.keys = [NumKeys]bool{}
	key.pressEvent = -1
}

// Press the specified key. Called by the host's input collaborator. Pressing
// an already pressed key is not a transition and does not latch a press
// event.
func (key *Keypad) Press(k uint8) {
	k &= 0x0f
	if !key.keys[k] {
		key.pressEvent = int(k)
	}
	key.keys[k] = true
}

// Release the specified key. Called by the host's input collaborator.
func (key *Keypad) Release(k uint8) {
	key.keys[k&0x0f] = false
}

// IsPressed returns whether the specified key is currently pressed.
// Implements the bus.KeypadBus interface.
func (key *Keypad) IsPressed(k uint8) bool {
	return key.keys[k&0x0f]
}

// AwaitPress discards any latched press event, arming the keypad for a
// subsequent call to PressEvent(). Implements the bus.KeypadBus interface.
func (key *Keypad) AwaitPress() {
	key.pressEvent = -1
}

// PressEvent returns the first key seen transitioning to the pressed state
// since the call to AwaitPress(). The second return value is false if no
// transition has been seen yet. Implements the bus.KeypadBus interface.
func (key *Keypad) PressEvent() (uint8, bool) {
	if key.pressEvent < 0 {
		return 0, false
	}
	return uint8(key.pressEvent), true
}
