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

// Package bus defines the interfaces between the CPU and the other
// components of the machine. The CPU is the only component that sees the
// rest of the machine and it sees it only through these interfaces.
package bus

// CPUBus is the memory as seen by the CPU.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// VideoBus is the display as seen by the CPU. Only two instructions touch
// the display: clear screen and draw sprite.
type VideoBus interface {
	Clear()

	// DrawSprite XORs the sprite into the display at the specified
	// coordinates, returning true if any previously set pixel was unset
	DrawSprite(x uint8, y uint8, sprite []uint8) bool
}

// KeypadBus is the input state as seen by the CPU. The CPU never mutates key
// state; setting and clearing keys is the host's job.
type KeypadBus interface {
	IsPressed(key uint8) bool

	// AwaitPress arms the keypad for a subsequent call to PressEvent()
	AwaitPress()

	// PressEvent returns the first key seen transitioning to the pressed
	// state since the call to AwaitPress(). the second return value is false
	// if no such transition has happened yet
	PressEvent() (uint8, bool)
}

// TimerBus is the pair of countdown timers as seen by the CPU.
type TimerBus interface {
	Delay() uint8
	SetDelay(value uint8)
	SetSound(value uint8)
}
