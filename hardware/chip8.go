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

package hardware

import (
	"github.com/kimballen/gopherchip8/hardware/cpu"
	"github.com/kimballen/gopherchip8/hardware/keypad"
	"github.com/kimballen/gopherchip8/hardware/memory"
	"github.com/kimballen/gopherchip8/hardware/timer"
	"github.com/kimballen/gopherchip8/hardware/video"
	"github.com/kimballen/gopherchip8/romloader"
)

// Chip8 is the main container for the emulated components of the machine.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *keypad.Keypad
	Timers *timer.Timers
}

// NewChip8 creates a new machine and everything associated with the
// hardware. It is used for all aspects of emulation: regular play,
// performance measurement and testing.
func NewChip8() *Chip8 {
	ch8 := &Chip8{
		Mem:    memory.NewMemory(),
		Video:  video.NewVideo(),
		Keypad: keypad.NewKeypad(),
		Timers: timer.NewTimers(),
	}
	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Video, ch8.Keypad, ch8.Timers)
	return ch8
}

// AttachCartridge loads a program into the machine and resets it ready for
// execution. An oversized program is reported before any machine state is
// touched.
func (ch8 *Chip8) AttachCartridge(cartload romloader.Loader) error {
	data, err := cartload.Load()
	if err != nil {
		return err
	}

	ch8.Reset()
	ch8.Mem.LoadProgram(data)

	return nil
}

// Reset the machine to the power-on state. The built-in font is restored to
// low memory and the program counter points at the program origin. Any loaded
// program is wiped.
func (ch8 *Chip8) Reset() {
	ch8.Mem.Reset()
	ch8.Video.Reset()
	ch8.Keypad.Reset()
	ch8.Timers.Reset()
	ch8.CPU.Reset()
}

// Step the machine state one CPU instruction. A returned error is a fatal
// machine fault.
func (ch8 *Chip8) Step() error {
	return ch8.CPU.Step()
}

// TickTimers decrements the delay and sound timers by one. The caller is
// responsible for calling this at the timer tick rate, independently of the
// CPU step rate.
func (ch8 *Chip8) TickTimers() {
	ch8.Timers.Tick()
}

// End cleanly shuts down attached renderers and audio mixers.
func (ch8 *Chip8) End() error {
	if err := ch8.Video.EndRendering(); err != nil {
		return err
	}
	return ch8.Timers.EndMixing()
}
