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

// StepsPerTick is the number of CPU instructions executed for every timer
// tick when the machine runs uncapped. At the nominal 60Hz tick rate this
// corresponds to the conventional interpreter speed of around 700
// instructions per second.
const StepsPerTick = 12

// Run sets the emulation running as quickly as possible, ticking the timers
// at a fixed instruction-count interval rather than by the wall clock. The
// continueCheck() function runs after every instruction; returning false
// ends the run.
func (ch8 *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	steps := 0
	for {
		if err := ch8.Step(); err != nil {
			return err
		}

		steps++
		if steps >= StepsPerTick {
			steps = 0
			ch8.TickTimers()
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
