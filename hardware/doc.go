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

// Package hardware assembles the components of the CHIP-8 machine into a
// single structure. The sub-packages implement the components themselves:
// memory, cpu, video, keypad and timer.
//
// The Chip8 type is driven from exactly one goroutine. The CPU clock and the
// timer clock are decoupled: Step() executes instructions at whatever rate
// the host loop chooses, while TickTimers() is called at 60Hz (or, in the
// case of uncapped performance runs, at a fixed instruction-count interval).
package hardware
