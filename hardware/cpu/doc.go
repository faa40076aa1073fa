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

// Package cpu implements the fetch-decode-execute engine of the CHIP-8
// machine. One call to Step() is one instruction.
//
// An instruction is a big-endian 16-bit word, decoded on its leading nibble
// and then, for the ambiguous families, on trailing nibbles or the trailing
// byte. The program counter advances past the instruction before the
// instruction executes; jump, call and return instructions simply overwrite
// the advanced value.
//
// The V registers are general purpose with the exception of VF, which many
// instructions use as a flag output: carry, borrow, shifted-out bit, sprite
// collision. In every case the flag is written after the instruction's
// primary result - the ordering matters when the destination register is VF
// itself, and historical programs depend on the flag winning.
//
// The shift instructions follow the original COSMAC VIP convention: the
// shifted value is read from VY and written to VX.
//
// Instruction words that do not decode to a known instruction, and call
// stack overflow and underflow, are fatal machine faults. The Step()
// function returns a curated error naming the offending instruction word
// and its address; the machine must not be stepped again after that.
package cpu
