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

package memory

// MemorySize is the extent of the CHIP-8 address space in bytes.
const MemorySize = 4096

// addressMask limits addresses to the 12 bits the machine can express.
const addressMask = MemorySize - 1

// OriginAddr is the address at which program data begins. The memory below
// this address is reserved for the interpreter.
const OriginAddr = 0x200

// MaxProgramSize is the maximum number of program bytes that can be loaded.
const MaxProgramSize = MemorySize - OriginAddr

// Memory is the flat byte-addressable store at the centre of the machine.
type Memory struct {
	RAM [MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset the contents of memory. The reserved area is reinitialised with the
// character font; everything else is zeroed.
func (mem *Memory) Reset() {
	for i := range mem.RAM {
		mem.RAM[i] = 0x00
	}
	copy(mem.RAM[FontOriginAddr:], font[:])
}

// Read a byte from the specified address. The address is masked to 12 bits.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.RAM[address&addressMask]
}

// Write a byte to the specified address. The address is masked to 12 bits.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.RAM[address&addressMask] = data
}

// LoadProgram copies program data into memory at the origin address. The
// size of the data must have been checked by the loader; a program that
// somehow arrives here too large is truncated at the top of memory.
func (mem *Memory) LoadProgram(data []byte) {
	copy(mem.RAM[OriginAddr:], data)
}
