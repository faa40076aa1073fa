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

// Package memory implements the flat 4KB address space of the CHIP-8
// machine. The low 512 bytes are reserved for the interpreter; in this
// emulation, as in the historical interpreters, the only thing kept there is
// the built-in hexadecimal character font. Programs are loaded at the origin
// address 0x200 and own everything from there to the top of memory.
//
// Addresses are 12 bits. The Read() and Write() functions mask their address
// argument accordingly, so an address can never be out of range by the time
// it reaches this package. Precise wraparound is part of the machine's
// contract, not an error condition.
package memory
