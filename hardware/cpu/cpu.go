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

package cpu

import (
	"fmt"
	"strings"

	"github.com/kimballen/gopherchip8/hardware/bus"
	"github.com/kimballen/gopherchip8/hardware/memory"
	"github.com/kimballen/gopherchip8/random"
)

// sentinel errors returned by the Step() function. all of them are fatal to
// the machine.
const (
	UnknownOpcode  = "cpu: unknown opcode (%#04x) at %#04x"
	StackOverflow  = "cpu: stack overflow: call depth of %d exceeded at %#04x"
	StackUnderflow = "cpu: stack underflow: return with empty call stack at %#04x"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// CPU implements the CHIP-8 instruction set.
type CPU struct {
	// general purpose registers. VF doubles as the flag output of the
	// arithmetic, shift and sprite instructions
	V [NumRegisters]uint8

	// the index register. points into memory for the sprite, BCD and
	// register dump instructions
	I uint16

	// address of the next instruction to be fetched
	PC uint16

	// the call stack. records return addresses only
	Stack []uint16

	// Rnd is the source for the random instruction. exposed so that the
	// ZeroSeed flag can be set for deterministic testing
	Rnd *random.Random

	mem    bus.CPUBus
	video  bus.VideoBus
	keypad bus.KeypadBus
	timers bus.TimerBus

	// the register that will receive the next key press, or -1 when the
	// CPU is not waiting on the keypad. while waiting the program counter
	// does not advance
	waitKeyReg int

	// the most recently fetched instruction and its address. used for
	// fault reporting and by the String() function
	lastOpcode     uint16
	lastOpcodeAddr uint16
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem bus.CPUBus, video bus.VideoBus, keypad bus.KeypadBus, timers bus.TimerBus) *CPU {
	mc := &CPU{
		mem:    mem,
		video:  video,
		keypad: keypad,
		timers: timers,
		Rnd:    random.NewRandom(),
		Stack:  make([]uint16, 0, StackDepth),
	}
	mc.Reset()
	return mc
}

// Reset restores the CPU to the power-on state. The program counter points
// at the program origin address.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i] = 0
	}
	mc.I = 0
	mc.PC = memory.OriginAddr
	mc.Stack = mc.Stack[:0]
	mc.waitKeyReg = -1
	mc.Rnd.Reset()
}

// WaitingForKey returns true if the CPU is stalled on the wait-for-key
// instruction.
func (mc *CPU) WaitingForKey() bool {
	return mc.waitKeyReg >= 0
}

// LastResult returns the most recently fetched instruction word and the
// address it was fetched from.
func (mc *CPU) LastResult() (uint16, uint16) {
	return mc.lastOpcode, mc.lastOpcodeAddr
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x I=%#04x SP=%d\n", mc.PC, mc.I, len(mc.Stack)))
	for i := range mc.V {
		if i > 0 {
			if i%8 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(fmt.Sprintf("V%X=%02x", i, mc.V[i]))
	}
	return s.String()
}

// Step executes the instruction at the current program counter. A returned
// error is a machine fault and the CPU must not be stepped again.
//
// If the CPU is waiting for a key press then no instruction is fetched.
// The wait ends when the keypad reports a key-down transition; the key
// value is stored and execution resumes on the following Step().
func (mc *CPU) Step() error {
	if mc.waitKeyReg >= 0 {
		k, ok := mc.keypad.PressEvent()
		if !ok {
			return nil
		}
		mc.V[mc.waitKeyReg] = k
		mc.waitKeyReg = -1
		return nil
	}

	// instruction words are stored big-endian
	opcode := uint16(mc.mem.Read(mc.PC))<<8 | uint16(mc.mem.Read(mc.PC+1))
	mc.lastOpcode = opcode
	mc.lastOpcodeAddr = mc.PC

	// the program counter advances before execution. control flow
	// instructions overwrite the advanced value
	mc.PC += 2

	return mc.execute(opcode)
}
