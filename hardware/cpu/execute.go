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
	"github.com/kimballen/gopherchip8/curated"
	"github.com/kimballen/gopherchip8/hardware/memory"
)

func (mc *CPU) decodeFault() error {
	return curated.Errorf(UnknownOpcode, mc.lastOpcode, mc.lastOpcodeAddr)
}

func (mc *CPU) execute(opcode uint16) error {
	x := uint8((opcode & 0x0f00) >> 8)
	y := uint8((opcode & 0x00f0) >> 4)
	nnn := opcode & 0x0fff
	nn := uint8(opcode & 0x00ff)
	n := uint8(opcode & 0x000f)

	switch opcode & 0xf000 {
	case 0x0000:
		// the machine-code-routine form of the zero family is not
		// supported. only the two named instructions decode
		switch opcode {
		case 0x00e0:
			mc.video.Clear()
		case 0x00ee:
			if len(mc.Stack) == 0 {
				return curated.Errorf(StackUnderflow, mc.lastOpcodeAddr)
			}
			mc.PC = mc.Stack[len(mc.Stack)-1]
			mc.Stack = mc.Stack[:len(mc.Stack)-1]
		default:
			return mc.decodeFault()
		}

	case 0x1000:
		mc.PC = nnn

	case 0x2000:
		if len(mc.Stack) >= StackDepth {
			return curated.Errorf(StackOverflow, StackDepth, mc.lastOpcodeAddr)
		}
		mc.Stack = append(mc.Stack, mc.PC)
		mc.PC = nnn

	case 0x3000:
		if mc.V[x] == nn {
			mc.PC += 2
		}

	case 0x4000:
		if mc.V[x] != nn {
			mc.PC += 2
		}

	case 0x5000:
		if n != 0x0 {
			return mc.decodeFault()
		}
		if mc.V[x] == mc.V[y] {
			mc.PC += 2
		}

	case 0x6000:
		mc.V[x] = nn

	case 0x7000:
		// no carry flag for the immediate form
		mc.V[x] += nn

	case 0x8000:
		return mc.executeALU(opcode, x, y)

	case 0x9000:
		if n != 0x0 {
			return mc.decodeFault()
		}
		if mc.V[x] != mc.V[y] {
			mc.PC += 2
		}

	case 0xa000:
		mc.I = nnn

	case 0xb000:
		// the offset register is always V0, regardless of the x nibble
		mc.PC = nnn + uint16(mc.V[0])

	case 0xc000:
		mc.V[x] = mc.Rnd.Uint8() & nn

	case 0xd000:
		sprite := make([]uint8, n)
		for i := range sprite {
			sprite[i] = mc.mem.Read(mc.I + uint16(i))
		}
		if mc.video.DrawSprite(mc.V[x], mc.V[y], sprite) {
			mc.V[0xf] = 0x01
		} else {
			mc.V[0xf] = 0x00
		}

	case 0xe000:
		switch nn {
		case 0x9e:
			if mc.keypad.IsPressed(mc.V[x]) {
				mc.PC += 2
			}
		case 0xa1:
			if !mc.keypad.IsPressed(mc.V[x]) {
				mc.PC += 2
			}
		default:
			return mc.decodeFault()
		}

	case 0xf000:
		switch nn {
		case 0x07:
			mc.V[x] = mc.timers.Delay()
		case 0x0a:
			mc.keypad.AwaitPress()
			mc.waitKeyReg = int(x)
		case 0x15:
			mc.timers.SetDelay(mc.V[x])
		case 0x18:
			mc.timers.SetSound(mc.V[x])
		case 0x1e:
			mc.I += uint16(mc.V[x])
		case 0x29:
			// only the low nibble of the register selects the glyph
			mc.I = memory.GlyphAddr(mc.V[x])
		case 0x33:
			mc.mem.Write(mc.I, mc.V[x]/100)
			mc.mem.Write(mc.I+1, (mc.V[x]/10)%10)
			mc.mem.Write(mc.I+2, mc.V[x]%10)
		case 0x55:
			// the index register is not changed by the dump
			for i := uint16(0); i <= uint16(x); i++ {
				mc.mem.Write(mc.I+i, mc.V[i])
			}
		case 0x65:
			for i := uint16(0); i <= uint16(x); i++ {
				mc.V[i] = mc.mem.Read(mc.I + i)
			}
		default:
			return mc.decodeFault()
		}
	}

	return nil
}

// executeALU handles the register-to-register arithmetic family. in every
// flag-setting instruction the flag is written after the primary result so
// that the flag wins when the destination register is VF itself.
func (mc *CPU) executeALU(opcode uint16, x, y uint8) error {
	switch opcode & 0x000f {
	case 0x0:
		mc.V[x] = mc.V[y]

	case 0x1:
		mc.V[x] |= mc.V[y]

	case 0x2:
		mc.V[x] &= mc.V[y]

	case 0x3:
		mc.V[x] ^= mc.V[y]

	case 0x4:
		r := uint16(mc.V[x]) + uint16(mc.V[y])
		mc.V[x] = uint8(r)
		if r > 0xff {
			mc.V[0xf] = 0x01
		} else {
			mc.V[0xf] = 0x00
		}

	case 0x5:
		borrow := mc.V[y] > mc.V[x]
		mc.V[x] -= mc.V[y]
		if borrow {
			mc.V[0xf] = 0x00
		} else {
			mc.V[0xf] = 0x01
		}

	case 0x6:
		// COSMAC VIP convention: the shifted value is VY
		bit := mc.V[y] & 0x01
		mc.V[x] = mc.V[y] >> 1
		mc.V[0xf] = bit

	case 0x7:
		borrow := mc.V[x] > mc.V[y]
		mc.V[x] = mc.V[y] - mc.V[x]
		if borrow {
			mc.V[0xf] = 0x00
		} else {
			mc.V[0xf] = 0x01
		}

	case 0xe:
		bit := mc.V[y] >> 7
		mc.V[x] = mc.V[y] << 1
		mc.V[0xf] = bit

	default:
		return mc.decodeFault()
	}

	return nil
}
