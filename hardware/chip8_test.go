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

package hardware_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/kimballen/gopherchip8/curated"
	"github.com/kimballen/gopherchip8/hardware"
	"github.com/kimballen/gopherchip8/hardware/memory"
	"github.com/kimballen/gopherchip8/romloader"
	"github.com/kimballen/gopherchip8/test"
)

// write a program to a temporary file and attach it to a new machine.
func attachProgram(t *testing.T, program []uint8) *hardware.Chip8 {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "program.ch8")
	if err := ioutil.WriteFile(fn, program, 0o644); err != nil {
		t.Fatal(err)
	}

	ch8 := hardware.NewChip8()
	cartload := romloader.NewLoader(fn)
	test.ExpectedSuccess(t, ch8.AttachCartridge(cartload))
	return ch8
}

func TestGlyphDrawProgram(t *testing.T) {
	// clear the screen, point the index register at the built-in zero
	// glyph and draw it at (5, 5)
	ch8 := attachProgram(t, []uint8{
		0x00, 0xe0, // clear
		0x60, 0x05, // V0 = 0x05
		0xa0, 0x00, // I = 0x000
		0xd0, 0x05, // draw 5 rows at (V0, V0)
	})

	for i := 0; i < 4; i++ {
		test.ExpectedSuccess(t, ch8.Step())
	}

	// the zero glyph is a hollow rectangle, four pixels wide and five
	// rows tall
	for row := 0; row < 5; row++ {
		for col := 0; col < 4; col++ {
			lit := row == 0 || row == 4 || col == 0 || col == 3
			test.Equate(t, ch8.Video.Pixel(5+col, 5+row), lit)
		}
	}

	test.Equate(t, ch8.CPU.V[0xf], 0x00)
}

func TestSelfJumpProgram(t *testing.T) {
	ch8 := attachProgram(t, []uint8{0x12, 0x00})

	for i := 0; i < 100; i++ {
		test.ExpectedSuccess(t, ch8.Step())
		test.Equate(t, ch8.CPU.PC, memory.OriginAddr)
	}
}

func TestKeyWaitProgram(t *testing.T) {
	ch8 := attachProgram(t, []uint8{
		0xf0, 0x0a, // wait for key into V0
		0x60, 0xff, // V0 = 0xff (must not run until a key arrives)
	})

	test.ExpectedSuccess(t, ch8.Step())
	for i := 0; i < 50; i++ {
		test.ExpectedSuccess(t, ch8.Step())
		test.ExpectedSuccess(t, ch8.CPU.WaitingForKey())
	}

	// timers keep running while the CPU waits
	ch8.Timers.SetDelay(2)
	ch8.TickTimers()
	test.Equate(t, ch8.Timers.Delay(), 1)

	ch8.Keypad.Press(0x09)
	test.ExpectedSuccess(t, ch8.Step())
	test.ExpectedFailure(t, ch8.CPU.WaitingForKey())
	test.Equate(t, ch8.CPU.V[0], 0x09)

	test.ExpectedSuccess(t, ch8.Step())
	test.Equate(t, ch8.CPU.V[0], 0xff)
}

func TestAttachOversizedProgram(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "toobig.ch8")
	if err := ioutil.WriteFile(fn, make([]byte, memory.MaxProgramSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	ch8 := hardware.NewChip8()
	err := ch8.AttachCartridge(romloader.NewLoader(fn))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.ProgramTooLarge))

	// the machine was never disturbed
	test.Equate(t, ch8.CPU.PC, memory.OriginAddr)
	test.Equate(t, ch8.Mem.Read(memory.OriginAddr), 0x00)
}

func TestRunContinueCheck(t *testing.T) {
	ch8 := attachProgram(t, []uint8{0x12, 0x00})

	steps := 0
	err := ch8.Run(func() (bool, error) {
		steps++
		return steps < hardware.StepsPerTick*3, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, steps, hardware.StepsPerTick*3)
}

func TestRunReportsFault(t *testing.T) {
	ch8 := attachProgram(t, []uint8{0x00, 0x00})
	err := ch8.Run(nil)
	test.ExpectedFailure(t, err)
}
