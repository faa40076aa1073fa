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

package timer_test

import (
	"testing"

	"github.com/kimballen/gopherchip8/hardware/timer"
	"github.com/kimballen/gopherchip8/test"
)

func TestCountdown(t *testing.T) {
	tmr := timer.NewTimers()

	tmr.SetDelay(5)
	for i := 0; i < 5; i++ {
		test.ExpectedSuccess(t, tmr.Tick())
	}
	test.Equate(t, tmr.Delay(), 0)

	// a sixth tick must not underflow
	test.ExpectedSuccess(t, tmr.Tick())
	test.Equate(t, tmr.Delay(), 0)
}

func TestTimersAreIndependent(t *testing.T) {
	tmr := timer.NewTimers()

	tmr.SetDelay(2)
	tmr.SetSound(4)
	tmr.Tick()
	tmr.Tick()
	test.Equate(t, tmr.Delay(), 0)
	test.Equate(t, tmr.Sound(), 2)
}

type testMixer struct {
	sound []uint8
	ended bool
}

func (m *testMixer) SetAudio(sound uint8) error {
	m.sound = append(m.sound, sound)
	return nil
}

func (m *testMixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestAudioMixer(t *testing.T) {
	tmr := timer.NewTimers()
	m := &testMixer{}
	tmr.AddAudioMixer(m)

	// SetSound() reaches the mixer immediately
	tmr.SetSound(2)
	test.Equate(t, len(m.sound), 1)
	test.Equate(t, m.sound[0], 2)

	// and then once per tick
	tmr.Tick()
	tmr.Tick()
	tmr.Tick()
	test.Equate(t, len(m.sound), 4)
	test.Equate(t, m.sound[1], 1)
	test.Equate(t, m.sound[2], 0)
	test.Equate(t, m.sound[3], 0)

	test.ExpectedSuccess(t, tmr.EndMixing())
	test.Equate(t, m.ended, true)
}
