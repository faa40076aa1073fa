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

// Package timer implements the two countdown timers of the CHIP-8 machine.
// The delay timer is general purpose and visible to the program; the sound
// timer is the machine's only audio facility - a tone plays for as long as
// it is non-zero.
//
// Both timers decrement at TickRate regardless of how fast the CPU is
// stepping. The host is responsible for calling Tick() at that rate,
// measured against the wall clock.
package timer

// TickRate is the rate at which the timers decrement, in ticks per second.
const TickRate = 60

// AudioMixer implementations work with sound; most probably playing it. The
// mixer receives the sound timer value on every tick and on every write to
// the sound timer; a non-zero value means the tone should be sounding.
type AudioMixer interface {
	SetAudio(sound uint8) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the AudioMixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}

// Timers is the pair of countdown timers.
type Timers struct {
	delay uint8
	sound uint8

	mixers []AudioMixer
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

// AddAudioMixer registers an implementation of AudioMixer. Multiple mixers
// can be added.
func (tmr *Timers) AddAudioMixer(m AudioMixer) {
	tmr.mixers = append(tmr.mixers, m)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

// Tick decrements both timers, each clamped at zero. Must be called at
// TickRate against the wall clock, not the instruction count.
func (tmr *Timers) Tick() error {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
	return tmr.mix()
}

// Delay returns the current delay timer value. Implements the bus.TimerBus
// interface.
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// SetDelay sets the delay timer. Implements the bus.TimerBus interface.
func (tmr *Timers) SetDelay(value uint8) {
	tmr.delay = value
}

// SetSound sets the sound timer. Implements the bus.TimerBus interface.
//
// The new value is forwarded to the audio mixers immediately rather than
// waiting for the next tick, so a tone starts without a perceptible delay.
func (tmr *Timers) SetSound(value uint8) {
	tmr.sound = value
	_ = tmr.mix()
}

// Sound returns the current sound timer value.
func (tmr *Timers) Sound() uint8 {
	return tmr.sound
}

func (tmr *Timers) mix() error {
	for _, m := range tmr.mixers {
		if err := m.SetAudio(tmr.sound); err != nil {
			return err
		}
	}
	return nil
}

// EndMixing tells all registered audio mixers that the session is over.
func (tmr *Timers) EndMixing() error {
	for _, m := range tmr.mixers {
		if err := m.EndMixing(); err != nil {
			return err
		}
	}
	return nil
}
