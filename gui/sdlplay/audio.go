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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/kimballen/gopherchip8/curated"
	"github.com/kimballen/gopherchip8/hardware/timer"
)

const sampleFreq = 44100

// the pitch of the beeper. the machine has no pitch control, any audible
// tone will do
const toneFreq = 440

const toneAmplitude = 24

// beeper queues a square wave to an SDL audio device while the sound timer
// is running.
type beeper struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// one timer tick's worth of samples, regenerated on every queue so the
	// wave continues across tick boundaries
	buffer []uint8
	phase  int
}

func newBeeper() (*beeper, error) {
	aud := &beeper{}

	// prerequisite: SDL_INIT_AUDIO must be included in the call to
	// sdl.Init()
	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	aud.spec = actualSpec
	aud.buffer = make([]uint8, sampleFreq/timer.TickRate)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio receives the sound timer value. It is called on every timer tick
// and on every write to the sound timer; a nonzero value queues one tick's
// worth of tone.
func (aud *beeper) SetAudio(sound uint8) error {
	if sound == 0 {
		return nil
	}

	// never hold more than two ticks of tone in the queue. without this
	// check a sound timer written every frame would push the queue, and
	// therefore the audio lag, out indefinitely
	if sdl.GetQueuedAudioSize(aud.id) > uint32(2*len(aud.buffer)) {
		return nil
	}

	halfCycle := sampleFreq / (2 * toneFreq)
	for i := range aud.buffer {
		if (aud.phase/halfCycle)%2 == 0 {
			aud.buffer[i] = aud.spec.Silence + toneAmplitude
		} else {
			aud.buffer[i] = aud.spec.Silence
		}
		aud.phase++
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

// EndMixing drains whatever tone is still queued.
func (aud *beeper) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	return nil
}

func (aud *beeper) close() {
	sdl.CloseAudioDevice(aud.id)
}
