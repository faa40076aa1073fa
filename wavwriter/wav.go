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

// Package wavwriter allows writing of the beeper output to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety and
// written to disk on program end. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/kimballen/gopherchip8/curated"
	"github.com/kimballen/gopherchip8/hardware/timer"
	"github.com/kimballen/gopherchip8/logger"
)

// sentinel for errors from the WavWriter type.
const WavWriterError = "wavwriter: %v"

const sampleFreq = 44100
const toneFreq = 440
const toneAmplitude = 24

// WavWriter implements the timer.AudioMixer interface.
type WavWriter struct {
	filename string

	// one entry per sample. appended one notification's worth at a time
	buffer []int

	phase int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, sampleFreq),
	}
}

// SetAudio implements the timer.AudioMixer interface. Each notification
// appends one timer tick's worth of samples: a square wave while the sound
// timer is running, silence otherwise.
func (aw *WavWriter) SetAudio(sound uint8) error {
	numSamples := sampleFreq / timer.TickRate
	halfCycle := sampleFreq / (2 * toneFreq)

	for i := 0; i < numSamples; i++ {
		s := 0
		if sound > 0 && (aw.phase/halfCycle)%2 == 0 {
			s = toneAmplitude
		}
		aw.buffer = append(aw.buffer, s)
		aw.phase++
	}

	return nil
}

// EndMixing implements the timer.AudioMixer interface. The buffered samples
// are encoded and written to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	enc := wav.NewEncoder(f, sampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	logger.Logf("wavwriter", "%d samples written to %s", len(aw.buffer), aw.filename)

	return nil
}
