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

// Package playmode is the normal, windowed way of running the emulation. It
// connects the machine to an SDL window, sounds the beeper, maps the host
// keyboard onto the hex keypad and drives the whole thing at the machine's
// frame rate.
package playmode

import (
	"os"
	"os/signal"
	"time"

	"github.com/kimballen/gopherchip8/curated"
	"github.com/kimballen/gopherchip8/gui"
	"github.com/kimballen/gopherchip8/gui/sdlplay"
	"github.com/kimballen/gopherchip8/hardware"
	"github.com/kimballen/gopherchip8/hardware/timer"
	"github.com/kimballen/gopherchip8/romloader"
	"github.com/kimballen/gopherchip8/wavwriter"
)

// sentinel for errors encountered in playmode.
const PlayError = "playmode: %v"

// Play sets the emulation running in a window.
//
// The CPU clock and the timer clock are decoupled: stepsPerFrame
// instructions are executed for every rendered frame, while the timers tick
// at their own rate measured against the wall clock.
func Play(cartload romloader.Loader, scale float32, fpsCap bool, stepsPerFrame int, wavFile string) error {
	scr, err := sdlplay.NewSdlPlay(scale)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer scr.Destroy()

	ch8 := hardware.NewChip8()
	ch8.Video.AddPixelRenderer(scr)
	ch8.Timers.AddAudioMixer(scr)

	if wavFile != "" {
		ch8.Timers.AddAudioMixer(wavwriter.NewWavWriter(wavFile))
	}

	err = ch8.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	// connect gui
	guiChannel := make(chan gui.Event, 2)
	scr.SetEventChannel(guiChannel)

	err = scr.SetFeature(gui.ReqSetFpsCap, fpsCap)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	// we need to make sure the audio mixers conclude cleanly even when
	// ctrl-c is pressed. redirect the interrupt signal to a channel that
	// the loop below polls
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// the timer tick accumulates wall-clock time so that a slow or uncapped
	// frame rate never changes the countdown rate
	const tickPeriod = time.Second / timer.TickRate
	var accumulator time.Duration
	last := time.Now()

	for {
		scr.Service()

		select {
		case <-intChan:
			return ch8.End()
		case ev := <-guiChannel:
			switch ev.ID {
			case gui.EventWindowClose:
				return ch8.End()
			case gui.EventKeyboard:
				KeyboardEventHandler(ev.Data.(gui.EventDataKeyboard), ch8)
			}
		default:
		}

		now := time.Now()
		accumulator += now.Sub(last)
		last = now
		for accumulator >= tickPeriod {
			accumulator -= tickPeriod
			ch8.TickTimers()
		}

		for i := 0; i < stepsPerFrame; i++ {
			if err := ch8.Step(); err != nil {
				_ = ch8.End()
				return curated.Errorf(PlayError, err)
			}
		}

		// rendering blocks on the frame limiter, pacing the whole loop
		if err := ch8.Video.Render(); err != nil {
			_ = ch8.End()
			return curated.Errorf(PlayError, err)
		}
	}
}
