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

// Package sdlplay is an SDL implementation of the gui.GUI interface, and of
// the video.PixelRenderer and timer.AudioMixer collaborator interfaces. It
// presents the 64x32 framebuffer in a scaled window and sounds a square-wave
// beeper while the machine's sound timer is running.
package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/kimballen/gopherchip8/curated"
	"github.com/kimballen/gopherchip8/gui"
	"github.com/kimballen/gopherchip8/hardware/timer"
	"github.com/kimballen/gopherchip8/hardware/video"
	"github.com/kimballen/gopherchip8/logger"
	"github.com/kimballen/gopherchip8/performance/limiter"
)

// sentinel for errors from the SDL library.
const SDLError = "sdlplay: %v"

const windowTitle = "GopherChip8"
const pixelDepth = 4

// pixel colours for the two framebuffer states. a muted green on black,
// after the look of the original hardware's monitors.
var pixelOn = [3]byte{0x7f, 0xe8, 0x7f}
var pixelOff = [3]byte{0x10, 0x20, 0x10}

// SdlPlay is an SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// connects the SDL event queue with the parent process
	eventChannel chan gui.Event

	// limits screen updates to the machine's frame rate
	lmtr   *limiter.FpsLimiter
	fpsCap bool

	// all audio is handled by the beeper type
	snd *beeper

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture on every
	// NewFrame()
	pixels []byte

	// the amount of scaling applied to each framebuffer pixel
	scale float32
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The window is created hidden; send a ReqSetVisibility request to show it.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		scale:  scale,
		fpsCap: true,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(video.Width)*scale), int32(float32(video.Height)*scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// the texture is the same size as the framebuffer. scaling is applied
	// by the renderer when the texture is copied to the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING,
		video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.snd, err = newBeeper()
	if err != nil {
		return nil, err
	}

	err = scr.setScaling(scale)
	if err != nil {
		return nil, err
	}

	scr.lmtr = limiter.NewFpsLimiter(timer.TickRate)

	setupService()

	return scr, nil
}

// use scale of -1 to reapply the existing scale value.
func (scr *SdlPlay) setScaling(scale float32) error {
	if scale >= 0 {
		scr.scale = scale
	}

	w := int32(float32(video.Width) * scr.scale)
	h := int32(float32(video.Height) * scr.scale)
	scr.window.SetSize(w, h)

	err := scr.renderer.SetScale(scr.scale, scr.scale)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// NewFrame implements the video.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(frame video.Frame) error {
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			i := (y*video.Width + x) * pixelDepth
			c := pixelOff
			if frame[y][x] {
				c = pixelOn
			}
			scr.pixels[i] = c[0]
			scr.pixels[i+1] = c[1]
			scr.pixels[i+2] = c[2]
		}
	}

	if scr.fpsCap {
		scr.lmtr.Wait()
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	scr.renderer.Present()

	return nil
}

// EndRendering implements the video.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	return nil
}

// SetAudio implements the timer.AudioMixer interface.
func (scr *SdlPlay) SetAudio(sound uint8) error {
	return scr.snd.SetAudio(sound)
}

// EndMixing implements the timer.AudioMixer interface.
func (scr *SdlPlay) EndMixing() error {
	return scr.snd.EndMixing()
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(eventChannel chan gui.Event) {
	scr.eventChannel = eventChannel
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	if err := scr.texture.Destroy(); err != nil {
		logger.Logf("sdlplay", "%v", err)
	}
	if err := scr.renderer.Destroy(); err != nil {
		logger.Logf("sdlplay", "%v", err)
	}
	if err := scr.window.Destroy(); err != nil {
		logger.Logf("sdlplay", "%v", err)
	}
	scr.snd.close()
}
