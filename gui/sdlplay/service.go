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

	"github.com/kimballen/gopherchip8/gui"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and take
	// time to service for no good reason. we have no use for the mouse
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main goroutine.
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.eventChannel == nil {
		return
	}

	// loop until there are no more events to retrieve. servicing just one
	// event per call is not enough, queued events would take one call
	// longer to resolve for every entry before them in the queue
	empty := false
	for !empty {
		// check for SDL events, timing out straight away if there is
		// nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.eventChannel <- gui.Event{ID: gui.EventWindowClose}

		case *sdl.KeyboardEvent:
			if ev.Repeat == 0 {
				scr.eventChannel <- gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Down: ev.Type == sdl.KEYDOWN,
					},
				}
			}

		case nil:
			// a nil value means WaitEventTimeout has timed out and the
			// event queue is empty
			empty = true
		}
	}
}
