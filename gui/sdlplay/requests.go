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
	"github.com/kimballen/gopherchip8/curated"
	"github.com/kimballen/gopherchip8/gui"
)

// SetFeature implements the gui.GUI interface.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetVisibility:
		scr.showWindow(args[0].(bool))

	case gui.ReqSetScale:
		return scr.setScaling(args[0].(float32))

	case gui.ReqSetFpsCap:
		scr.fpsCap = args[0].(bool)

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}
