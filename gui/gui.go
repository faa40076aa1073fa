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

// Package gui defines the operations that can be performed on a visual user
// interface. A GUI implementation is attached to the machine through the
// narrower collaborator interfaces (video.PixelRenderer, timer.AudioMixer);
// the GUI interface itself carries the host-facing concerns: feature
// requests, user input events and the servicing of the host's event queue.
package gui

// GUI defines the operations that can be performed on visual user
// interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// SetEventChannel attaches the channel over which user input events are
	// sent.
	SetEventChannel(chan Event)

	// Service the GUI's event queue. Must be called regularly from the main
	// goroutine.
	Service()

	// Destroy releases all resources held by the GUI.
	Destroy()
}

// UnsupportedGuiFeature is returned by SetFeature() when the implementation
// does not support the requested feature.
const UnsupportedGuiFeature = "unsupported gui feature: %v"
