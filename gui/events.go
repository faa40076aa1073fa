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

package gui

// EventID idenitifies the type of event being sent over the event channel.
type EventID int

// List of valid event identifiers.
const (
	// the user has closed the gui window.
	EventWindowClose EventID = iota

	// a key on the host keyboard has been pressed or released. the
	// accompanying data is of type EventDataKeyboard.
	EventKeyboard
)

// EventData represents the data that is associated with an event.
type EventData interface{}

// Event is the structure that is passed over the event channel.
type Event struct {
	ID   EventID
	Data EventData
}

// EventDataKeyboard is the data that accompanies EventKeyboard events. Key
// is the host key name as reported by the windowing library.
type EventDataKeyboard struct {
	Key  string
	Down bool
}
