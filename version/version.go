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

package version

import (
	"fmt"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherChip8"

// set with the go linker's -X flag at build time. if number is empty then
// the project was probably not built using the makefile
var number string

// Version returns the version string and whether this is a numbered release
// version.
func Version() (string, bool) {
	if number == "" {
		return "unreleased", false
	}
	return number, true
}

// Title returns the application name and version as a single string.
func Title() string {
	v, _ := Version()
	return fmt.Sprintf("%s (%s)", ApplicationName, v)
}
