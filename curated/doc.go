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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like the Errorf() function in
// the fmt package, and returns an error.
//
// The pattern string doubles as the identity of the error. The Is() function
// checks whether an error was created from a specific pattern:
//
//	e := curated.Errorf("machine fault: %d", a)
//
//	if curated.Is(e, "machine fault: %d") {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain. Sentinel patterns for this emulation (the
// decode fault, the stack fault, the load fault) are defined in the packages
// that create them and tested for with Has() at the outermost layer of the
// program.
//
// The Error() function implementation normalises the error chain, removing
// adjacent duplicate message parts as the chain is unwound into a string.
package curated
