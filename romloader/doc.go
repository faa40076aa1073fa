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

// Package romloader is used to specify the program to load into the emulated
// machine. ROM files are raw bytes, copied verbatim into machine memory, so
// beyond a size check there is nothing to validate at load time.
//
// Loaders are useful because they can be passed around cheaply before the
// file is touched. The file itself is read on the call to Load().
package romloader
