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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/kimballen/gopherchip8/curated"
	"github.com/kimballen/gopherchip8/hardware/memory"
	"github.com/kimballen/gopherchip8/logger"
)

// sentinel errors from the Load() function.
const (
	// the load fault. a program that cannot fit in machine memory is
	// reported before the machine is ever started.
	ProgramTooLarge = "romloader: program too large (%d bytes; maximum is %d)"

	// the named file could not be read at all.
	LoadError = "romloader: %v"
)

// recognised file extensions for CHIP-8 program files. an unrecognised
// extension is not an error, the file is loaded regardless, but it is noted
// in the log.
var fileExtensions = []string{".ch8", ".c8", ".rom", ".bin"}

// Loader abstracts the process of loading a program file into the machine.
type Loader struct {
	// filename of the program to load
	Filename string

	// the hash of the loaded data. empty until Load() has been called.
	// useful for identifying the program in logs and error reports
	Hash string

	// copy of the loaded data. subsequent calls to Load() return this copy
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the ROM filename, with the path
// and extension removed.
func (cl Loader) ShortName() string {
	sn := filepath.Base(cl.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(cl.Filename))
}

// Load the program file. The size of the data is checked against the
// capacity of machine memory; a program that cannot fit is a load fault
// (sentinel error ProgramTooLarge).
func (cl *Loader) Load() ([]byte, error) {
	if cl.Data != nil {
		return cl.Data, nil
	}

	ext := strings.ToLower(filepath.Ext(cl.Filename))
	recognised := false
	for _, e := range fileExtensions {
		if ext == e {
			recognised = true
			break // for loop
		}
	}
	if !recognised {
		logger.Logf("romloader", "unrecognised file extension for %s. loading anyway", cl.Filename)
	}

	data, err := ioutil.ReadFile(cl.Filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	if len(data) > memory.MaxProgramSize {
		return nil, curated.Errorf(ProgramTooLarge, len(data), memory.MaxProgramSize)
	}

	cl.Data = data
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	logger.Logf("romloader", "%s (%d bytes) sha1=%s", cl.ShortName(), len(data), cl.Hash)

	return cl.Data, nil
}
