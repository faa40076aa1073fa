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

// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running the emulation headless, as fast as the
// host allows, for a fixed duration of time. It will optionally generate
// profiling information.
package performance

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/kimballen/gopherchip8/curated"
	"github.com/kimballen/gopherchip8/hardware"
	"github.com/kimballen/gopherchip8/romloader"
)

// sentinel for errors encountered during a performance check.
const PerformanceError = "performance: %v"

// Check runs the emulation for the specified duration, uncapped and without
// a display, and reports the achieved instruction rate.
func Check(output io.Writer, profile bool, cartload romloader.Loader, runTime string) error {
	ch8 := hardware.NewChip8()

	err := ch8.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	steps := 0

	err = cpuProfile(profile, "cpu.profile", func() error {
		// trigger that expires when the duration has elapsed. an atomic
		// flag rather than a channel; the continue check runs once per
		// instruction and a channel poll at that rate is measurable
		var timesUp int32
		time.AfterFunc(duration, func() {
			atomic.StoreInt32(&timesUp, 1)
		})

		err := ch8.Run(func() (bool, error) {
			steps++
			return atomic.LoadInt32(&timesUp) == 0, nil
		})
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	stepsPerSecond := float64(steps) / duration.Seconds()
	fmt.Fprintf(output, "%.0f instructions/sec (%d instructions in %.2f seconds)\n",
		stepsPerSecond, steps, duration.Seconds())

	return memProfile(profile, "mem.profile")
}
