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

package main

import (
	"fmt"
	"os"

	"github.com/kimballen/gopherchip8/hardware"
	"github.com/kimballen/gopherchip8/logger"
	"github.com/kimballen/gopherchip8/modalflag"
	"github.com/kimballen/gopherchip8/performance"
	"github.com/kimballen/gopherchip8/playmode"
	"github.com/kimballen/gopherchip8/romloader"
	"github.com/kimballen/gopherchip8/version"
)

// nominal number of instructions executed per rendered frame. the
// conventional interpreter speed
const defaultStepsPerFrame = hardware.StepsPerTick

func main() {
	logger.Log("gopherchip8", version.Title())

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PLAY", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough
	case "PLAY":
		err = play(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 10.0, "window scale of the 64x32 display")
	fpsCap := md.AddBool("fpscap", true, "cap rendering to the machine's frame rate")
	steps := md.AddInt("steps", defaultStepsPerFrame, "instructions executed per frame")
	wavFile := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo the application log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		cartload := romloader.NewLoader(md.GetArg(0))
		return playmode.Play(cartload, float32(*scale), *fpsCap, *steps, *wavFile)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddBool("profile", false, "write cpu and memory profiles")
	duration := md.AddString("duration", "5s", "run duration")
	log := md.AddBool("log", false, "echo the application log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		cartload := romloader.NewLoader(md.GetArg(0))
		return performance.Check(md.Output, *profile, cartload, *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
