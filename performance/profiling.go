// This file is part of Gopherway.
//
// Gopherway is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherway is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherway.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"gopherway/curated"
)

// Profile indicates the type of profiling information to generate during a
// Run.
type Profile int

// List of valid Profile values. Values can be ORed together.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
	ProfileAll = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfileString decodes a comma separated list of profile names: cpu,
// mem, trace, all or none.
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone

	for _, t := range strings.Split(strings.ToLower(s), ",") {
		switch strings.TrimSpace(t) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf("profiling: unrecognised profile type: %s", t)
		}
	}

	return p, nil
}

// RunProfiler runs the supplied function with whatever profiling the
// profile argument asks for. Output files are named from the tag argument.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(tag + "_cpu.profile")
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(tag + "_trace.profile")
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		if err := trace.Start(f); err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer trace.Stop()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(tag + "_mem.profile")
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("profiling: %v", err)
		}
	}

	return nil
}
