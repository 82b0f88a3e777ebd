package fireplace

import (
	"io"
	"time"

	"github.com/felixge/fgprof"
)

// Profiled wraps s so that each call is profiled with fgprof and the profile
// (pprof format) is written to w. An error finishing the profile is stored
// in *perr; it does not affect the solver's result.
func Profiled[T any](s Solver[T], w io.Writer, perr *error) Solver[T] {
	return func(input string, args []string) (T, error) {
		stop := fgprof.Start(w, fgprof.FormatPprof)
		v, err := s(input, args)
		*perr = stop()
		return v, err
	}
}

// CPUTimed wraps s so that each call stores the process CPU time (user+system)
// it used in *d. If CPU time cannot be measured, *d is left unchanged.
func CPUTimed[T any](s Solver[T], d *time.Duration) Solver[T] {
	return func(input string, args []string) (T, error) {
		before, err0 := cpuTime()
		v, err := s(input, args)
		after, err1 := cpuTime()
		if err0 == nil && err1 == nil {
			*d = after - before
		}
		return v, err
	}
}
