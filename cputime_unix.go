//go:build unix

package fireplace

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuTime returns the user+system CPU time used by this process so far.
func cpuTime() (time.Duration, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), nil
}
