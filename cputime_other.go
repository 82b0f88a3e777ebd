//go:build !unix

package fireplace

import (
	"errors"
	"time"
)

func cpuTime() (time.Duration, error) {
	return 0, errors.New("fireplace: CPU time not available on this OS")
}
