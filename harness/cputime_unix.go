// SPDX-License-Identifier: MIT

//go:build unix

package harness

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuNow reads user and system CPU time of the current process.
func cpuNow() (cpuTimes, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return cpuTimes{}, err
	}

	return cpuTimes{
		user: time.Duration(ru.Utime.Nano()),
		sys:  time.Duration(ru.Stime.Nano()),
	}, nil
}
