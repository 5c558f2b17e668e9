// SPDX-License-Identifier: MIT

//go:build !unix

package harness

import "time"

// processStart anchors the wall-clock fallback.
var processStart = time.Now()

// cpuNow has no rusage to read here; it reports elapsed wall time as user time.
func cpuNow() (cpuTimes, error) {
	return cpuTimes{user: time.Since(processStart)}, nil
}
