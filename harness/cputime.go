// SPDX-License-Identifier: MIT

package harness

import "time"

// cpuTimes is a snapshot of process CPU usage.
type cpuTimes struct {
	user, sys time.Duration
}

// sub returns the usage accumulated between start and t.
func (t cpuTimes) sub(start cpuTimes) cpuTimes {
	return cpuTimes{user: t.user - start.user, sys: t.sys - start.sys}
}

// total is user + system time.
func (t cpuTimes) total() time.Duration { return t.user + t.sys }
