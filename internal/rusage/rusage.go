// Package rusage samples the CPU time consumed by the current process.
package rusage

import "time"

// Sample is a point-in-time reading of process CPU usage.
type Sample struct {
	User   time.Duration
	System time.Duration
}

// Total returns user plus system time.
func (s Sample) Total() time.Duration { return s.User + s.System }

// Sub returns the usage accumulated between earlier and s.
func (s Sample) Sub(earlier Sample) Sample {
	return Sample{
		User:   s.User - earlier.User,
		System: s.System - earlier.System,
	}
}
