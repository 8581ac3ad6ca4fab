package main

import "runtime"

// Worker bounds for automatic sizing.
const (
	minWorkers = 1
	maxWorkers = 8
)

// resolveWorkers determines how many days are built concurrently.
// Priority: explicit flag > GOMAXPROCS-based calculation.
// The result never exceeds the number of days.
func resolveWorkers(flagWorkers, days int) int {
	n := flagWorkers
	if n <= 0 {
		// GOMAXPROCS is adjusted by automaxprocs for containers
		n = runtime.GOMAXPROCS(0) / 2
		if n < minWorkers {
			n = minWorkers
		}
		if n > maxWorkers {
			n = maxWorkers
		}
	}
	if days > 0 && n > days {
		n = days
	}
	return n
}
