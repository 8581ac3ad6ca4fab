package main

import (
	"runtime"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	auto := runtime.GOMAXPROCS(0) / 2
	if auto < minWorkers {
		auto = minWorkers
	}
	if auto > maxWorkers {
		auto = maxWorkers
	}

	tests := []struct {
		name string
		flag int
		days int
		want int
	}{
		{name: "explicit", flag: 3, days: 6, want: 3},
		{name: "explicit capped by days", flag: 16, days: 6, want: 6},
		{name: "explicit above auto max", flag: 12, days: 20, want: 12},
		{name: "auto", flag: 0, days: 100, want: auto},
		{name: "auto capped by days", flag: 0, days: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveWorkers(tt.flag, tt.days); got != tt.want {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d", tt.flag, tt.days, got, tt.want)
			}
		})
	}
}
