package infrastructure

import (
	"time"

	"sheetforecast.app/internal/ports"
)

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// SystemScheduler runs callbacks on runtime timers
type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}

var (
	_ ports.Clock     = SystemClock{}
	_ ports.Scheduler = SystemScheduler{}
)
