package ports

import "time"

// Timer is a pending scheduled callback
type Timer interface {
	// Stop prevents the callback from firing; it reports whether the call stopped it
	Stop() bool
}

// Scheduler runs callbacks after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}
