package application

import "time"

// Clock abstracts time so processing durations are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default implementation.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
