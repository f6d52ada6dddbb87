// Package clock abstracts the wall clock so session expiry can be tested
// deterministically.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System is the Clock backed by the real wall clock.
type System struct{}

// New returns the system clock.
func New() *System {
	return &System{}
}

func (*System) Now() time.Time {
	return time.Now()
}
