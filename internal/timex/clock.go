// Package timex holds small time helpers shared across the project.
//
// Clock abstracts the wall clock so that components which stamp or derive
// values from the current time can be driven by a fixed instant in tests.
package timex

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

// NewFixedClock returns a Clock frozen at t.
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock{T: t}
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.T
}

// FuncClock adapts a plain function to the Clock interface.
type FuncClock func() time.Time

// Now calls f.
func (f FuncClock) Now() time.Time {
	return f()
}
