// Package clock lets record timestamps be pinned in tests
package clock

import "time"

// Clock tells the time
type Clock interface {
	Now() time.Time
}

// Func adapts a function to Clock
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// New returns the wall clock in UTC
func New() Clock {
	return Func(func() time.Time { return time.Now().UTC() })
}

// Fixed is stopped at At
type Fixed struct {
	At time.Time
}

func (c *Fixed) Now() time.Time { return c.At }
