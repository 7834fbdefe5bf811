package elloapi

import "time"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock is the wall clock
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock is a clock that always reports the same time
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time {
		return t
	})
}
