package todo

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Clock is the time-derived id source. It returns milliseconds.
type Clock interface {
	Millis() int64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() int64

func (f ClockFunc) Millis() int64 { return f() }

// WallClock reads the current time with ulid's millisecond timestamp.
var WallClock Clock = ClockFunc(func() int64 { return int64(ulid.Now()) })

// FixedClock always returns the millisecond timestamp of t.
// Consecutive ids still differ because the store bumps collisions.
func FixedClock(t time.Time) Clock {
	ms := int64(ulid.Timestamp(t))
	return ClockFunc(func() int64 { return ms })
}
