package engine

import "time"

// Clock abstracts wall-clock reads so tests can drive virtual time through
// the tick path deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns a Clock backed by the system clock
func RealClock() Clock { return realClock{} }
