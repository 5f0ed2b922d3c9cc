// Copyright 2026 Aether Control AS
//
//    All Rights Reserved

package utils

import "time"

// Clock interface
type Clock interface {
	Now() time.Time
}

// RealClock provides a real clock
type RealClock struct{}

// Now returns the current date and time
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant; used in tests to make
// telemetry timestamps and history time strings deterministic
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.Time
}
