package engine

import "time"

// TimeProvider is the session clock, read once per Step
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock with its monotonic component
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the production clock
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns time.Now()
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
