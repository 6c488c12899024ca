package ratelimit

import "time"

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Clock provides wall time to the limiter.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

type nopLimiter struct{}

func (nopLimiter) Allow(string) bool { return true }
