package ratelimit

import (
	"sync"
	"time"
)

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are dropped; 0 keeps them
	MaxBuckets int           // 0 means unbounded
}

// TokenBucketLimiter keeps one token bucket per key.
type TokenBucketLimiter struct {
	cfg         Config
	clock       Clock
	mu          sync.Mutex
	buckets     map[string]*bucket
	lastCleanup time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucketLimiter creates a limiter; a nil clock uses wall time.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = wallClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{cfg: cfg, clock: clock, buckets: make(map[string]*bucket)}
}

// Allow takes one token from key's bucket.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanupLocked(now, false)
	b, ok := l.buckets[key]
	if !ok {
		if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
			l.cleanupLocked(now, true)
			if len(l.buckets) >= l.cfg.MaxBuckets {
				return false
			}
		}
		b = &bucket{tokens: float64(l.cfg.Burst), last: now}
		l.buckets[key] = b
	}
	return b.take(now, l.cfg.Rate, float64(l.cfg.Burst))
}

func (b *bucket) take(now time.Time, rate, burst float64) bool {
	if dt := now.Sub(b.last); dt > 0 {
		b.tokens = min(burst, b.tokens+dt.Seconds()*rate)
		b.last = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// cleanupLocked drops idle buckets at most every max(TTL/2, 1m) unless forced.
func (l *TokenBucketLimiter) cleanupLocked(now time.Time, force bool) {
	if l.cfg.TTL <= 0 {
		return
	}
	interval := max(time.Minute, l.cfg.TTL/2)
	if !force && !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < interval {
		return
	}
	l.lastCleanup = now
	for k, b := range l.buckets {
		if now.Sub(b.last) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
