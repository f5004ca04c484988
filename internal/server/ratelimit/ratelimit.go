// Package ratelimit throttles scan requests per client IP using token
// buckets. A scan costs a scrape plus two LLM calls, so the default
// budget is deliberately small.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket refilling at a steady rate.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, refillRate float64, now time.Time) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
	}
}

// take refills the bucket for the elapsed time and consumes one token if
// available.
func (b *bucket) take(now time.Time) (allowed bool, remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(float64(b.capacity), b.tokens+elapsed.Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	remaining = int(b.tokens)
	resetAt = now
	if b.tokens < float64(b.capacity) {
		secondsUntilFull := (float64(b.capacity) - b.tokens) / b.refillRate
		resetAt = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, remaining, resetAt
}

// Info reports the limiter decision for one request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks one token bucket per client.
type Limiter struct {
	config *Config

	mu      sync.RWMutex
	buckets map[string]*bucket

	accessMu   sync.Mutex
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}

	now func() time.Time
}

// NewLimiter creates a limiter. A nil config uses DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
		now:        time.Now,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow decides whether the client may run another scan.
func (l *Limiter) Allow(clientID string) Info {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return Info{Allowed: true}
	}

	now := l.now()
	b := l.getBucket(clientID, now)

	l.accessMu.Lock()
	l.lastAccess[clientID] = now
	l.accessMu.Unlock()

	allowed, remaining, resetAt := b.take(now)

	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: remaining,
		ResetTime: resetAt,
	}
	if !allowed && resetAt.After(now) {
		info.RetryAfter = resetAt.Sub(now)
	}
	return info
}

func (l *Limiter) getBucket(clientID string, now time.Time) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[clientID]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.buckets[clientID]; ok {
		return existing
	}

	refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
	b = newBucket(l.config.Burst, refillRate, now)
	l.buckets[clientID] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictStale()
		case <-l.cleanupStop:
			return
		}
	}
}

// evictStale drops buckets idle for longer than one full refill window.
// An idle bucket is full again, so dropping it changes nothing.
func (l *Limiter) evictStale() {
	cutoff := l.now().Add(-l.config.Window)

	l.accessMu.Lock()
	stale := make([]string, 0)
	for id, seen := range l.lastAccess {
		if seen.Before(cutoff) {
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		delete(l.lastAccess, id)
	}
	l.accessMu.Unlock()

	l.mu.Lock()
	for _, id := range stale {
		delete(l.buckets, id)
	}
	l.mu.Unlock()
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
