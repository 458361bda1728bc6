package common

import (
	"sync"
	"time"
)

// InMemoryRateLimiter is the fallback used when redis is not configured.
// It keeps per-key request timestamps and drops the ones outside the
// window on each check.
type InMemoryRateLimiter struct {
	store              map[string][]int64
	mutex              sync.Mutex
	expirationDuration time.Duration
}

func (l *InMemoryRateLimiter) Init(expirationDuration time.Duration) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.store == nil {
		l.store = make(map[string][]int64)
		l.expirationDuration = expirationDuration
		if expirationDuration > 0 {
			go l.clearExpiredItems()
		}
	}
}

func (l *InMemoryRateLimiter) clearExpiredItems() {
	for {
		time.Sleep(l.expirationDuration)
		l.mutex.Lock()
		now := time.Now().Unix()
		for key, timestamps := range l.store {
			if len(timestamps) == 0 || now-timestamps[len(timestamps)-1] > int64(l.expirationDuration.Seconds()) {
				delete(l.store, key)
			}
		}
		l.mutex.Unlock()
	}
}

// Request reports whether key may make another request under the limit of
// maxRequestNum per duration seconds.
func (l *InMemoryRateLimiter) Request(key string, maxRequestNum int, duration int64) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	now := time.Now().Unix()
	timestamps := l.store[key]
	idx := 0
	for ; idx < len(timestamps); idx++ {
		if now-timestamps[idx] <= duration {
			break
		}
	}
	timestamps = timestamps[idx:]
	if len(timestamps) < maxRequestNum {
		timestamps = append(timestamps, now)
		l.store[key] = timestamps
		return true
	}
	l.store[key] = timestamps
	return false
}
