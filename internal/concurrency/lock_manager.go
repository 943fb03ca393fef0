package concurrency

import (
	"hash/fnv"
	"sync"
)

// DefaultStripes is the stripe count of NewLockManager
const DefaultStripes = 1024

// LockManager hands out per-key mutexes. Keys hash onto a fixed set of
// stripes, so two keys may share a mutex; callers must never hold two
// locks of the same manager at once.
type LockManager struct {
	stripes []sync.Mutex
}

// NewLockManager creates a LockManager with DefaultStripes stripes
func NewLockManager() *LockManager {
	return NewStripedLockManager(DefaultStripes)
}

// NewStripedLockManager creates a LockManager with n stripes, at least one
func NewStripedLockManager(n int) *LockManager {
	if n < 1 {
		n = 1
	}
	return &LockManager{stripes: make([]sync.Mutex, n)}
}

// GetLock returns the mutex guarding key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &lm.stripes[h.Sum32()%uint32(len(lm.stripes))]
}

// WithLock runs fn while holding the lock of key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
