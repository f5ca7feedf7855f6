package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key.
// Mutexes are kept for the life of the manager.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the mutex for key and returns its release func
func (lm *LockManager) Lock(key string) (unlock func()) {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}
