package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()

	assert.Same(t, lm.GetLock("raider"), lm.GetLock("raider"))
	assert.NotSame(t, lm.GetLock("raider"), lm.GetLock("scav"))
}

func TestLockManager_LockSerialisesKey(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.Lock("raider")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestLockManager_KeysAreIndependent(t *testing.T) {
	lm := NewLockManager()

	unlock := lm.Lock("raider")
	defer unlock()

	assert.True(t, lm.GetLock("scav").TryLock())
}
