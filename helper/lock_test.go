package helper

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLockMutualExclusion(t *testing.T) {
	k := &KeyedLock{locks: make(map[uint]chan struct{})}

	require.True(t, k.Acquire(1, time.Second))
	assert.False(t, k.Acquire(1, 50*time.Millisecond))

	k.Release(1)
	assert.True(t, k.Acquire(1, time.Second))
	k.Release(1)
}

func TestKeyedLockDisjointKeys(t *testing.T) {
	k := &KeyedLock{locks: make(map[uint]chan struct{})}

	require.True(t, k.Acquire(1, time.Second))
	assert.True(t, k.Acquire(2, 50*time.Millisecond))

	k.Release(1)
	k.Release(2)
}

func TestKeyedLockSingleWinner(t *testing.T) {
	k := &KeyedLock{locks: make(map[uint]chan struct{})}

	const workers = 20
	var mu sync.Mutex
	var wg sync.WaitGroup
	inCritical := 0
	maxInCritical := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !k.Acquire(7, 2*time.Second) {
				return
			}
			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()
			k.Release(7)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInCritical)
}

func TestReleaseWithoutAcquireDoesNotBlock(t *testing.T) {
	k := &KeyedLock{locks: make(map[uint]chan struct{})}

	done := make(chan struct{})
	go func() {
		k.Release(3)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Release blocked on an unheld lock")
	}
}
