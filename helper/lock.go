package helper

import (
	"sync"
	"time"
)

// showtimeLocks serializes booking writers per showtime within this process.
// The database row locks remain the authoritative guard; this keeps local
// contention off the database and gives a bounded wait with a clean
// retryable failure. Operations on disjoint showtimes never contend.
var showtimeLocks = &KeyedLock{locks: make(map[uint]chan struct{})}

type KeyedLock struct {
	mu    sync.Mutex
	locks map[uint]chan struct{}
}

func (k *KeyedLock) get(id uint) chan struct{} {
	k.mu.Lock()
	defer k.mu.Unlock()
	ch, ok := k.locks[id]
	if !ok {
		ch = make(chan struct{}, 1)
		k.locks[id] = ch
	}
	return ch
}

// Acquire takes the lock for id, waiting at most timeout. It reports
// whether the lock was obtained.
func (k *KeyedLock) Acquire(id uint, timeout time.Duration) bool {
	ch := k.get(id)
	select {
	case ch <- struct{}{}:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (k *KeyedLock) Release(id uint) {
	ch := k.get(id)
	select {
	case <-ch:
	default:
		// release without acquire is a programming error; do not block
	}
}

// LockShowtime acquires the per-showtime booking lock with a bounded wait.
func LockShowtime(showtimeId uint, timeout time.Duration) bool {
	return showtimeLocks.Acquire(showtimeId, timeout)
}

func UnlockShowtime(showtimeId uint) {
	showtimeLocks.Release(showtimeId)
}
