package services

import "sync"

// userLocks serializes multi-step ledger mutations per user. The storage
// port has no transaction primitive, so two concurrent requests must never
// interleave the transaction-write and debt-write halves of an atomic pair.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for userID and returns its unlock function.
func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
