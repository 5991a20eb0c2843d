package reservation

import "sync"

// roomLocks serializes the conflict scan and insert per room. Without it two
// concurrent requests for overlapping dates can both pass the scan before
// either insert commits.
type roomLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *roomLocks) lock(roomID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
