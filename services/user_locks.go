package services

import "sync"

// UserLocks serializes cart and checkout mutations per user. Different
// users proceed in parallel; cross-user atomicity is the stock ledger's
// job, not this lock's. One instance is shared by CartService and
// OrderService so a checkout cannot interleave with a cart mutation for
// the same user. Entries are refcounted and dropped once the last holder
// releases, so the map stays proportional to in-flight requests.
type UserLocks struct {
	mu    sync.Mutex
	locks map[uint]*userLock
}

type userLock struct {
	sync.Mutex
	refs int
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[uint]*userLock)}
}

func (l *UserLocks) Lock(userID uint) func() {
	l.mu.Lock()
	e, ok := l.locks[userID]
	if !ok {
		e = &userLock{}
		l.locks[userID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.Lock()
	return func() {
		e.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}

func (l *UserLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
