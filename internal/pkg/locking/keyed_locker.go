// Package locking provides in-process exclusive locks keyed by account id.
package locking

import (
	"context"
	"slices"
	"sync"
)

type slot struct {
	held chan struct{}
	refs int
}

// KeyedLocker hands out one exclusive lock per key. Locks for several keys
// are always taken in ascending key order, so two callers asking for the
// same set in a different order cannot wait on each other in a cycle.
type KeyedLocker struct {
	mu    sync.Mutex
	slots map[int64]*slot
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{
		slots: make(map[int64]*slot),
	}
}

// LockAccounts blocks until every key is held or ctx is done. On failure no
// key stays locked. The returned unlock func is safe to call more than once.
func (l *KeyedLocker) LockAccounts(ctx context.Context, keys []int64) (func(), error) {
	ordered := slices.Clone(keys)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	acquired := make([]int64, 0, len(ordered))
	for _, key := range ordered {
		s := l.retain(key)

		select {
		case s.held <- struct{}{}:
			acquired = append(acquired, key)
		case <-ctx.Done():
			l.release(key)
			l.unlock(acquired)
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.unlock(acquired) })
	}, nil
}

func (l *KeyedLocker) unlock(keys []int64) {
	for i := len(keys) - 1; i >= 0; i-- {
		l.mu.Lock()
		s := l.slots[keys[i]]
		l.mu.Unlock()

		<-s.held
		l.release(keys[i])
	}
}

func (l *KeyedLocker) retain(key int64) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = &slot{held: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++

	return s
}

func (l *KeyedLocker) release(key int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.slots[key]
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

func (l *KeyedLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.slots)
}
