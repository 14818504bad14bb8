/*
 * Copyright 2025 The TaskHub Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 * This file was written with reference to moby/locker.
 *   https://github.com/moby/locker
 */

/*
Package locker provides name-keyed mutexes so that callers can serialize work
on a single resource without holding one global lock.

The implementation looks close to a sync.Mutex, however the user must provide
a reference to use to refer to the underlying lock when locking and
unlocking, and unlock may generate an error.

If a lock with a given name does not exist when Lock is called, one is
created. Lock references are automatically cleaned up on Unlock if nothing
else is waiting for the lock.
*/
package locker

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNoSuchLock is returned when the requested lock does not exist.
var ErrNoSuchLock = errors.New("no such lock")

// Locker provides a locking mechanism based on the passed in reference name.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*lockCtr
}

// lockCtr is used by Locker to represent a lock with a given name.
type lockCtr struct {
	mu sync.Mutex
	// waiters is the number of waiters waiting to acquire the lock.
	// this is int32 instead of uint32 so we can add `-1` in `dec()`
	waiters int32
}

func (l *lockCtr) inc() {
	atomic.AddInt32(&l.waiters, 1)
}

func (l *lockCtr) dec() {
	atomic.AddInt32(&l.waiters, -1)
}

func (l *lockCtr) count() int32 {
	return atomic.LoadInt32(&l.waiters)
}

// New creates a new Locker.
func New() *Locker {
	return &Locker{
		locks: make(map[string]*lockCtr),
	}
}

// Lock locks a mutex with the given name. If it doesn't exist, one is created.
func (l *Locker) Lock(name string) {
	nameLock := l.register(name)

	// Lock the nameLock outside the main mutex so we don't block other
	// operations; once locked we can decrement the number of waiters.
	nameLock.mu.Lock()
	nameLock.dec()
}

// TryLock attempts to lock a mutex with the given name without blocking and
// reports whether it succeeded. If the lock doesn't exist, one is created.
func (l *Locker) TryLock(name string) bool {
	nameLock := l.register(name)

	succeeded := nameLock.mu.TryLock()
	nameLock.dec()
	return succeeded
}

// Unlock unlocks the mutex with the given name. If no waiters remain, the
// lock is dropped from the map.
func (l *Locker) Unlock(name string) error {
	l.mu.Lock()
	nameLock, exists := l.locks[name]
	if !exists {
		l.mu.Unlock()
		return ErrNoSuchLock
	}

	if nameLock.count() == 0 {
		delete(l.locks, name)
	}
	nameLock.mu.Unlock()

	l.mu.Unlock()
	return nil
}

// register returns the lock counter for the given name, creating it if
// needed, with the waiter count already incremented. Incrementing inside the
// main mutex makes sure the lock isn't deleted if Lock and Unlock are called
// concurrently.
func (l *Locker) register(name string) *lockCtr {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*lockCtr)
	}

	nameLock, exists := l.locks[name]
	if !exists {
		nameLock = &lockCtr{}
		l.locks[name] = nameLock
	}
	nameLock.inc()
	l.mu.Unlock()

	return nameLock
}
