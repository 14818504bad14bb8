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
 */

package locker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockUnlock(t *testing.T) {
	l := New()

	l.Lock("test")
	assert.NoError(t, l.Unlock("test"))
}

func TestUnlockUnknownName(t *testing.T) {
	l := New()

	assert.ErrorIs(t, l.Unlock("never-locked"), ErrNoSuchLock)
}

func TestTryLock(t *testing.T) {
	l := New()

	assert.True(t, l.TryLock("test"))
	assert.False(t, l.TryLock("test"))
	assert.NoError(t, l.Unlock("test"))
	assert.True(t, l.TryLock("test"))
	assert.NoError(t, l.Unlock("test"))
}

func TestLockNamesAreIndependent(t *testing.T) {
	l := New()

	l.Lock("first")
	// A different name must not block.
	done := make(chan struct{})
	go func() {
		l.Lock("second")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on an independent name blocked")
	}

	assert.NoError(t, l.Unlock("first"))
	assert.NoError(t, l.Unlock("second"))
}

func TestConcurrentCounter(t *testing.T) {
	l := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Lock("counter")
			counter++
			assert.NoError(t, l.Unlock("counter"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestLockIsDroppedWithoutWaiters(t *testing.T) {
	l := New()

	l.Lock("ephemeral")
	assert.NoError(t, l.Unlock("ephemeral"))

	l.mu.Lock()
	_, exists := l.locks["ephemeral"]
	l.mu.Unlock()
	assert.False(t, exists)
}
