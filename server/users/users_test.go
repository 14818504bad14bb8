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

package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/backend/database"
	"github.com/taskhub-team/taskhub/server/backend/database/memory"
	"github.com/taskhub-team/taskhub/server/backend/sync"
	"github.com/taskhub-team/taskhub/server/users"
)

func setupBackend(t *testing.T) *backend.Backend {
	db, err := memory.New()
	assert.NoError(t, err)

	return &backend.Backend{
		Config:  &backend.Config{SecretKey: "test-key", TokenDuration: "1h"},
		DB:      db,
		Lockers: sync.New(),
	}
}

func TestSignUp(t *testing.T) {
	t.Run("sign up test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)

		user, err := users.SignUp(ctx, be, "alice", "Alice", "password123!")
		assert.NoError(t, err)
		assert.NoError(t, user.ID.Validate())
		assert.Equal(t, "alice", user.Handle)
		assert.Equal(t, "Alice", user.Name)

		// The stored password must be hashed.
		info, err := be.DB.FindUserInfoByHandle(ctx, "alice")
		assert.NoError(t, err)
		assert.NotEqual(t, "password123!", info.HashedPassword)
	})

	t.Run("duplicate handle test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)

		_, err := users.SignUp(ctx, be, "alice", "Alice", "password123!")
		assert.NoError(t, err)

		_, err = users.SignUp(ctx, be, "alice", "Another Alice", "password456!")
		assert.ErrorIs(t, err, database.ErrUserAlreadyExists)
	})
}

func TestLogIn(t *testing.T) {
	t.Run("correct credentials test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)

		created, err := users.SignUp(ctx, be, "bob", "Bob", "password123!")
		assert.NoError(t, err)

		user, err := users.LogIn(ctx, be, "bob", "password123!")
		assert.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("wrong password test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)

		_, err := users.SignUp(ctx, be, "bob", "Bob", "password123!")
		assert.NoError(t, err)

		_, err = users.LogIn(ctx, be, "bob", "wrong-password")
		assert.ErrorIs(t, err, users.ErrMismatchedPassword)
	})

	t.Run("unknown handle test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)

		_, err := users.LogIn(ctx, be, "nobody", "password123!")
		assert.ErrorIs(t, err, database.ErrUserNotFound)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("profile fetch test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)

		created, err := users.SignUp(ctx, be, "carol", "Carol", "password123!")
		assert.NoError(t, err)

		user, err := users.GetUser(ctx, be, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, "carol", user.Handle)
	})

	t.Run("unknown user test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)

		_, err := users.GetUser(ctx, be, database.NewID())
		assert.ErrorIs(t, err, database.ErrUserNotFound)
	})
}
