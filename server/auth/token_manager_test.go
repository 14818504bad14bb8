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

package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskhub-team/taskhub/server/auth"
	"github.com/taskhub-team/taskhub/server/backend/database"
)

func TestTokenManager(t *testing.T) {
	t.Run("generate and verify test", func(t *testing.T) {
		manager := auth.NewTokenManager("secret-key", time.Hour)
		userID := database.NewID()

		token, err := manager.Generate(userID, "alice")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := manager.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "alice", claims.Handle)
	})

	t.Run("expired token test", func(t *testing.T) {
		manager := auth.NewTokenManager("secret-key", -time.Minute)

		token, err := manager.Generate(database.NewID(), "alice")
		assert.NoError(t, err)

		_, err = manager.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong key test", func(t *testing.T) {
		manager := auth.NewTokenManager("secret-key", time.Hour)
		other := auth.NewTokenManager("other-key", time.Hour)

		token, err := manager.Generate(database.NewID(), "alice")
		assert.NoError(t, err)

		_, err = other.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage token test", func(t *testing.T) {
		manager := auth.NewTokenManager("secret-key", time.Hour)

		_, err := manager.Verify("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
