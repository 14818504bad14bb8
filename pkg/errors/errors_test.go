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

package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskhub-team/taskhub/pkg/errors"
)

func TestStatusError(t *testing.T) {
	t.Run("status and code test", func(t *testing.T) {
		err := errors.NotFound("missing thing").WithCode("ErrThingNotFound")
		assert.Equal(t, errors.ErrCodeNotFound, errors.StatusOf(err))
		assert.Equal(t, "ErrThingNotFound", errors.CodeOf(err))
		assert.Equal(t, "missing thing", err.Error())
	})

	t.Run("wrapped status survives test", func(t *testing.T) {
		base := errors.PermissionDenied("not allowed").WithCode("ErrNotAllowed")
		wrapped := fmt.Errorf("deep: %w", fmt.Errorf("shallow: %w", base))

		assert.Equal(t, errors.ErrCodePermissionDenied, errors.StatusOf(wrapped))
		assert.Equal(t, "ErrNotAllowed", errors.CodeOf(wrapped))
		assert.True(t, errors.IsStatus(wrapped, errors.ErrCodePermissionDenied))
	})

	t.Run("plain error has no status test", func(t *testing.T) {
		err := fmt.Errorf("just an error")
		assert.Equal(t, errors.StatusCode(0), errors.StatusOf(err))
		assert.Equal(t, "", errors.CodeOf(err))
		assert.False(t, errors.IsClientError(err))
		assert.False(t, errors.IsServerError(err))
	})

	t.Run("client and server classification test", func(t *testing.T) {
		assert.True(t, errors.IsClientError(errors.InvalidArgument("bad input")))
		assert.True(t, errors.IsClientError(errors.AlreadyExists("conflict")))
		assert.True(t, errors.IsClientError(errors.Unauthenticated("who are you")))
		assert.True(t, errors.IsServerError(errors.Internal("broken")))
		assert.True(t, errors.IsServerError(errors.Unavailable("down")))
	})
}
