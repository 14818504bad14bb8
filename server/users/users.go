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

// Package users provides business logic for user accounts.
package users

import (
	"context"
	"fmt"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/pkg/errors"
	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/backend/database"
)

// ErrMismatchedPassword is returned when the given password does not match
// the stored one.
var ErrMismatchedPassword = errors.Unauthenticated("mismatched password").WithCode("ErrMismatchedPassword")

// SignUp registers a new user with the given credentials.
func SignUp(
	ctx context.Context,
	be *backend.Backend,
	handle, name, password string,
) (*types.User, error) {
	hashed, err := database.HashedPassword(password)
	if err != nil {
		return nil, err
	}

	info, err := be.DB.CreateUserInfo(ctx, handle, name, hashed)
	if err != nil {
		return nil, err
	}

	return info.ToUser(), nil
}

// LogIn checks the given credentials and returns the user on success.
func LogIn(
	ctx context.Context,
	be *backend.Backend,
	handle, password string,
) (*types.User, error) {
	info, err := be.DB.FindUserInfoByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	if err := database.CompareHashAndPassword(info.HashedPassword, password); err != nil {
		return nil, fmt.Errorf("%s: %w", handle, ErrMismatchedPassword)
	}

	return info.ToUser(), nil
}

// GetUser returns the user with the given ID.
func GetUser(
	ctx context.Context,
	be *backend.Backend,
	id types.ID,
) (*types.User, error) {
	info, err := be.DB.FindUserInfoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return info.ToUser(), nil
}
