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

package database

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskhub-team/taskhub/api/types"
)

// UserInfo is a structure representing information of a user.
type UserInfo struct {
	ID             types.ID  `bson:"_id"`
	Handle         string    `bson:"handle"`
	Name           string    `bson:"name"`
	HashedPassword string    `bson:"hashed_password"`
	CreatedAt      time.Time `bson:"created_at"`
}

// NewUserInfo creates a new UserInfo of the given handle.
func NewUserInfo(handle, name, hashedPassword string) *UserInfo {
	return &UserInfo{
		Handle:         handle,
		Name:           name,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now(),
	}
}

// DeepCopy returns a deep copy of the UserInfo.
func (i *UserInfo) DeepCopy() *UserInfo {
	if i == nil {
		return nil
	}

	return &UserInfo{
		ID:             i.ID,
		Handle:         i.Handle,
		Name:           i.Name,
		HashedPassword: i.HashedPassword,
		CreatedAt:      i.CreatedAt,
	}
}

// ToUser converts the UserInfo to a User. The credential hash is not carried
// over.
func (i *UserInfo) ToUser() *types.User {
	return &types.User{
		ID:        i.ID,
		Handle:    i.Handle,
		Name:      i.Name,
		CreatedAt: i.CreatedAt,
	}
}

// HashedPassword hashes the given password with bcrypt.
func HashedPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}

// CompareHashAndPassword compares the hashed password with the given plain
// password.
func CompareHashAndPassword(hashed, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return fmt.Errorf("compare hash and password: %w", err)
	}

	return nil
}
