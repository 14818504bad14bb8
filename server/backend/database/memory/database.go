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

// Package memory implements the database interface using an in-memory
// database. It is used for testing and standalone mode.
package memory

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/backend/database"
)

// DB is an in-memory database for testing or temporarily.
type DB struct {
	db *memdb.MemDB
}

// New returns a new in-memory database.
func New() (*DB, error) {
	memDB, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}

	return &DB{
		db: memDB,
	}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return nil
}

// CreateUserInfo creates a new user with the given handle.
func (d *DB) CreateUserInfo(
	_ context.Context,
	handle, name, hashedPassword string,
) (*database.UserInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tblUsers, "handle", handle)
	if err != nil {
		return nil, fmt.Errorf("find user by handle: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%s: %w", handle, database.ErrUserAlreadyExists)
	}

	info := database.NewUserInfo(handle, name, hashedPassword)
	info.ID = database.NewID()
	if err := txn.Insert(tblUsers, info.DeepCopy()); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	txn.Commit()

	return info, nil
}

// FindUserInfoByID returns a user by ID.
func (d *DB) FindUserInfoByID(_ context.Context, id types.ID) (*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
	}

	return raw.(*database.UserInfo).DeepCopy(), nil
}

// FindUserInfoByHandle returns a user by handle.
func (d *DB) FindUserInfoByHandle(_ context.Context, handle string) (*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "handle", handle)
	if err != nil {
		return nil, fmt.Errorf("find user by handle: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", handle, database.ErrUserNotFound)
	}

	return raw.(*database.UserInfo).DeepCopy(), nil
}

// CreateProjectInfo creates a new project with the creator as its sole
// owner-role membership.
func (d *DB) CreateProjectInfo(
	_ context.Context,
	name, description string,
	owner types.ID,
) (*database.ProjectInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	info := database.NewProjectInfo(name, description, owner)
	info.ID = database.NewID()
	if err := txn.Insert(tblProjects, info.DeepCopy()); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	txn.Commit()

	return info, nil
}

// FindProjectInfoByID returns a project aggregate by ID.
func (d *DB) FindProjectInfoByID(_ context.Context, id types.ID) (*database.ProjectInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblProjects, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", id, database.ErrProjectNotFound)
	}

	return raw.(*database.ProjectInfo).DeepCopy(), nil
}

// FindProjectInfosByMember returns all projects containing a membership for
// the given user. Memberships are embedded in the project documents, so this
// walks the projects table.
func (d *DB) FindProjectInfosByMember(
	_ context.Context,
	userID types.ID,
) ([]*database.ProjectInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tblProjects, "id")
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	var infos []*database.ProjectInfo
	for raw := it.Next(); raw != nil; raw = it.Next() {
		info := raw.(*database.ProjectInfo)
		if info.FindMembership(userID) != nil {
			infos = append(infos, info.DeepCopy())
		}
	}

	return infos, nil
}

// FindProjectInfoByInviteCode returns the project whose invite-code set
// contains the given code.
func (d *DB) FindProjectInfoByInviteCode(
	_ context.Context,
	code string,
) (*database.ProjectInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tblProjects, "id")
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	for raw := it.Next(); raw != nil; raw = it.Next() {
		info := raw.(*database.ProjectInfo)
		if info.HasInviteCode(code) {
			return info.DeepCopy(), nil
		}
	}

	return nil, database.ErrInviteNotFound
}

// UpdateProjectInfo replaces the stored project document with the given
// aggregate.
func (d *DB) UpdateProjectInfo(_ context.Context, info *database.ProjectInfo) error {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblProjects, "id", info.ID.String())
	if err != nil {
		return fmt.Errorf("find project by id: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("%s: %w", info.ID, database.ErrProjectNotFound)
	}

	if err := txn.Insert(tblProjects, info.DeepCopy()); err != nil {
		return fmt.Errorf("replace project: %w", err)
	}
	txn.Commit()

	return nil
}
