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

// Package database provides the database interface for the TaskHub backend.
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/pkg/errors"
)

var (
	// ErrUserNotFound is returned when the user is not found.
	ErrUserNotFound = errors.NotFound("user not found").WithCode("ErrUserNotFound")

	// ErrUserAlreadyExists is returned when the handle is already taken.
	ErrUserAlreadyExists = errors.AlreadyExists("user already exists").WithCode("ErrUserAlreadyExists")

	// ErrProjectNotFound is returned when the project is not found.
	ErrProjectNotFound = errors.NotFound("project not found").WithCode("ErrProjectNotFound")

	// ErrTaskNotFound is returned when the task is not found in the project.
	ErrTaskNotFound = errors.NotFound("task not found").WithCode("ErrTaskNotFound")

	// ErrMembershipNotFound is returned when the user has no membership in
	// the project.
	ErrMembershipNotFound = errors.NotFound("user is not a member of the project").WithCode("ErrMembershipNotFound")

	// ErrMemberAlreadyExists is returned when the user already holds a
	// membership in the project.
	ErrMemberAlreadyExists = errors.AlreadyExists("user is already a member of the project").WithCode("ErrMemberAlreadyExists")

	// ErrNotPrivileged is returned when the member's role does not permit the
	// requested mutation.
	ErrNotPrivileged = errors.PermissionDenied("role is not allowed to perform the operation").WithCode("ErrNotPrivileged")

	// ErrOwnerCannotLeave is returned when an owner attempts to leave the
	// project.
	ErrOwnerCannotLeave = errors.FailedPrecond("owner cannot leave the project").WithCode("ErrOwnerCannotLeave")

	// ErrLastOwner is returned when an operation would leave the project
	// without any owner.
	ErrLastOwner = errors.FailedPrecond("project must keep at least one owner").WithCode("ErrLastOwner")

	// ErrInviteNotFound is returned when no project holds the invite code.
	ErrInviteNotFound = errors.NotFound("invite code not found").WithCode("ErrInviteNotFound")

	// ErrInvalidMemberRole is returned when the given role is not one of the
	// known roles.
	ErrInvalidMemberRole = errors.InvalidArgument("invalid member role").WithCode("ErrInvalidMemberRole")

	// ErrMembershipInconsistent is returned when a project matched by a
	// membership query does not actually contain the membership. It should be
	// unreachable given the query predicate.
	ErrMembershipInconsistent = errors.Internal("project does not contain the membership").WithCode("ErrMembershipInconsistent")
)

// NewID returns a fresh ObjectID-shaped ID.
func NewID() types.ID {
	return types.ID(bson.NewObjectID().Hex())
}

// Database represents the persistence boundary of the server. A project and
// its nested memberships, tasks and invite codes form one aggregate document:
// it is loaded wholesale, mutated in memory and re-persisted wholesale via
// UpdateProjectInfo. Document writes are atomic at this boundary.
type Database interface {
	// Close closes all resources of this database.
	Close() error

	// CreateUserInfo creates a new user with the given handle. It returns
	// ErrUserAlreadyExists when the handle is taken.
	CreateUserInfo(ctx context.Context, handle, name, hashedPassword string) (*UserInfo, error)

	// FindUserInfoByID returns a user by ID.
	FindUserInfoByID(ctx context.Context, id types.ID) (*UserInfo, error)

	// FindUserInfoByHandle returns a user by handle.
	FindUserInfoByHandle(ctx context.Context, handle string) (*UserInfo, error)

	// CreateProjectInfo creates a new project with the creator as its sole,
	// owner-role membership.
	CreateProjectInfo(ctx context.Context, name, description string, owner types.ID) (*ProjectInfo, error)

	// FindProjectInfoByID returns a project aggregate by ID.
	FindProjectInfoByID(ctx context.Context, id types.ID) (*ProjectInfo, error)

	// FindProjectInfosByMember returns all projects containing a membership
	// for the given user.
	FindProjectInfosByMember(ctx context.Context, userID types.ID) ([]*ProjectInfo, error)

	// FindProjectInfoByInviteCode returns the project whose invite-code set
	// contains the given code, or ErrInviteNotFound.
	FindProjectInfoByInviteCode(ctx context.Context, code string) (*ProjectInfo, error)

	// UpdateProjectInfo replaces the stored project document with the given
	// aggregate.
	UpdateProjectInfo(ctx context.Context, info *ProjectInfo) error
}
