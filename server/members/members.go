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

// Package members provides business logic for managing project members. It
// also owns the privileged-role guard that protects every mutating project
// and task operation.
package members

import (
	"context"
	"fmt"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/backend/database"
	"github.com/taskhub-team/taskhub/server/backend/sync"
	"github.com/taskhub-team/taskhub/server/logging"
)

// FindMembership resolves the membership of the given user inside the
// project. It fails with ErrMembershipNotFound when the user is not a member.
func FindMembership(
	project *database.ProjectInfo,
	userID types.ID,
) (*database.MembershipInfo, error) {
	membership := project.FindMembership(userID)
	if membership == nil {
		return nil, fmt.Errorf("%s in %s: %w", userID, project.ID, database.ErrMembershipNotFound)
	}

	return membership, nil
}

// GuardPrivileged resolves the membership of the given user and fails with
// ErrNotPrivileged unless the role is owner or manager. Every mutating
// project and task operation other than self-removal goes through this guard.
func GuardPrivileged(
	project *database.ProjectInfo,
	userID types.ID,
) (*database.MembershipInfo, error) {
	membership, err := FindMembership(project, userID)
	if err != nil {
		return nil, err
	}

	if !membership.Role.IsPrivileged() {
		return nil, fmt.Errorf("%s: %w", membership.Role, database.ErrNotPrivileged)
	}

	return membership, nil
}

// ChangeRole sets the role of the target member. The actor must be
// privileged. Demoting the sole owner is rejected to keep the project owned.
func ChangeRole(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	targetID types.ID,
	role string,
) error {
	newRole, err := database.NewMemberRole(role)
	if err != nil {
		return err
	}

	locker := be.ProjectLocker(projectID)
	locker.Lock()
	defer unlock(ctx, locker)

	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return err
	}

	if _, err := GuardPrivileged(project, actorID); err != nil {
		return err
	}

	target := project.FindMembership(targetID)
	if target == nil {
		return fmt.Errorf("%s in %s: %w", targetID, projectID, database.ErrMembershipNotFound)
	}

	if target.Role == database.Owner && newRole != database.Owner && project.CountOwners() == 1 {
		return database.ErrLastOwner
	}

	target.Role = newRole
	return be.DB.UpdateProjectInfo(ctx, project)
}

// Kick removes the target member from the project. The actor must be
// privileged. Kicking a user without a membership is a no-op; kicking the
// sole owner is rejected.
func Kick(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	targetID types.ID,
) error {
	locker := be.ProjectLocker(projectID)
	locker.Lock()
	defer unlock(ctx, locker)

	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return err
	}

	if _, err := GuardPrivileged(project, actorID); err != nil {
		return err
	}

	if target := project.FindMembership(targetID); target != nil {
		if target.Role == database.Owner && project.CountOwners() == 1 {
			return database.ErrLastOwner
		}
	}

	project.RemoveMembership(targetID)
	return be.DB.UpdateProjectInfo(ctx, project)
}

// Leave removes the caller's own membership. Leaving is self-service and not
// gated by the privileged guard, but owners cannot leave their project.
func Leave(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	userID types.ID,
) error {
	locker := be.ProjectLocker(projectID)
	locker.Lock()
	defer unlock(ctx, locker)

	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return err
	}

	membership, err := FindMembership(project, userID)
	if err != nil {
		return err
	}

	if membership.Role == database.Owner {
		return database.ErrOwnerCannotLeave
	}

	project.RemoveMembership(userID)
	return be.DB.UpdateProjectInfo(ctx, project)
}

func unlock(ctx context.Context, locker sync.Locker) {
	if err := locker.Unlock(); err != nil {
		logging.From(ctx).Error(err)
	}
}
