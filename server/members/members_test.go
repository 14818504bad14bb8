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

package members_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/backend/database"
	"github.com/taskhub-team/taskhub/server/backend/database/memory"
	"github.com/taskhub-team/taskhub/server/backend/sync"
	"github.com/taskhub-team/taskhub/server/members"
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

func registerUser(t *testing.T, be *backend.Backend, handle string) *types.User {
	user, err := users.SignUp(context.Background(), be, handle, handle, "password123!")
	assert.NoError(t, err)
	return user
}

// setupProject creates a project owned by owner and adds the given members
// directly through the aggregate.
func setupProject(
	t *testing.T,
	be *backend.Backend,
	owner types.ID,
	memberRoles map[types.ID]database.MemberRole,
) types.ID {
	ctx := context.Background()

	info, err := be.DB.CreateProjectInfo(ctx, "test project", "", owner)
	assert.NoError(t, err)

	for userID, role := range memberRoles {
		assert.NoError(t, info.AddMembership(userID, role))
	}
	assert.NoError(t, be.DB.UpdateProjectInfo(ctx, info))

	return info.ID
}

func TestChangeRole(t *testing.T) {
	t.Run("owner promotes participant test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		target := registerUser(t, be, "target")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			target.ID: database.Participant,
		})

		// 01. promote the participant to manager and check the stored role.
		err := members.ChangeRole(ctx, be, projectID, owner.ID, target.ID, "manager")
		assert.NoError(t, err)

		info, err := be.DB.FindProjectInfoByID(ctx, projectID)
		assert.NoError(t, err)
		assert.Equal(t, database.Manager, info.FindMembership(target.ID).Role)
	})

	t.Run("unprivileged roles are rejected test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		participant := registerUser(t, be, "participant")
		viewer := registerUser(t, be, "viewer")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			participant.ID: database.Participant,
			viewer.ID:      database.Viewer,
		})

		err := members.ChangeRole(ctx, be, projectID, participant.ID, viewer.ID, "manager")
		assert.ErrorIs(t, err, database.ErrNotPrivileged)

		err = members.ChangeRole(ctx, be, projectID, viewer.ID, participant.ID, "manager")
		assert.ErrorIs(t, err, database.ErrNotPrivileged)
	})

	t.Run("non-member actor test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		outsider := registerUser(t, be, "outsider")
		projectID := setupProject(t, be, owner.ID, nil)

		err := members.ChangeRole(ctx, be, projectID, outsider.ID, owner.ID, "viewer")
		assert.ErrorIs(t, err, database.ErrMembershipNotFound)
	})

	t.Run("unknown target test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		err := members.ChangeRole(ctx, be, projectID, owner.ID, database.NewID(), "viewer")
		assert.ErrorIs(t, err, database.ErrMembershipNotFound)
	})

	t.Run("invalid role test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		err := members.ChangeRole(ctx, be, projectID, owner.ID, owner.ID, "emperor")
		assert.ErrorIs(t, err, database.ErrInvalidMemberRole)
	})

	t.Run("sole owner cannot be demoted test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		err := members.ChangeRole(ctx, be, projectID, owner.ID, owner.ID, "manager")
		assert.ErrorIs(t, err, database.ErrLastOwner)
	})

	t.Run("co-owner can be demoted test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		coOwner := registerUser(t, be, "coowner")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			coOwner.ID: database.Owner,
		})

		err := members.ChangeRole(ctx, be, projectID, owner.ID, coOwner.ID, "viewer")
		assert.NoError(t, err)

		info, err := be.DB.FindProjectInfoByID(ctx, projectID)
		assert.NoError(t, err)
		assert.Equal(t, database.Viewer, info.FindMembership(coOwner.ID).Role)
	})
}

func TestKick(t *testing.T) {
	t.Run("manager kicks participant test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		manager := registerUser(t, be, "manager")
		participant := registerUser(t, be, "participant")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			manager.ID:     database.Manager,
			participant.ID: database.Participant,
		})

		err := members.Kick(ctx, be, projectID, manager.ID, participant.ID)
		assert.NoError(t, err)

		info, err := be.DB.FindProjectInfoByID(ctx, projectID)
		assert.NoError(t, err)
		assert.Nil(t, info.FindMembership(participant.ID))
	})

	t.Run("participant cannot kick test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		participant := registerUser(t, be, "participant")
		viewer := registerUser(t, be, "viewer")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			participant.ID: database.Participant,
			viewer.ID:      database.Viewer,
		})

		err := members.Kick(ctx, be, projectID, participant.ID, viewer.ID)
		assert.ErrorIs(t, err, database.ErrNotPrivileged)
	})

	t.Run("kicking absent user is a no-op test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		err := members.Kick(ctx, be, projectID, owner.ID, database.NewID())
		assert.NoError(t, err)

		info, err := be.DB.FindProjectInfoByID(ctx, projectID)
		assert.NoError(t, err)
		assert.Len(t, info.Members, 1)
	})

	t.Run("sole owner cannot be kicked test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		manager := registerUser(t, be, "manager")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			manager.ID: database.Manager,
		})

		err := members.Kick(ctx, be, projectID, manager.ID, owner.ID)
		assert.ErrorIs(t, err, database.ErrLastOwner)
	})
}

func TestLeave(t *testing.T) {
	t.Run("manager leaves test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		manager := registerUser(t, be, "manager")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			manager.ID: database.Manager,
		})

		err := members.Leave(ctx, be, projectID, manager.ID)
		assert.NoError(t, err)

		info, err := be.DB.FindProjectInfoByID(ctx, projectID)
		assert.NoError(t, err)
		assert.Nil(t, info.FindMembership(manager.ID))
	})

	t.Run("owner cannot leave test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		err := members.Leave(ctx, be, projectID, owner.ID)
		assert.ErrorIs(t, err, database.ErrOwnerCannotLeave)
	})

	t.Run("non-member cannot leave test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		outsider := registerUser(t, be, "outsider")
		projectID := setupProject(t, be, owner.ID, nil)

		err := members.Leave(ctx, be, projectID, outsider.ID)
		assert.ErrorIs(t, err, database.ErrMembershipNotFound)
	})
}
