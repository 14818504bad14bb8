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

package tasks_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/backend/database"
	"github.com/taskhub-team/taskhub/server/backend/database/memory"
	"github.com/taskhub-team/taskhub/server/backend/sync"
	"github.com/taskhub-team/taskhub/server/tasks"
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

func TestCreate(t *testing.T) {
	t.Run("owner creates task test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)
		due := time.Now().Add(24 * time.Hour)

		task, err := tasks.Create(ctx, be, projectID, owner.ID, "write docs", "the API docs", owner.ID, due)
		assert.NoError(t, err)
		assert.NoError(t, task.ID.Validate())
		assert.Equal(t, "write docs", task.Name)
		assert.False(t, task.Completed)
		assert.Equal(t, []types.ID{owner.ID}, task.ResponsibleUsers)

		info, err := be.DB.FindProjectInfoByID(ctx, projectID)
		assert.NoError(t, err)
		assert.Len(t, info.Tasks, 1)
	})

	t.Run("assignee may be a non-member test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)
		stranger := database.NewID()

		task, err := tasks.Create(ctx, be, projectID, owner.ID, "orphan", "", stranger, time.Now())
		assert.NoError(t, err)
		assert.Equal(t, []types.ID{stranger}, task.ResponsibleUsers)
	})

	t.Run("participant cannot create test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		participant := registerUser(t, be, "participant")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			participant.ID: database.Participant,
		})

		_, err := tasks.Create(ctx, be, projectID, participant.ID, "nope", "", owner.ID, time.Now())
		assert.ErrorIs(t, err, database.ErrNotPrivileged)
	})
}

func TestReads(t *testing.T) {
	t.Run("any member reads test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		viewer := registerUser(t, be, "viewer")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			viewer.ID: database.Viewer,
		})

		created, err := tasks.Create(ctx, be, projectID, owner.ID, "readable", "", owner.ID, time.Now())
		assert.NoError(t, err)

		task, err := tasks.Get(ctx, be, projectID, viewer.ID, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, task.ID)

		list, err := tasks.List(ctx, be, projectID, viewer.ID)
		assert.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("non-member cannot read test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		outsider := registerUser(t, be, "outsider")
		projectID := setupProject(t, be, owner.ID, nil)

		_, err := tasks.List(ctx, be, projectID, outsider.ID)
		assert.ErrorIs(t, err, database.ErrMembershipNotFound)
	})

	t.Run("unknown task test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		_, err := tasks.Get(ctx, be, projectID, owner.ID, database.NewID())
		assert.ErrorIs(t, err, database.ErrTaskNotFound)
	})
}

func TestMutations(t *testing.T) {
	t.Run("set completed test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		created, err := tasks.Create(ctx, be, projectID, owner.ID, "toggle", "", owner.ID, time.Now())
		assert.NoError(t, err)

		task, err := tasks.SetCompleted(ctx, be, projectID, owner.ID, created.ID, true)
		assert.NoError(t, err)
		assert.True(t, task.Completed)

		task, err = tasks.SetCompleted(ctx, be, projectID, owner.ID, created.ID, false)
		assert.NoError(t, err)
		assert.False(t, task.Completed)
	})

	t.Run("set assignee replaces responsible users test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		next := registerUser(t, be, "next")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			next.ID: database.Participant,
		})

		created, err := tasks.Create(ctx, be, projectID, owner.ID, "handover", "", owner.ID, time.Now())
		assert.NoError(t, err)

		task, err := tasks.SetAssignee(ctx, be, projectID, owner.ID, created.ID, next.ID)
		assert.NoError(t, err)
		assert.Equal(t, []types.ID{next.ID}, task.ResponsibleUsers)
	})

	t.Run("set due date test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		created, err := tasks.Create(ctx, be, projectID, owner.ID, "postpone", "", owner.ID, time.Now())
		assert.NoError(t, err)

		due := time.Now().Add(72 * time.Hour)
		task, err := tasks.SetDueDate(ctx, be, projectID, owner.ID, created.ID, due)
		assert.NoError(t, err)
		assert.Equal(t, due.Unix(), task.DueDate.Unix())
	})

	t.Run("viewer cannot mutate test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		viewer := registerUser(t, be, "viewer")
		projectID := setupProject(t, be, owner.ID, map[types.ID]database.MemberRole{
			viewer.ID: database.Viewer,
		})

		created, err := tasks.Create(ctx, be, projectID, owner.ID, "locked", "", owner.ID, time.Now())
		assert.NoError(t, err)

		_, err = tasks.SetCompleted(ctx, be, projectID, viewer.ID, created.ID, true)
		assert.ErrorIs(t, err, database.ErrNotPrivileged)
		_, err = tasks.SetAssignee(ctx, be, projectID, viewer.ID, created.ID, viewer.ID)
		assert.ErrorIs(t, err, database.ErrNotPrivileged)
		_, err = tasks.SetDueDate(ctx, be, projectID, viewer.ID, created.ID, time.Now())
		assert.ErrorIs(t, err, database.ErrNotPrivileged)
		err = tasks.Delete(ctx, be, projectID, viewer.ID, created.ID)
		assert.ErrorIs(t, err, database.ErrNotPrivileged)
	})

	t.Run("mutating unknown task test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		_, err := tasks.SetCompleted(ctx, be, projectID, owner.ID, database.NewID(), true)
		assert.ErrorIs(t, err, database.ErrTaskNotFound)
	})
}

func TestDelete(t *testing.T) {
	t.Run("delete removes task test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		created, err := tasks.Create(ctx, be, projectID, owner.ID, "ephemeral", "", owner.ID, time.Now())
		assert.NoError(t, err)

		err = tasks.Delete(ctx, be, projectID, owner.ID, created.ID)
		assert.NoError(t, err)

		_, err = tasks.Get(ctx, be, projectID, owner.ID, created.ID)
		assert.ErrorIs(t, err, database.ErrTaskNotFound)
	})

	t.Run("deleting absent task is a no-op test", func(t *testing.T) {
		ctx := context.Background()
		be := setupBackend(t)
		owner := registerUser(t, be, "owner")
		projectID := setupProject(t, be, owner.ID, nil)

		err := tasks.Delete(ctx, be, projectID, owner.ID, database.NewID())
		assert.NoError(t, err)
	})
}
