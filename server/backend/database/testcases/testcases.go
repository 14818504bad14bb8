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

// Package testcases contains testcases for database. It is used by both
// memory and mongo database implementations.
package testcases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskhub-team/taskhub/server/backend/database"
)

// RunCreateUserInfoTest runs the CreateUserInfo test for the given db.
func RunCreateUserInfoTest(t *testing.T, db database.Database) {
	t.Run("duplicate handle test", func(t *testing.T) {
		ctx := context.Background()
		handle := fmt.Sprintf("duplicate-%d", time.Now().UnixNano())

		info, err := db.CreateUserInfo(ctx, handle, "Duplicate", "hashed")
		assert.NoError(t, err)
		assert.Equal(t, handle, info.Handle)
		assert.NoError(t, info.ID.Validate())

		_, err = db.CreateUserInfo(ctx, handle, "Duplicate Again", "hashed")
		assert.ErrorIs(t, err, database.ErrUserAlreadyExists)
	})

	t.Run("find by ID and handle test", func(t *testing.T) {
		ctx := context.Background()
		handle := fmt.Sprintf("lookup-%d", time.Now().UnixNano())

		created, err := db.CreateUserInfo(ctx, handle, "Lookup", "hashed")
		assert.NoError(t, err)

		byID, err := db.FindUserInfoByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, created.Handle, byID.Handle)

		byHandle, err := db.FindUserInfoByHandle(ctx, handle)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, byHandle.ID)

		_, err = db.FindUserInfoByID(ctx, database.NewID())
		assert.ErrorIs(t, err, database.ErrUserNotFound)

		_, err = db.FindUserInfoByHandle(ctx, "not-a-handle")
		assert.ErrorIs(t, err, database.ErrUserNotFound)
	})
}

// RunCreateProjectInfoTest runs the CreateProjectInfo test for the given db.
func RunCreateProjectInfoTest(t *testing.T, db database.Database) {
	t.Run("sole owner membership test", func(t *testing.T) {
		ctx := context.Background()
		owner := database.NewID()

		info, err := db.CreateProjectInfo(ctx, "backlog", "things to do", owner)
		assert.NoError(t, err)
		assert.Equal(t, "backlog", info.Name)
		assert.Len(t, info.Members, 1)
		assert.Equal(t, owner, info.Members[0].UserID)
		assert.Equal(t, database.Owner, info.Members[0].Role)

		found, err := db.FindProjectInfoByID(ctx, info.ID)
		assert.NoError(t, err)
		assert.Equal(t, info.Name, found.Name)
		assert.Len(t, found.Members, 1)
	})

	t.Run("default description test", func(t *testing.T) {
		ctx := context.Background()

		info, err := db.CreateProjectInfo(ctx, "empty", "", database.NewID())
		assert.NoError(t, err)
		assert.Equal(t, database.DefaultDescription, info.Description)
	})

	t.Run("unknown project test", func(t *testing.T) {
		ctx := context.Background()

		_, err := db.FindProjectInfoByID(ctx, database.NewID())
		assert.ErrorIs(t, err, database.ErrProjectNotFound)
	})
}

// RunFindProjectInfosByMemberTest runs the FindProjectInfosByMember test for
// the given db.
func RunFindProjectInfosByMemberTest(t *testing.T, db database.Database) {
	t.Run("projects by member test", func(t *testing.T) {
		ctx := context.Background()
		owner := database.NewID()
		joiner := database.NewID()

		first, err := db.CreateProjectInfo(ctx, "first", "", owner)
		assert.NoError(t, err)
		second, err := db.CreateProjectInfo(ctx, "second", "", owner)
		assert.NoError(t, err)

		assert.NoError(t, second.AddMembership(joiner, database.Participant))
		assert.NoError(t, db.UpdateProjectInfo(ctx, second))

		infos, err := db.FindProjectInfosByMember(ctx, owner)
		assert.NoError(t, err)
		assert.Len(t, infos, 2)
		ids := []interface{}{infos[0].ID, infos[1].ID}
		assert.Contains(t, ids, first.ID)
		assert.Contains(t, ids, second.ID)

		infos, err = db.FindProjectInfosByMember(ctx, joiner)
		assert.NoError(t, err)
		assert.Len(t, infos, 1)
		assert.Equal(t, second.ID, infos[0].ID)

		infos, err = db.FindProjectInfosByMember(ctx, database.NewID())
		assert.NoError(t, err)
		assert.Len(t, infos, 0)
	})
}

// RunFindProjectInfoByInviteCodeTest runs the FindProjectInfoByInviteCode
// test for the given db.
func RunFindProjectInfoByInviteCodeTest(t *testing.T, db database.Database) {
	t.Run("invite code lookup test", func(t *testing.T) {
		ctx := context.Background()

		info, err := db.CreateProjectInfo(ctx, "invited", "", database.NewID())
		assert.NoError(t, err)

		info.AddInviteCode("invite-code-123")
		assert.NoError(t, db.UpdateProjectInfo(ctx, info))

		found, err := db.FindProjectInfoByInviteCode(ctx, "invite-code-123")
		assert.NoError(t, err)
		assert.Equal(t, info.ID, found.ID)

		_, err = db.FindProjectInfoByInviteCode(ctx, "no-such-code")
		assert.ErrorIs(t, err, database.ErrInviteNotFound)
	})

	t.Run("revoked invite code test", func(t *testing.T) {
		ctx := context.Background()

		info, err := db.CreateProjectInfo(ctx, "revoked", "", database.NewID())
		assert.NoError(t, err)

		info.AddInviteCode("short-lived")
		assert.NoError(t, db.UpdateProjectInfo(ctx, info))

		info.ClearInviteCodes()
		assert.NoError(t, db.UpdateProjectInfo(ctx, info))

		_, err = db.FindProjectInfoByInviteCode(ctx, "short-lived")
		assert.ErrorIs(t, err, database.ErrInviteNotFound)
	})
}

// RunUpdateProjectInfoTest runs the UpdateProjectInfo test for the given db.
func RunUpdateProjectInfoTest(t *testing.T, db database.Database) {
	t.Run("replace aggregate test", func(t *testing.T) {
		ctx := context.Background()

		info, err := db.CreateProjectInfo(ctx, "before", "", database.NewID())
		assert.NoError(t, err)

		info.Name = "after"
		task := database.NewTaskInfo("write docs", "", database.NewID(), time.Now())
		info.AddTask(task)
		assert.NoError(t, db.UpdateProjectInfo(ctx, info))

		found, err := db.FindProjectInfoByID(ctx, info.ID)
		assert.NoError(t, err)
		assert.Equal(t, "after", found.Name)
		assert.Len(t, found.Tasks, 1)
		assert.Equal(t, task.ID, found.Tasks[0].ID)
	})

	t.Run("unknown project test", func(t *testing.T) {
		ctx := context.Background()

		ghost := database.NewProjectInfo("ghost", "", database.NewID())
		ghost.ID = database.NewID()
		err := db.UpdateProjectInfo(ctx, ghost)
		assert.ErrorIs(t, err, database.ErrProjectNotFound)
	})
}
