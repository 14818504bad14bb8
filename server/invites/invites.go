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

// Package invites provides business logic for managing reusable invite
// codes. A code grants participant membership to whoever redeems it and
// stays valid until the project's codes are revoked.
package invites

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/backend/database"
	"github.com/taskhub-team/taskhub/server/backend/sync"
	"github.com/taskhub-team/taskhub/server/logging"
	"github.com/taskhub-team/taskhub/server/members"
)

// Issue generates a new invite code for the project and appends it to the
// project's invite-code set. The actor must be privileged. The code is
// unique within the project's active set; global uniqueness is not required.
func Issue(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
) (string, error) {
	locker := be.ProjectLocker(projectID)
	locker.Lock()
	defer unlock(ctx, locker)

	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return "", err
	}

	if _, err := members.GuardPrivileged(project, actorID); err != nil {
		return "", err
	}

	code, err := newCode()
	if err != nil {
		return "", err
	}
	for project.HasInviteCode(code) {
		if code, err = newCode(); err != nil {
			return "", err
		}
	}

	project.AddInviteCode(code)
	if err := be.DB.UpdateProjectInfo(ctx, project); err != nil {
		return "", err
	}

	return code, nil
}

// Redeem enlists the user as a participant of the project whose invite-code
// set contains the given code. The code is not consumed; it stays redeemable
// until revoked.
func Redeem(
	ctx context.Context,
	be *backend.Backend,
	userID types.ID,
	code string,
) (*types.ProjectSummary, error) {
	matched, err := be.DB.FindProjectInfoByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}

	locker := be.ProjectLocker(matched.ID)
	locker.Lock()
	defer unlock(ctx, locker)

	// Reload under the lock; the code may have been revoked in between.
	project, err := be.DB.FindProjectInfoByID(ctx, matched.ID)
	if err != nil {
		return nil, err
	}
	if !project.HasInviteCode(code) {
		return nil, database.ErrInviteNotFound
	}

	if err := project.AddMembership(userID, database.Participant); err != nil {
		return nil, err
	}

	if err := be.DB.UpdateProjectInfo(ctx, project); err != nil {
		return nil, err
	}

	return project.ToSummary(database.Participant), nil
}

// RevokeAll clears the entire invite-code set of the project. The actor must
// be privileged. There is no per-code revocation.
func RevokeAll(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
) error {
	locker := be.ProjectLocker(projectID)
	locker.Lock()
	defer unlock(ctx, locker)

	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return err
	}

	if _, err := members.GuardPrivileged(project, actorID); err != nil {
		return err
	}

	project.ClearInviteCodes()
	return be.DB.UpdateProjectInfo(ctx, project)
}

func newCode() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate invite code: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b[:]), nil
}

func unlock(ctx context.Context, locker sync.Locker) {
	if err := locker.Unlock(); err != nil {
		logging.From(ctx).Error(err)
	}
}
