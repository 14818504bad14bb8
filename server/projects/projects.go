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

// Package projects provides business logic for creating, listing and
// reshaping projects.
package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskhub-team/taskhub/api/types"
	"github.com/taskhub-team/taskhub/server/backend"
	"github.com/taskhub-team/taskhub/server/backend/database"
	"github.com/taskhub-team/taskhub/server/backend/sync"
	"github.com/taskhub-team/taskhub/server/logging"
	"github.com/taskhub-team/taskhub/server/members"
)

// Create creates a new project with the given creator as its sole owner.
// An empty description falls back to the default one.
func Create(
	ctx context.Context,
	be *backend.Backend,
	name, description string,
	owner types.ID,
) (*types.ProjectSummary, error) {
	info, err := be.DB.CreateProjectInfo(ctx, name, description, owner)
	if err != nil {
		return nil, err
	}

	return info.ToSummary(database.Owner), nil
}

// ListJoined returns a summary of every project the given user is a member
// of, with the user's role attached.
func ListJoined(
	ctx context.Context,
	be *backend.Backend,
	userID types.ID,
) ([]*types.ProjectSummary, error) {
	infos, err := be.DB.FindProjectInfosByMember(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*types.ProjectSummary, 0, len(infos))
	for _, info := range infos {
		membership := info.FindMembership(userID)
		if membership == nil {
			return nil, fmt.Errorf("%s in %s: %w", userID, info.ID, database.ErrMembershipInconsistent)
		}
		summaries = append(summaries, info.ToSummary(membership.Role))
	}

	return summaries, nil
}

// GetInfo returns the denormalized view of the project for the given member:
// memberships and task assignees are resolved to display names. A membership
// whose user no longer resolves is dropped from the member list, while an
// unresolvable task assignee surfaces as a null placeholder.
func GetInfo(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
) (*types.ProjectView, error) {
	project, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	membership, err := members.FindMembership(project, actorID)
	if err != nil {
		return nil, err
	}

	resolved := make(map[types.ID]string)
	memberList := make([]*types.Member, 0, len(project.Members))
	for _, m := range project.Members {
		user, err := be.DB.FindUserInfoByID(ctx, m.UserID)
		if err != nil {
			if errors.Is(err, database.ErrUserNotFound) {
				continue
			}
			return nil, err
		}

		resolved[m.UserID] = user.Name
		memberList = append(memberList, &types.Member{
			UserID: m.UserID,
			Role:   m.Role.String(),
			Name:   user.Name,
		})
	}

	taskList := make([]*types.TaskView, 0, len(project.Tasks))
	for _, task := range project.Tasks {
		names := make([]*string, len(task.ResponsibleUsers))
		for i, userID := range task.ResponsibleUsers {
			if name, ok := resolved[userID]; ok {
				names[i] = &name
			}
		}

		taskList = append(taskList, &types.TaskView{
			ID:               task.ID,
			Name:             task.Name,
			Description:      task.Description,
			DueDate:          task.DueDate,
			Completed:        task.Completed,
			ResponsibleUsers: names,
		})
	}

	return &types.ProjectView{
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		Role:        membership.Role.String(),
		Members:     memberList,
		Tasks:       taskList,
	}, nil
}

// Rename changes the name of the project. The actor must hold a privileged
// role.
func Rename(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	name string,
) error {
	return update(ctx, be, projectID, actorID, func(project *database.ProjectInfo) {
		project.Name = name
	})
}

// Redescribe changes the description of the project. The actor must hold a
// privileged role.
func Redescribe(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	description string,
) error {
	return update(ctx, be, projectID, actorID, func(project *database.ProjectInfo) {
		project.Description = description
	})
}

func update(
	ctx context.Context,
	be *backend.Backend,
	projectID types.ID,
	actorID types.ID,
	apply func(project *database.ProjectInfo),
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

	apply(project)
	return be.DB.UpdateProjectInfo(ctx, project)
}

func unlock(ctx context.Context, locker sync.Locker) {
	if err := locker.Unlock(); err != nil {
		logging.From(ctx).Error(err)
	}
}
